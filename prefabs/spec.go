package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultScene is the prefab the game loads when no other is named.
const DefaultScene = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec describes a whole drag-to-park session.
type SceneSpec struct {
	Name       string       `yaml:"name"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Background *YAMLColor   `yaml:"background"`
	Trail      TrailSpec    `yaml:"trail"`
	Pulse      PulseSpec    `yaml:"pulse"`
	Cars       []CarSpec    `yaml:"cars"`
	EndScene   EndSceneSpec `yaml:"end_scene"`
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	if filename == "" {
		filename = DefaultScene
	}
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// TrailSpec styles the freehand path drawn behind a hand.
type TrailSpec struct {
	Width     float32    `yaml:"width"`
	Color     *YAMLColor `yaml:"color"`
	AntiAlias bool       `yaml:"anti_alias"`
}

// PulseSpec is the idle alpha pulse on parking spots.
type PulseSpec struct {
	From       float64 `yaml:"from"`
	To         float64 `yaml:"to"`
	DurationMS int     `yaml:"duration_ms"`
}

type CarSpec struct {
	ID        string        `yaml:"id"`
	Transform TransformSpec `yaml:"transform"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	PickSize  float64       `yaml:"pick_size"`
	Hand      SpriteSpec    `yaml:"hand"`
	Spot      SpotSpec      `yaml:"spot"`
}

// SpotSpec is a parking spot: a drop region centred on X/Y.
type SpotSpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Sprite SpriteSpec `yaml:"sprite"`
}

type EndSceneSpec struct {
	DelayMS    int           `yaml:"delay_ms"`
	FadeInMS   int           `yaml:"fade_in_ms"`
	FadeOutMS  int           `yaml:"fade_out_ms"`
	PlayNowURL string        `yaml:"play_now_url"`
	Elements   []OverlaySpec `yaml:"elements"`
	Button     ButtonSpec    `yaml:"button"`
}

// OverlaySpec is one end-scene image.
type OverlaySpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Sprite    SpriteSpec    `yaml:"sprite"`
}

// ButtonSpec is the call-to-action button. Image, when set, is stretched as a
// nine-slice; Color fills the pressed state.
type ButtonSpec struct {
	Label     string     `yaml:"label"`
	Image     string     `yaml:"image"`
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	OffsetY   int        `yaml:"offset_y"`
	Color     *YAMLColor `yaml:"color"`
	TextColor *YAMLColor `yaml:"text_color"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// SpriteSpec names an embedded image. Centered overrides the origin with the
// image centre once the image is loaded.
type SpriteSpec struct {
	Image    string  `yaml:"image"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
	Centered bool    `yaml:"centered"`
}

func (s *SceneSpec) applyDefaults() {
	if s.Width == 0 {
		s.Width = 800
	}
	if s.Height == 0 {
		s.Height = 600
	}
	if s.Trail.Width == 0 {
		s.Trail.Width = 10
	}
	if s.Trail.Color == nil {
		s.Trail.Color = &YAMLColor{Color: color.White}
	}
	if s.EndScene.DelayMS == 0 {
		s.EndScene.DelayMS = 2000
	}
	if s.EndScene.PlayNowURL == "" {
		s.EndScene.PlayNowURL = "https://roasup.com"
	}
	if s.EndScene.Button.Label == "" {
		s.EndScene.Button.Label = "PLAY NOW"
	}
	for i := range s.Cars {
		if s.Cars[i].Spot.Width == 0 {
			s.Cars[i].Spot.Width = 100
		}
		if s.Cars[i].Spot.Height == 0 {
			s.Cars[i].Spot.Height = 100
		}
		if s.Cars[i].PickSize == 0 {
			s.Cars[i].PickSize = 50
		}
	}
}

// Validate checks the invariants the game relies on.
func (s *SceneSpec) Validate() error {
	if len(s.Cars) == 0 {
		return errors.New("scene has no cars")
	}
	seen := make(map[string]struct{}, len(s.Cars))
	for i, car := range s.Cars {
		if car.ID == "" {
			return fmt.Errorf("car %d: empty id", i)
		}
		if _, ok := seen[car.ID]; ok {
			return fmt.Errorf("car %q: duplicate id", car.ID)
		}
		seen[car.ID] = struct{}{}
		if car.Spot.Width <= 0 || car.Spot.Height <= 0 {
			return fmt.Errorf("car %q: spot must have positive width and height", car.ID)
		}
		if car.Sprite.Image == "" {
			return fmt.Errorf("car %q: sprite image is required", car.ID)
		}
	}
	if s.EndScene.DelayMS < 0 || s.EndScene.FadeInMS < 0 || s.EndScene.FadeOutMS < 0 {
		return errors.New("end_scene: durations must not be negative")
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed colour, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
