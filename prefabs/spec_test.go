package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadSceneSpecEmbedded(t *testing.T) {
	spec, err := LoadSceneSpec("")
	require.NoError(t, err)

	require.Equal(t, 800, spec.Width)
	require.Equal(t, 600, spec.Height)
	require.Len(t, spec.Cars, 2)
	require.Equal(t, "red", spec.Cars[0].ID)
	require.Equal(t, "yellow", spec.Cars[1].ID)
	require.Equal(t, 100.0, spec.Cars[0].Spot.Width)
	require.Equal(t, 2000, spec.EndScene.DelayMS)
	require.Equal(t, 500, spec.EndScene.FadeInMS)
	require.Equal(t, "https://roasup.com", spec.EndScene.PlayNowURL)
	require.Len(t, spec.EndScene.Elements, 3)
	require.Equal(t, color.NRGBA{R: 0x54, G: 0x54, B: 0x54, A: 0xff}, spec.Background.Color)
}

func TestLoadPrefersDiskCopy(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	body := []byte("cars:\n  - id: blue\n    sprite:\n      image: car_red.png\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), body, 0o644))

	spec, err := LoadSceneSpec("prefabs/custom.yaml")
	require.NoError(t, err)
	require.Equal(t, "blue", spec.Cars[0].ID)
	require.Equal(t, 100.0, spec.Cars[0].Spot.Height, "defaults applied")
	require.Equal(t, "PLAY NOW", spec.EndScene.Button.Label)

	_, ok := ModTime("custom.yaml")
	require.True(t, ok)
	_, ok = ModTime("missing.yaml")
	require.False(t, ok)
}

func TestSceneSpecValidate(t *testing.T) {
	valid := func() SceneSpec {
		return SceneSpec{Cars: []CarSpec{
			{ID: "red", Sprite: SpriteSpec{Image: "car_red.png"}, Spot: SpotSpec{Width: 100, Height: 100}},
			{ID: "yellow", Sprite: SpriteSpec{Image: "car_yellow.png"}, Spot: SpotSpec{Width: 100, Height: 100}},
		}}
	}

	cases := []struct {
		name   string
		mutate func(*SceneSpec)
		ok     bool
	}{
		{"valid", func(*SceneSpec) {}, true},
		{"no_cars", func(s *SceneSpec) { s.Cars = nil }, false},
		{"empty_id", func(s *SceneSpec) { s.Cars[0].ID = "" }, false},
		{"duplicate_id", func(s *SceneSpec) { s.Cars[1].ID = "red" }, false},
		{"zero_spot", func(s *SceneSpec) { s.Cars[0].Spot.Width = 0 }, false},
		{"no_sprite", func(s *SceneSpec) { s.Cars[1].Sprite.Image = "" }, false},
		{"negative_fade", func(s *SceneSpec) { s.EndScene.FadeInMS = -1 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			err := s.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
		err  bool
	}{
		{`"#ffc841"`, color.NRGBA{R: 0xff, G: 0xc8, B: 0x41, A: 0xff}, false},
		{`"d1191f80"`, color.NRGBA{R: 0xd1, G: 0x19, B: 0x1f, A: 0x80}, false},
		{`"#fff"`, nil, true},
		{`"#gggggg"`, nil, true},
		{`[1, 2]`, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, c.Color)
		})
	}

	var unset *YAMLColor
	require.Equal(t, color.Black, unset.Or(color.Black))
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte("name: x\n"), 0o644))

	select {
	case name := <-w.Events:
		require.Equal(t, "scene.yaml", filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
