package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/carpark/assets"
	"github.com/milk9111/carpark/common"
	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/milk9111/carpark/ecs/system"
	"github.com/milk9111/carpark/park"
	"github.com/milk9111/carpark/prefabs"
	"github.com/tanema/gween/ease"
)

// ImageLoader resolves a sprite image name.
type ImageLoader func(path string) (*ebiten.Image, error)

// Scene indexes the entities built for one session.
type Scene struct {
	Spec    *prefabs.SceneSpec
	Pointer ecs.Entity
	Cars    map[string]ecs.Entity
	Spots   map[string]ecs.Entity
	Overlay []ecs.Entity
}

// BuildScene creates every entity described by spec in w and installs a pick
// world holding the cars. A nil loader uses the embedded assets. tps converts
// millisecond durations to frames.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, load ImageLoader, tps int) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	if load == nil {
		load = assets.LoadImage
	}

	s := &Scene{
		Spec:  spec,
		Cars:  make(map[string]ecs.Entity, len(spec.Cars)),
		Spots: make(map[string]ecs.Entity, len(spec.Cars)),
	}
	b := &builder{w: w, load: load}

	pw := ecs.NewPickWorld()
	w.SetPickWorld(pw)

	s.Pointer = ecs.CreateEntity(w)
	b.add(s.Pointer, ecs.Add(w, s.Pointer, component.PointerComponent.Kind(), &component.Pointer{}))

	pulseFrames := common.FramesFor(spec.Pulse.DurationMS, tps)

	for _, car := range spec.Cars {
		spot := ecs.CreateEntity(w)
		b.transform(spot, prefabs.TransformSpec{X: car.Spot.X, Y: car.Spot.Y})
		b.sprite(spot, car.Spot.Sprite, false)
		b.layer(spot, component.LayerSpot)
		b.playField(spot)
		b.add(spot, ecs.Add(w, spot, component.ParkingSpotComponent.Kind(), &component.ParkingSpot{
			CarID:  car.ID,
			Width:  car.Spot.Width,
			Height: car.Spot.Height,
		}))
		if pulseFrames > 0 {
			b.add(spot, system.StartPulse(w, spot, component.TweenAlpha, spec.Pulse.From, spec.Pulse.To, pulseFrames, ease.InOutSine))
		}

		trail := ecs.CreateEntity(w)
		b.add(trail, ecs.Add(w, trail, component.TrailComponent.Kind(), &component.Trail{
			Width:     spec.Trail.Width,
			Color:     spec.Trail.Color.Or(nil),
			AntiAlias: spec.Trail.AntiAlias,
		}))
		b.layer(trail, component.LayerTrail)
		b.playField(trail)

		hand := ecs.CreateEntity(w)
		b.transform(hand, car.Transform)
		b.sprite(hand, car.Hand, true)
		b.layer(hand, component.LayerHand)
		b.playField(hand)

		e := ecs.CreateEntity(w)
		b.transform(e, car.Transform)
		b.sprite(e, car.Sprite, false)
		b.layer(e, component.LayerCar)
		b.playField(e)
		b.add(e, ecs.Add(w, e, component.CarComponent.Kind(), &component.Car{
			ID:    car.ID,
			Hand:  uint64(hand),
			Trail: uint64(trail),
			Spot:  uint64(spot),
		}))
		pw.Add(e, car.Transform.X, car.Transform.Y, car.PickSize, car.PickSize)

		s.Cars[car.ID] = e
		s.Spots[car.ID] = spot
	}

	for i, el := range spec.EndScene.Elements {
		e := ecs.CreateEntity(w)
		b.transform(e, el.Transform)
		b.sprite(e, el.Sprite, true)
		b.layer(e, component.LayerOverlay+i)
		b.add(e, ecs.Add(w, e, component.OpacityComponent.Kind(), &component.Opacity{}))
		b.add(e, ecs.Add(w, e, component.OverlayTagComponent.Kind(), &component.OverlayTag{Name: el.Name}))
		s.Overlay = append(s.Overlay, e)
	}

	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}

// Draggables returns the controller view of the scene's cars, in prefab order.
func (s *Scene) Draggables() []park.Draggable {
	out := make([]park.Draggable, 0, len(s.Spec.Cars))
	for _, car := range s.Spec.Cars {
		home := park.Point{X: car.Transform.X, Y: car.Transform.Y}
		out = append(out, park.Draggable{
			ID:   car.ID,
			Home: home,
			Target: park.Region{
				Center: park.Point{X: car.Spot.X, Y: car.Spot.Y},
				Width:  car.Spot.Width,
				Height: car.Spot.Height,
			},
		})
	}
	return out
}

// builder keeps the first error so construction reads straight through.
type builder struct {
	w    *ecs.World
	load ImageLoader
	err  error
}

func (b *builder) add(e ecs.Entity, err error) {
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("scene: entity %s: %w", e, err)
	}
}

func (b *builder) transform(e ecs.Entity, spec prefabs.TransformSpec) {
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	b.add(e, ecs.Add(b.w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	}))
}

func (b *builder) sprite(e ecs.Entity, spec prefabs.SpriteSpec, hidden bool) {
	sprite := component.Sprite{
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
		Hidden:  hidden,
	}
	if spec.Image != "" {
		img, err := b.load(spec.Image)
		if err != nil {
			b.add(e, fmt.Errorf("load image %q: %w", spec.Image, err))
			return
		}
		sprite.Image = img
	}
	if spec.Centered && sprite.Image != nil {
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		sprite.OriginX = float64(w) / 2
		sprite.OriginY = float64(h) / 2
	}
	b.add(e, ecs.Add(b.w, e, component.SpriteComponent.Kind(), &sprite))
}

func (b *builder) layer(e ecs.Entity, index int) {
	b.add(e, ecs.Add(b.w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: index}))
}

func (b *builder) playField(e ecs.Entity) {
	b.add(e, ecs.Add(b.w, e, component.PlayFieldTagComponent.Kind(), &component.PlayFieldTag{}))
}
