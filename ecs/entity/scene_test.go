package entity

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/milk9111/carpark/ecs/system"
	"github.com/milk9111/carpark/park"
	"github.com/milk9111/carpark/prefabs"
	"github.com/stretchr/testify/require"
)

// noImages stands in for the asset loader so tests need no graphics context.
func noImages(string) (*ebiten.Image, error) { return nil, nil }

func loadScene(t *testing.T) (*ecs.World, *Scene) {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec("")
	require.NoError(t, err)

	w := ecs.NewWorld()
	s, err := BuildScene(w, spec, noImages, 60)
	require.NoError(t, err)
	return w, s
}

func TestBuildSceneEntities(t *testing.T) {
	w, s := loadScene(t)

	require.Len(t, s.Cars, 2)
	require.Len(t, s.Spots, 2)
	require.Len(t, s.Overlay, 3)
	require.Len(t, w.Query(component.PointerComponent.Kind()), 1)
	require.Len(t, w.Query(component.TrailComponent.Kind()), 2)

	red := s.Cars["red"]
	car, ok := ecs.Get(w, red, component.CarComponent.Kind())
	require.True(t, ok)
	require.Equal(t, "red", car.ID)
	require.False(t, car.Parked)
	require.Equal(t, s.Spots["red"], ecs.Entity(car.Spot))

	tf, ok := ecs.Get(w, red, component.TransformComponent.Kind())
	require.True(t, ok)
	require.Equal(t, 50.0, tf.X)
	require.Equal(t, 50.0, tf.Y)

	hand, ok := ecs.Get(w, ecs.Entity(car.Hand), component.SpriteComponent.Kind())
	require.True(t, ok)
	require.True(t, hand.Hidden, "hands start hidden")

	trail, ok := ecs.Get(w, ecs.Entity(car.Trail), component.TrailComponent.Kind())
	require.True(t, ok)
	require.False(t, trail.Visible)
	require.Equal(t, float32(10), trail.Width)

	got, ok := w.PickWorld().At(60, 60)
	require.True(t, ok)
	require.Equal(t, red, got)
}

func TestBuildScenePulsesSpots(t *testing.T) {
	w, s := loadScene(t)

	for id, spot := range s.Spots {
		tw, ok := ecs.Get(w, spot, component.TweenComponent.Kind())
		require.True(t, ok, id)
		require.NotNil(t, tw.Loop, id)
		require.Equal(t, 1.0, tw.Rest)
		op, ok := ecs.Get(w, spot, component.OpacityComponent.Kind())
		require.True(t, ok)
		require.Equal(t, 0.55, op.Alpha)
		require.True(t, ecs.Has(w, spot, component.PlayFieldTagComponent.Kind()))
	}

	// 900ms at 60 TPS is 54 ticks each way.
	tweens := system.NewTweenSystem()
	alpha := func() float64 {
		op, _ := ecs.Get(w, s.Spots["red"], component.OpacityComponent.Kind())
		return op.Alpha
	}
	for range 54 {
		tweens.Update(w)
	}
	require.InDelta(t, 1.0, alpha(), 1e-4)
	for range 54 {
		tweens.Update(w)
	}
	require.InDelta(t, 0.55, alpha(), 1e-4)
	for range 27 {
		tweens.Update(w)
	}
	require.InDelta(t, 0.775, alpha(), 1e-3, "sine pulse is halfway at the midpoint")
	require.True(t, ecs.Has(w, s.Spots["red"], component.TweenComponent.Kind()), "pulse never finishes")
}

func TestBuildSceneOverlayStartsHidden(t *testing.T) {
	w, s := loadScene(t)

	names := make([]string, 0, len(s.Overlay))
	for _, e := range s.Overlay {
		tag, ok := ecs.Get(w, e, component.OverlayTagComponent.Kind())
		require.True(t, ok)
		names = append(names, tag.Name)

		op, ok := ecs.Get(w, e, component.OpacityComponent.Kind())
		require.True(t, ok)
		require.Zero(t, op.Alpha)
		require.False(t, ecs.Has(w, e, component.PlayFieldTagComponent.Kind()))
	}
	require.Equal(t, []string{"background", "fail", "logo"}, names)
}

func TestSceneDraggables(t *testing.T) {
	_, s := loadScene(t)

	ds := s.Draggables()
	require.Len(t, ds, 2)
	require.Equal(t, park.Draggable{
		ID:   "yellow",
		Home: park.Point{X: 650, Y: 50},
		Target: park.Region{
			Center: park.Point{X: 150, Y: 500},
			Width:  100,
			Height: 100,
		},
	}, ds[1])
}

func TestBuildSceneLoaderError(t *testing.T) {
	spec, err := prefabs.LoadSceneSpec("")
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = BuildScene(ecs.NewWorld(), spec, func(string) (*ebiten.Image, error) { return nil, boom }, 60)
	require.ErrorIs(t, err, boom)

	_, err = BuildScene(ecs.NewWorld(), nil, noImages, 60)
	require.Error(t, err)
}
