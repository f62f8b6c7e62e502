package system

import (
	"testing"

	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func endSceneWorld(t *testing.T) (w *ecs.World, field, overlay, spot ecs.Entity) {
	t.Helper()
	w = ecs.NewWorld()

	field = ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, field, component.PlayFieldTagComponent.Kind(), &component.PlayFieldTag{}))

	spot = ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, spot, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}))
	require.NoError(t, ecs.Add(w, spot, component.PlayFieldTagComponent.Kind(), &component.PlayFieldTag{}))
	require.NoError(t, StartPulse(w, spot, component.TweenScale, 0.6, 1, 30, ease.InOutSine))

	overlay = ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, overlay, component.SpriteComponent.Kind(), &component.Sprite{Hidden: true}))
	require.NoError(t, ecs.Add(w, overlay, component.OpacityComponent.Kind(), &component.Opacity{}))
	require.NoError(t, ecs.Add(w, overlay, component.OverlayTagComponent.Kind(), &component.OverlayTag{Name: "logo"}))
	return w, field, overlay, spot
}

func TestShowEndSceneFades(t *testing.T) {
	w, field, overlay, spot := endSceneWorld(t)

	n, err := ShowEndScene(w, 10, 10)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	tf, _ := ecs.Get(w, spot, component.TransformComponent.Kind())
	require.Equal(t, 1.0, tf.ScaleX, "pulse stopped at rest")

	sp, _ := ecs.Get(w, overlay, component.SpriteComponent.Kind())
	require.False(t, sp.Hidden)
	require.Equal(t, 0.0, Alpha(w, overlay))
	require.Equal(t, 1.0, Alpha(w, field))

	sys := NewTweenSystem()
	for range 5 {
		sys.Update(w)
	}
	require.InDelta(t, 0.5, Alpha(w, overlay), 1e-6)
	require.InDelta(t, 0.5, Alpha(w, field), 1e-6)

	for range 5 {
		sys.Update(w)
	}
	require.Equal(t, 1.0, Alpha(w, overlay))
	require.Equal(t, 0.0, Alpha(w, field))
	require.Equal(t, 0.0, Alpha(w, spot))

	var ended bool
	for _, evt := range w.Events().Drain() {
		ended = ended || evt.Type == ecs.EventEndScene
	}
	require.True(t, ended)
}

func TestShowEndSceneInstant(t *testing.T) {
	w, field, overlay, _ := endSceneWorld(t)

	_, err := ShowEndScene(w, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, Alpha(w, overlay))
	require.Equal(t, 0.0, Alpha(w, field))
	require.Empty(t, w.Query(component.TweenComponent.Kind()))
}
