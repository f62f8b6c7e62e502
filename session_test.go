package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/milk9111/carpark/ecs/system"
	"github.com/milk9111/carpark/logging"
	"github.com/milk9111/carpark/park"
	"github.com/milk9111/carpark/prefabs"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*session, *int) {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec("")
	require.NoError(t, err)

	ended := 0
	noImages := func(string) (*ebiten.Image, error) { return nil, nil }
	s, err := newSession(spec, noImages, 60, logging.NewNop(), func() { ended++ })
	require.NoError(t, err)
	return s, &ended
}

func dragTo(t *testing.T, s *session, id string, drop park.Point) park.Outcome {
	t.Helper()
	require.NoError(t, s.ctrl.StartDrag(id, park.Point{}))
	s.ctrl.PointerMove(park.Point{X: 400, Y: 300})
	s.ctrl.PointerMove(drop)
	out, ok := s.ctrl.EndDrag()
	require.True(t, ok)
	return out
}

func TestSessionEndSceneAfterBothParked(t *testing.T) {
	s, ended := newTestSession(t)

	require.True(t, dragTo(t, s, "red", park.Point{X: 640, Y: 490}).Accepted)
	require.Equal(t, 1, s.parked())
	require.False(t, s.end.Pending())

	out := dragTo(t, s, "yellow", park.Point{X: 150, Y: 500})
	require.True(t, out.AllLocked)
	require.True(t, s.end.Pending())

	s.delayer.Advance(1999 * time.Millisecond)
	require.Zero(t, *ended)
	require.False(t, s.ended)

	s.delayer.Advance(time.Millisecond)
	require.Equal(t, 1, *ended)
	require.True(t, s.ended)

	s.delayer.Advance(10 * time.Second)
	require.Equal(t, 1, *ended, "end scene fires once")

	tweens := system.NewTweenSystem()
	for range 30 {
		tweens.Update(s.world)
	}
	for _, e := range s.scene.Overlay {
		require.Equal(t, 1.0, system.Alpha(s.world, e))
	}
	require.Equal(t, 0.0, system.Alpha(s.world, s.scene.Cars["red"]))
}

func TestSessionRejectedDropKeepsPlaying(t *testing.T) {
	s, ended := newTestSession(t)

	out := dragTo(t, s, "red", park.Point{X: 150, Y: 500})
	require.False(t, out.Accepted, "red does not fit the yellow spot")
	require.Zero(t, s.parked())

	tf, ok := ecs.Get(s.world, s.scene.Cars["red"], component.TransformComponent.Kind())
	require.True(t, ok)
	require.Equal(t, 50.0, tf.X)

	s.delayer.Advance(5 * time.Second)
	require.Zero(t, *ended)
}

func TestSessionUsesSceneDelay(t *testing.T) {
	s, _ := newTestSession(t)
	require.Equal(t, park.DefaultEndSceneDelay, s.end.Delay())
}
