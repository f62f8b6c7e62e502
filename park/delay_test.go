package park

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDelayerFiresInDueOrder(t *testing.T) {
	d := NewDelayer()
	var got []string

	d.Schedule(300*time.Millisecond, func() { got = append(got, "c") })
	d.Schedule(100*time.Millisecond, func() { got = append(got, "a") })
	d.Schedule(100*time.Millisecond, func() { got = append(got, "b") })
	require.Equal(t, 3, d.Pending())

	require.Zero(t, d.Advance(99*time.Millisecond))
	require.Equal(t, 2, d.Advance(time.Millisecond))
	require.Equal(t, []string{"a", "b"}, got)

	require.Equal(t, 1, d.Advance(time.Second))
	require.Equal(t, []string{"a", "b", "c"}, got)
	require.Zero(t, d.Pending())
	require.Equal(t, 1100*time.Millisecond, d.Now())
}

func TestDelayerCancel(t *testing.T) {
	d := NewDelayer()
	fired := false
	h := d.Schedule(time.Second, func() { fired = true })

	require.True(t, d.Cancel(h))
	require.False(t, d.Cancel(h))
	d.Advance(2 * time.Second)
	require.False(t, fired)
}

func TestDelayerCancelFromCallback(t *testing.T) {
	d := NewDelayer()
	var second Handle
	secondFired := false

	d.Schedule(time.Second, func() { d.Cancel(second) })
	second = d.Schedule(time.Second, func() { secondFired = true })

	require.Equal(t, 1, d.Advance(time.Second))
	require.False(t, secondFired)
}

func TestEndSceneLastTriggerWins(t *testing.T) {
	d := NewDelayer()
	fired := 0
	var firedAt time.Duration
	e := NewEndScene(d, 2000*time.Millisecond, func() {
		fired++
		firedAt = d.Now()
	})

	require.True(t, e.Trigger())
	d.Advance(500 * time.Millisecond)
	require.True(t, e.Trigger())
	require.Equal(t, 1, d.Pending())

	d.Advance(1999 * time.Millisecond)
	require.Zero(t, fired, "first trigger must not fire")
	d.Advance(time.Millisecond)
	require.Equal(t, 1, fired)
	require.Equal(t, 2500*time.Millisecond, firedAt)

	require.True(t, e.Fired())
	require.False(t, e.Pending())
	require.False(t, e.Trigger())
	d.Advance(time.Hour)
	require.Equal(t, 1, fired)
}

func TestEndSceneNilSafe(t *testing.T) {
	var e *EndScene
	require.False(t, e.Trigger())
	require.False(t, e.Pending())
	require.False(t, e.Fired())
}
