package system

import (
	"fmt"
	"math"

	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenSystem steps Tween components by one tick per update and removes the
// one-shot ones that finish.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem { return &TweenSystem{} }

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TweenComponent.Kind(), func(e ecs.Entity, tw *component.Tween) {
		if tw.Loop != nil {
			v, _, _ := tw.Loop.Update(1)
			applyTween(w, e, tw.Property, float64(v))
			return
		}
		if tw.Tween == nil {
			finishTween(w, e, tw)
			return
		}
		v, done := tw.Tween.Update(1)
		if done {
			finishTween(w, e, tw)
			return
		}
		applyTween(w, e, tw.Property, float64(v))
	})
}

// StartTween replaces any tween on e with one running prop from from to to
// over frames ticks. A tween of zero frames applies to at once.
func StartTween(w *ecs.World, e ecs.Entity, prop component.TweenProperty, from, to float64, frames int, fn ease.TweenFunc) error {
	if frames <= 0 {
		if !w.IsAlive(e) {
			return fmt.Errorf("tween: %w: %s", component.ErrEntityNotAlive, e)
		}
		ecs.Remove(w, e, component.TweenComponent.Kind())
		applyTween(w, e, prop, to)
		return nil
	}
	applyTween(w, e, prop, from)
	return ecs.Add(w, e, component.TweenComponent.Kind(), &component.Tween{
		Property: prop,
		Tween:    gween.New(float32(from), float32(to), float32(frames), fn),
		Rest:     to,
	})
}

// StartPulse loops prop from from to to and back, frames ticks each way,
// until cancelled. A cancelled pulse rests at to.
func StartPulse(w *ecs.World, e ecs.Entity, prop component.TweenProperty, from, to float64, frames int, fn ease.TweenFunc) error {
	if frames <= 0 {
		return StartTween(w, e, prop, from, to, 0, fn)
	}
	seq := gween.NewSequence(
		gween.New(float32(from), float32(to), float32(frames), fn),
		gween.New(float32(to), float32(from), float32(frames), fn),
	)
	seq.SetLoop(-1)
	applyTween(w, e, prop, from)
	return ecs.Add(w, e, component.TweenComponent.Kind(), &component.Tween{
		Property: prop,
		Loop:     seq,
		Rest:     to,
	})
}

// CancelTweens stops every running tween, leaving each property at its rest
// value. It returns the number of tweens stopped.
func CancelTweens(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.TweenComponent.Kind(), func(e ecs.Entity, tw *component.Tween) {
		finishTween(w, e, tw)
		n++
	})
	return n
}

// Alpha returns e's opacity, 1 when it has none.
func Alpha(w *ecs.World, e ecs.Entity) float64 {
	if op, ok := ecs.Get(w, e, component.OpacityComponent.Kind()); ok {
		return op.Alpha
	}
	return 1
}

func finishTween(w *ecs.World, e ecs.Entity, tw *component.Tween) {
	applyTween(w, e, tw.Property, tw.Rest)
	_ = ecs.Remove(w, e, component.TweenComponent.Kind())
}

func applyTween(w *ecs.World, e ecs.Entity, prop component.TweenProperty, v float64) {
	switch prop {
	case component.TweenAlpha:
		v = math.Max(0, math.Min(1, v))
		if op, ok := ecs.Get(w, e, component.OpacityComponent.Kind()); ok {
			op.Alpha = v
			return
		}
		_ = ecs.Add(w, e, component.OpacityComponent.Kind(), &component.Opacity{Alpha: v})
	case component.TweenScale:
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.ScaleX = v
			t.ScaleY = v
		}
	}
}
