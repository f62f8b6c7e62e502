package system

import (
	"errors"

	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/tanema/gween/ease"
)

// ShowEndScene stops every running tween, fades overlay elements in and the
// play field out. Zero frame counts switch instantly. It reports the number of
// overlay elements revealed; the error joins any fades that could not start.
func ShowEndScene(w *ecs.World, fadeInFrames, fadeOutFrames int) (int, error) {
	if w == nil {
		return 0, nil
	}
	CancelTweens(w)

	var errs []error
	ecs.ForEach(w, component.PlayFieldTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayFieldTag) {
		if err := StartTween(w, e, component.TweenAlpha, Alpha(w, e), 0, fadeOutFrames, ease.Linear); err != nil {
			errs = append(errs, err)
		}
	})

	n := 0
	ecs.ForEach(w, component.OverlayTagComponent.Kind(), func(e ecs.Entity, _ *component.OverlayTag) {
		if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sp.Hidden = false
		}
		if err := StartTween(w, e, component.TweenAlpha, 0, 1, fadeInFrames, ease.InOutSine); err != nil {
			errs = append(errs, err)
		}
		n++
	})

	w.Events().Push(ecs.Event{Type: ecs.EventEndScene, Data: n})
	return n, errors.Join(errs...)
}
