package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/milk9111/carpark/common"
	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/entity"
	"github.com/milk9111/carpark/ecs/system"
	"github.com/milk9111/carpark/park"
	"github.com/milk9111/carpark/prefabs"
)

// popMS is how long a parked car takes to settle from its pop.
const popMS = 250

// session is one play-through of a scene: its world, the drag controller and
// the end-scene timer.
type session struct {
	spec  *prefabs.SceneSpec
	world *ecs.World
	scene *entity.Scene

	ctrl     *park.Controller
	delayer  *park.Delayer
	end      *park.EndScene
	feedback *system.FeedbackSystem
	render   *system.RenderSystem

	ended bool
}

// newSession builds a session from spec. onEnd runs once, on the update
// goroutine, after the end scene starts fading in.
func newSession(spec *prefabs.SceneSpec, load entity.ImageLoader, tps int, log *slog.Logger, onEnd func()) (*session, error) {
	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, spec, load, tps)
	if err != nil {
		return nil, err
	}

	s := &session{
		spec:    spec,
		world:   w,
		scene:   scene,
		delayer: park.NewDelayer(),
		render:  system.NewRenderSystem(spec.Background.Or(nil)),
	}

	fadeIn := common.FramesFor(spec.EndScene.FadeInMS, tps)
	fadeOut := common.FramesFor(spec.EndScene.FadeOutMS, tps)
	delay := time.Duration(spec.EndScene.DelayMS) * time.Millisecond
	s.end = park.NewEndScene(s.delayer, delay, func() {
		n, err := system.ShowEndScene(w, fadeIn, fadeOut)
		if err != nil {
			log.Warn("end scene fade", "err", err)
		}
		s.ended = true
		log.Info("end scene shown", "elements", n)
		if onEnd != nil {
			onEnd()
		}
	})

	s.ctrl = park.NewController(system.NewSceneSurface(w, scene.Cars), s.end, park.WithLogger(log))
	for _, d := range scene.Draggables() {
		if err := s.ctrl.Add(d); err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}

	s.feedback = system.NewFeedbackSystem(common.FramesFor(popMS, tps), log)

	// The delay runs before the drag so a trigger starts counting on the
	// following tick.
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewDelaySystem(s.delayer, tps))
	w.AddSystem(system.NewDragSystem(s.ctrl, scene.Cars, log))
	w.AddSystem(s.feedback)
	w.AddSystem(system.NewTweenSystem())

	return s, nil
}

func (s *session) update() {
	s.world.Update()
}

func (s *session) parked() int {
	n := 0
	for _, id := range s.ctrl.IDs() {
		if d, ok := s.ctrl.Draggable(id); ok && d.Locked {
			n++
		}
	}
	return n
}
