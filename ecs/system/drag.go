package system

import (
	"log/slog"

	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/milk9111/carpark/logging"
	"github.com/milk9111/carpark/park"
)

// DragController is the part of park.Controller the drag system drives.
type DragController interface {
	StartDrag(id string, start park.Point) error
	PointerMove(p park.Point)
	EndDrag() (park.Outcome, bool)
	Active() (string, bool)
}

// DragSystem turns pointer state into controller calls. Presses are resolved
// against the pick world; the car under the pointer starts the drag.
type DragSystem struct {
	ctrl DragController
	cars map[string]ecs.Entity
	log  *slog.Logger
}

func NewDragSystem(ctrl DragController, cars map[string]ecs.Entity, log *slog.Logger) *DragSystem {
	if log == nil {
		log = logging.NewNop()
	}
	return &DragSystem{ctrl: ctrl, cars: cars, log: log}
}

func (s *DragSystem) Update(w *ecs.World) {
	if w == nil || s.ctrl == nil {
		return
	}

	ptrEnt, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, ok := ecs.Get(w, ptrEnt, component.PointerComponent.Kind())
	if !ok {
		return
	}
	p := park.Point{X: ptr.X, Y: ptr.Y}

	if id, dragging := s.ctrl.Active(); dragging {
		if ptr.Moved {
			s.ctrl.PointerMove(p)
		}
		if ptr.JustReleased || !ptr.Pressed {
			out, _ := s.ctrl.EndDrag()
			w.Events().Push(ecs.Event{
				Type: ecs.EventCarDropped,
				Data: ecs.DropEvent{
					Car:       s.cars[id],
					CarID:     out.ID,
					Accepted:  out.Accepted,
					AllParked: out.AllLocked,
				},
			})
		}
		return
	}

	if !ptr.JustPressed {
		return
	}
	pw := w.PickWorld()
	if pw == nil {
		return
	}
	e, ok := pw.At(ptr.X, ptr.Y)
	if !ok {
		return
	}
	car, ok := ecs.Get(w, e, component.CarComponent.Kind())
	if !ok || car.Parked {
		return
	}
	if err := s.ctrl.StartDrag(car.ID, p); err != nil {
		s.log.Debug("drag refused", "car", car.ID, "err", err)
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventDragStarted, Data: car.ID})
}

// SceneSurface presents controller state through scene entities: it toggles
// hand sprites, feeds trail points, and moves parked cars onto their spots.
type SceneSurface struct {
	w    *ecs.World
	cars map[string]ecs.Entity
}

var _ park.Surface = (*SceneSurface)(nil)

func NewSceneSurface(w *ecs.World, cars map[string]ecs.Entity) *SceneSurface {
	return &SceneSurface{w: w, cars: cars}
}

func (s *SceneSurface) car(id string) (ecs.Entity, *component.Car, bool) {
	e, ok := s.cars[id]
	if !ok {
		return 0, nil, false
	}
	car, ok := ecs.Get(s.w, e, component.CarComponent.Kind())
	return e, car, ok
}

func (s *SceneSurface) ShowHand(id string, p park.Point) {
	_, car, ok := s.car(id)
	if !ok {
		return
	}
	hand := ecs.Entity(car.Hand)
	if sp, ok := ecs.Get(s.w, hand, component.SpriteComponent.Kind()); ok {
		sp.Hidden = false
	}
	moveTo(s.w, hand, p)
}

func (s *SceneSurface) MoveHand(id string, p park.Point) {
	_, car, ok := s.car(id)
	if !ok {
		return
	}
	moveTo(s.w, ecs.Entity(car.Hand), p)
}

func (s *SceneSurface) HideHand(id string) {
	_, car, ok := s.car(id)
	if !ok {
		return
	}
	if sp, ok := ecs.Get(s.w, ecs.Entity(car.Hand), component.SpriteComponent.Kind()); ok {
		sp.Hidden = true
	}
}

func (s *SceneSurface) DrawTrail(id string, points []park.Point) {
	_, car, ok := s.car(id)
	if !ok {
		return
	}
	tr, ok := ecs.Get(s.w, ecs.Entity(car.Trail), component.TrailComponent.Kind())
	if !ok {
		return
	}
	tr.Points = tr.Points[:0]
	for _, p := range points {
		tr.Points = append(tr.Points, component.TrailPoint{X: p.X, Y: p.Y})
	}
	tr.Visible = true
}

func (s *SceneSurface) HideTrail(id string) {
	_, car, ok := s.car(id)
	if !ok {
		return
	}
	tr, ok := ecs.Get(s.w, ecs.Entity(car.Trail), component.TrailComponent.Kind())
	if !ok {
		return
	}
	tr.Points = nil
	tr.Visible = false
}

func (s *SceneSurface) PlaceDraggable(id string, p park.Point) {
	e, car, ok := s.car(id)
	if !ok {
		return
	}
	moveTo(s.w, e, p)
	car.Parked = true
	if pw := s.w.PickWorld(); pw != nil {
		pw.Remove(e)
	}
}

func moveTo(w *ecs.World, e ecs.Entity, p park.Point) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = p.X
		t.Y = p.Y
	}
}
