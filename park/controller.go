package park

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/carpark/logging"
)

var (
	ErrUnknownDraggable = errors.New("park: unknown draggable")
	ErrLocked           = errors.New("park: draggable is locked")
	ErrDragActive       = errors.New("park: a drag is already active")
	ErrDuplicateID      = errors.New("park: duplicate draggable id")
	ErrEmptyID          = errors.New("park: empty draggable id")
)

// Surface is the presentation side of the controller: hand proxies, trails and
// draggable placement.
type Surface interface {
	ShowHand(id string, p Point)
	MoveHand(id string, p Point)
	HideHand(id string)
	DrawTrail(id string, points []Point)
	HideTrail(id string)
	PlaceDraggable(id string, p Point)
}

// Draggable is a car the player drags into its Target.
type Draggable struct {
	ID       string
	Home     Point
	Position Point
	Locked   bool
	Target   Region
}

// Outcome describes how a drop was resolved.
type Outcome struct {
	ID       string
	Accepted bool
	// Drop is the last trajectory point; zero when the trajectory was empty.
	Drop Point
	// AllLocked is the session state after the drop.
	AllLocked bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller implements drag-to-park for a fixed set of draggables. All
// methods must be called from the update loop.
type Controller struct {
	surface Surface
	end     *EndScene
	log     *slog.Logger

	order        []string
	draggables   map[string]*Draggable
	trajectories map[string][]Point

	active   string
	dragging bool
}

func NewController(surface Surface, end *EndScene, opts ...Option) *Controller {
	c := &Controller{
		surface:      surface,
		end:          end,
		log:          logging.NewNop(),
		draggables:   make(map[string]*Draggable),
		trajectories: make(map[string][]Point),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers a draggable. A zero Position defaults to Home.
func (c *Controller) Add(d Draggable) error {
	if d.ID == "" {
		return ErrEmptyID
	}
	if _, ok := c.draggables[d.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
	}
	if d.Position == (Point{}) {
		d.Position = d.Home
	}
	c.draggables[d.ID] = &d
	c.order = append(c.order, d.ID)
	c.trajectories[d.ID] = nil
	return nil
}

// StartDrag begins recording a trajectory for id. The hand proxy appears at
// the draggable's current position rather than at start.
func (c *Controller) StartDrag(id string, start Point) error {
	if c.dragging {
		return ErrDragActive
	}
	d, ok := c.draggables[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDraggable, id)
	}
	if d.Locked {
		return fmt.Errorf("%w: %q", ErrLocked, id)
	}

	c.trajectories[id] = nil
	c.active = id
	c.dragging = true
	c.surface.ShowHand(id, d.Position)
	c.log.Debug("drag started", "id", id, "x", start.X, "y", start.Y)
	return nil
}

// PointerMove extends the active trajectory. It is ignored when no drag is
// active.
func (c *Controller) PointerMove(p Point) {
	if !c.dragging {
		return
	}
	id := c.active
	traj := append(c.trajectories[id], p)
	c.trajectories[id] = traj

	c.surface.MoveHand(id, p)
	c.surface.DrawTrail(id, traj)
}

// EndDrag resolves the active drag. ok is false when no drag was active.
func (c *Controller) EndDrag() (out Outcome, ok bool) {
	if !c.dragging {
		return Outcome{}, false
	}
	id := c.active
	c.active = ""
	c.dragging = false

	d := c.draggables[id]
	traj := c.trajectories[id]
	c.surface.HideHand(id)

	out.ID = id
	if len(traj) > 0 {
		out.Drop = traj[len(traj)-1]
		out.Accepted = d.Target.Contains(out.Drop)
	}

	if out.Accepted {
		d.Position = d.Target.Center
		d.Locked = true
		c.surface.PlaceDraggable(id, d.Position)
		c.log.Info("car parked", "id", id, "x", out.Drop.X, "y", out.Drop.Y)
	} else {
		c.surface.HideTrail(id)
		c.trajectories[id] = nil
		c.log.Debug("drop rejected", "id", id, "points", len(traj))
	}

	out.AllLocked = c.AllLocked()
	if out.AllLocked && c.end.Trigger() {
		c.log.Info("all cars parked, end scene scheduled", "delay", c.end.Delay())
	}
	return out, true
}

// AllLocked reports whether every registered draggable is locked. It is false
// for an empty session.
func (c *Controller) AllLocked() bool {
	if len(c.order) == 0 {
		return false
	}
	for _, id := range c.order {
		if !c.draggables[id].Locked {
			return false
		}
	}
	return true
}

// Active returns the id being dragged.
func (c *Controller) Active() (string, bool) {
	return c.active, c.dragging
}

// Draggable returns a copy of the draggable state.
func (c *Controller) Draggable(id string) (Draggable, bool) {
	d, ok := c.draggables[id]
	if !ok {
		return Draggable{}, false
	}
	return *d, true
}

// Trajectory returns a copy of the recorded points for id.
func (c *Controller) Trajectory(id string) []Point {
	return append([]Point(nil), c.trajectories[id]...)
}

// IDs returns draggable ids in registration order.
func (c *Controller) IDs() []string {
	return append([]string(nil), c.order...)
}
