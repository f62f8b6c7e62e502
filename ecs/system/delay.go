package system

import (
	"time"

	"github.com/milk9111/carpark/ecs"
)

// Advancer is a clock moved forward by the game tick.
type Advancer interface {
	Advance(dt time.Duration) int
}

// DelaySystem advances a scheduler clock by one tick every update, so delayed
// callbacks run inside the world update. The nanoseconds a second does not
// divide evenly into are carried, so after n updates the clock has moved
// exactly n/tps seconds, rounded down.
type DelaySystem struct {
	clock Advancer
	tps   int64
	carry int64
}

// NewDelaySystem returns a system ticking clock at tps updates per second. A
// non-positive tps advances one second per update.
func NewDelaySystem(clock Advancer, tps int) *DelaySystem {
	if tps <= 0 {
		tps = 1
	}
	return &DelaySystem{clock: clock, tps: int64(tps)}
}

func (s *DelaySystem) Update(w *ecs.World) {
	if s.clock == nil {
		return
	}
	total := int64(time.Second) + s.carry
	s.carry = total % s.tps
	s.clock.Advance(time.Duration(total / s.tps))
}
