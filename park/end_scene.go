package park

import "time"

// DefaultEndSceneDelay is the wait between the last car parking and the end
// scene appearing.
const DefaultEndSceneDelay = 2000 * time.Millisecond

// EndScene schedules the terminal overlay. Triggers before it fires replace
// the pending one; once fired it never fires again.
type EndScene struct {
	sched  Scheduler
	delay  time.Duration
	onFire func()

	handle  Handle
	pending bool
	fired   bool
}

func NewEndScene(sched Scheduler, delay time.Duration, onFire func()) *EndScene {
	return &EndScene{sched: sched, delay: delay, onFire: onFire}
}

// Trigger (re)starts the delay. It reports whether a firing is now scheduled.
func (e *EndScene) Trigger() bool {
	if e == nil || e.fired {
		return false
	}
	if e.pending {
		e.sched.Cancel(e.handle)
	}
	e.pending = true
	e.handle = e.sched.Schedule(e.delay, e.fire)
	return true
}

func (e *EndScene) fire() {
	if e.fired {
		return
	}
	e.pending = false
	e.fired = true
	if e.onFire != nil {
		e.onFire()
	}
}

// Pending reports whether a firing is scheduled but has not run yet.
func (e *EndScene) Pending() bool {
	return e != nil && e.pending
}

// Fired reports whether the end scene has been shown.
func (e *EndScene) Fired() bool {
	return e != nil && e.fired
}

// Delay returns the configured delay.
func (e *EndScene) Delay() time.Duration {
	return e.delay
}
