package park

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
	Cancel(h Handle) bool
}

type delayed struct {
	handle Handle
	due    time.Duration
	fn     func()
}

// Delayer is a deterministic Scheduler driven by the game tick. Time only
// moves when Advance is called, so every callback runs on the update goroutine.
type Delayer struct {
	now     time.Duration
	next    Handle
	pending map[Handle]*delayed
}

func NewDelayer() *Delayer {
	return &Delayer{pending: make(map[Handle]*delayed)}
}

// Schedule registers fn to run once the clock has advanced by delay.
// Negative delays are treated as zero.
func (d *Delayer) Schedule(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	d.next++
	h := d.next
	d.pending[h] = &delayed{handle: h, due: d.now + delay, fn: fn}
	return h
}

// Cancel removes a pending callback. It reports whether h was still pending.
func (d *Delayer) Cancel(h Handle) bool {
	if _, ok := d.pending[h]; !ok {
		return false
	}
	delete(d.pending, h)
	return true
}

// Advance moves the clock forward by dt and runs every callback that became
// due, earliest first. It returns the number of callbacks run.
func (d *Delayer) Advance(dt time.Duration) int {
	if dt > 0 {
		d.now += dt
	}

	var due []*delayed
	for _, p := range d.pending {
		if p.due <= d.now {
			due = append(due, p)
		}
	}
	if len(due) == 0 {
		return 0
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].handle < due[j].handle
	})

	fired := 0
	for _, p := range due {
		// an earlier callback may have cancelled this one
		if _, ok := d.pending[p.handle]; !ok {
			continue
		}
		delete(d.pending, p.handle)
		if p.fn != nil {
			p.fn()
		}
		fired++
	}
	return fired
}

// Now returns the elapsed clock time.
func (d *Delayer) Now() time.Duration {
	return d.now
}

// Pending returns the number of callbacks waiting to run.
func (d *Delayer) Pending() int {
	return len(d.pending)
}
