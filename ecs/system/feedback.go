package system

import (
	"log/slog"

	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/milk9111/carpark/logging"
	"github.com/tanema/gween/ease"
)

// PopScale is the scale a parked car starts its pop from.
const PopScale = 1.25

// FeedbackStats counts drops for the debug overlay.
type FeedbackStats struct {
	Attempts int
	Parked   int
	Rejected int
	Ended    bool
}

// FeedbackSystem reacts to drop events: accepted cars get a short scale pop.
// It also records when the end scene has started.
type FeedbackSystem struct {
	popFrames int
	stats     FeedbackStats
	log       *slog.Logger
}

func NewFeedbackSystem(popFrames int, log *slog.Logger) *FeedbackSystem {
	if log == nil {
		log = logging.NewNop()
	}
	return &FeedbackSystem{popFrames: popFrames, log: log}
}

func (s *FeedbackSystem) Stats() FeedbackStats { return s.stats }

func (s *FeedbackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventEndScene {
			s.stats.Ended = true
			continue
		}
		drop, ok := evt.Data.(ecs.DropEvent)
		if evt.Type != ecs.EventCarDropped || !ok {
			continue
		}
		s.stats.Attempts++
		if !drop.Accepted {
			s.stats.Rejected++
			continue
		}
		s.stats.Parked++
		if err := StartTween(w, drop.Car, component.TweenScale, PopScale, 1, s.popFrames, ease.OutQuad); err != nil {
			s.log.Warn("car pop", "car", drop.CarID, "err", err)
		}
	}
}
