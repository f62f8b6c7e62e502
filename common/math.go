package common

import "math"

// FramesFor converts a duration in milliseconds to whole update ticks at tps,
// rounding up so short durations still last at least one frame.
func FramesFor(ms, tps int) int {
	if ms <= 0 || tps <= 0 {
		return 0
	}
	return int(math.Ceil(float64(ms) * float64(tps) / 1000))
}
