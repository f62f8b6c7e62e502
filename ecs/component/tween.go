package component

import "github.com/tanema/gween"

type TweenProperty int

const (
	TweenAlpha TweenProperty = iota
	TweenScale
)

// Tween animates one property of its entity. Time is counted in update
// ticks. A one-shot tween runs Tween once; a looping tween runs Loop until
// it is cancelled.
type Tween struct {
	Property TweenProperty
	Tween    *gween.Tween
	Loop     *gween.Sequence
	// Rest is applied when the tween finishes or is cancelled.
	Rest float64
}

var TweenComponent = NewComponent[Tween]()
