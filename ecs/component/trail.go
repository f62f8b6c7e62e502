package component

import "image/color"

type TrailPoint struct {
	X float64
	Y float64
}

// Trail is a world-space polyline drawn through Points in order.
type Trail struct {
	Points    []TrailPoint
	Width     float32
	Color     color.Color
	AntiAlias bool
	Visible   bool
}

var TrailComponent = NewComponent[Trail]()
