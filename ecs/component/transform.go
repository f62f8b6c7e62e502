package component

// Transform positions an entity in scene coordinates. Sprites are drawn with
// their origin at (X, Y). Zero scales are treated as 1.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
