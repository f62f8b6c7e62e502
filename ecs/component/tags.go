package component

// OverlayTag marks end-scene elements that fade in.
type OverlayTag struct {
	Name string
}

var OverlayTagComponent = NewComponent[OverlayTag]()

// PlayFieldTag marks entities that fade out when the end scene starts.
type PlayFieldTag struct{}

var PlayFieldTagComponent = NewComponent[PlayFieldTag]()
