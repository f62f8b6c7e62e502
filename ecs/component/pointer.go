package component

// Pointer stores the per-frame state of the primary pointer (mouse or first
// touch) in screen coordinates.
type Pointer struct {
	X            float64
	Y            float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	Moved        bool
}

var PointerComponent = NewComponent[Pointer]()
