package component

// Opacity scales the alpha of an entity's sprite or trail. Entities without
// it draw fully opaque.
type Opacity struct {
	Alpha float64
}

var OpacityComponent = NewComponent[Opacity]()
