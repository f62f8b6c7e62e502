package component

// Draw order of the scene, back to front.
const (
	LayerSpot    = 0
	LayerTrail   = 10
	LayerCar     = 20
	LayerHand    = 30
	LayerOverlay = 100
)

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
