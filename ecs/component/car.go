package component

// Car binds a draggable car to the entities that present its drag: the hand
// proxy, the trail, and its parking spot. Entity fields hold raw ecs.Entity
// values.
type Car struct {
	ID     string
	Hand   uint64
	Trail  uint64
	Spot   uint64
	Parked bool
}

var CarComponent = NewComponent[Car]()
