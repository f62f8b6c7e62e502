package component

// ParkingSpot is the drop target for the car with CarID. The entity's
// Transform is the spot centre.
type ParkingSpot struct {
	CarID  string
	Width  float64
	Height float64
}

var ParkingSpotComponent = NewComponent[ParkingSpot]()
