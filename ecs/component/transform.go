package component

// Transform places an entity in lane space: X is lateral, Y is height and Z
// is depth along the direction of travel (entities scroll toward +Z).
// Rotations are in radians and purely cosmetic.
type Transform struct {
	X    float64
	Y    float64
	Z    float64
	RotX float64
	RotY float64
	RotZ float64
}

var TransformComponent = NewComponent[Transform]()
