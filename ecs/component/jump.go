package component

// Jump holds the avatar's vertical kinematics. Velocity is in units per
// frame.
type Jump struct {
	Velocity float64
	Airborne bool
}

var JumpComponent = NewComponent[Jump]()
