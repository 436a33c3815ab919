package component

// Spin is a per-frame rotation increment applied while the game runs.
type Spin struct {
	X float64
	Y float64
	Z float64
}

var SpinComponent = NewComponent[Spin]()
