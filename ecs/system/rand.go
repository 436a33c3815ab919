package system

// Rand is the random source used for spawn placement. *math/rand.Rand and
// *math/rand/v2.Rand both satisfy it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// SequenceRand replays fixed values in order, wrapping at the end. It gives
// tests exact spawn positions.
type SequenceRand struct {
	Values []float64
	next   int
}

func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{Values: values}
}

func (r *SequenceRand) Float64() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return v
}
