package component

// TTL counts down update ticks. TTLSystem destroys the entity when Frames
// reaches zero.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
