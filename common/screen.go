package common

// Default window size. The window is resizable; renderers follow the
// actual layout size.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
