package component

import "image/color"

type Shape int

const (
	ShapeBox Shape = iota
	ShapeDisc
)

// Model describes how a host draws an entity. Width, Height and Depth are
// full extents in lane units; discs use Width as diameter.
type Model struct {
	Shape      Shape
	Width      float64
	Height     float64
	Depth      float64
	Color      color.NRGBA
	CastShadow bool
}

var ModelComponent = NewComponent[Model]()
