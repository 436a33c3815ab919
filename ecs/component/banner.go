package component

// Banner is a short line of text the host shows over the scene.
type Banner struct {
	Text  string
	Event string
}

var BannerComponent = NewComponent[Banner]()
