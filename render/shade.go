package render

import (
	"image/color"
	"math"

	"github.com/milk9111/lanerunner/common"
)

const (
	ambient = 0.6
	diffuse = 0.8
)

// sunDir points from the scene toward the directional light.
var sunDir = vec3{5, 10, 5}.normalize()

// lit scales c by ambient plus Lambert diffuse for surface normal n.
func lit(c color.NRGBA, n vec3) color.NRGBA {
	k := ambient + diffuse*math.Max(0, n.dot(sunDir))
	return scaleRGB(c, k)
}

// litTwoSided lights a thin surface seen from either side.
func litTwoSided(c color.NRGBA, n vec3) color.NRGBA {
	k := ambient + diffuse*math.Abs(n.dot(sunDir))
	return scaleRGB(c, k)
}

func scaleRGB(c color.NRGBA, k float64) color.NRGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*k)))
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// fogged blends c toward fog linearly between the near and far fog depths.
func fogged(c, fog color.NRGBA, depth, near, far float64) color.NRGBA {
	f := float32(fogAmount(depth, near, far))
	if f == 0 {
		return c
	}
	ch := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(common.Lerp(float32(a), float32(b), f))))
	}
	return color.NRGBA{R: ch(c.R, fog.R), G: ch(c.G, fog.G), B: ch(c.B, fog.B), A: c.A}
}

// fogAmount is 0 before the near fog depth and 1 past the far one.
func fogAmount(depth, near, far float64) float64 {
	if far <= near {
		return 0
	}
	return common.Clamp01((depth - near) / (far - near))
}

// shadowOffset is where a point at height y lands on the ground along the
// sun's rays.
func shadowOffset(y float64) (float64, float64) {
	t := y / sunDir.Y
	return -sunDir.X * t, -sunDir.Z * t
}
