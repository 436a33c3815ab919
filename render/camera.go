package render

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lanerunner/prefabs"
)

// nearPlane is the closest depth that still projects.
const nearPlane = 0.1

// Camera is a perspective camera looking from an eye point at a target with
// world +Y up. FOV is vertical, in degrees.
type Camera struct {
	eye    vec3
	target vec3
	fov    float64

	width, height float64

	forward, right, up vec3
	focal              float64
}

func NewCamera(spec prefabs.CameraSpec, width, height int) *Camera {
	c := &Camera{
		eye:    vec3{spec.X, spec.Y, spec.Z},
		target: vec3{spec.LookX, spec.LookY, spec.LookZ},
		fov:    spec.FOV,
	}
	c.forward = c.target.sub(c.eye).normalize()
	c.right = c.forward.cross(vec3{0, 1, 0}).normalize()
	c.up = c.right.cross(c.forward)
	c.SetViewport(width, height)
	return c
}

// SetViewport keeps the vertical field of view and recenters on resize.
func (c *Camera) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = float64(width)
	c.height = float64(height)
	c.focal = (c.height / 2) / math.Tan(c.fov*math.Pi/360)
}

func (c *Camera) Viewport() (float64, float64) {
	return c.width, c.height
}

// Depth is the distance of p along the view direction.
func (c *Camera) Depth(p vec3) float64 {
	return p.sub(c.eye).dot(c.forward)
}

// Project maps a world point to screen pixels. ok is false for points at or
// behind the near plane.
func (c *Camera) Project(p vec3) (screen cp.Vector, depth float64, ok bool) {
	d := p.sub(c.eye)
	depth = d.dot(c.forward)
	if depth < nearPlane {
		return cp.Vector{}, depth, false
	}
	view := cp.Vector{X: d.dot(c.right), Y: d.dot(c.up)}.Mult(c.focal / depth)
	return cp.Vector{X: c.width/2 + view.X, Y: c.height/2 - view.Y}, depth, true
}

// ScreenRadius is the projected size of a world length r at depth.
func (c *Camera) ScreenRadius(r, depth float64) float64 {
	if depth < nearPlane {
		return 0
	}
	return r * c.focal / depth
}

func (c *Camera) Eye() vec3 {
	return c.eye
}
