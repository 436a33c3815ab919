// Package render draws the lane world with a perspective camera: sky and
// clouds, a fogged ground, blob shadows, then every model back to front.
package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

const (
	groundStrips   = 24
	circleSegments = 20
	shadowAlpha    = 0.35
	// shadowFade is the height at which a shadow disappears.
	shadowFade = 6.0
)

type cloud struct {
	center vec3
	scale  vec3
}

type drawItem struct {
	depth     float64
	transform component.Transform
	model     component.Model
}

type Scene struct {
	camera *Camera
	spec   prefabs.SceneSpec
	clouds []cloud

	white *ebiten.Image
	items []drawItem
	verts []ebiten.Vertex
	idxs  []uint16
}

// NewScene builds a scene for a width x height target. rng only places
// clouds; nil uses a fixed seed.
func NewScene(spec prefabs.SceneSpec, width, height int, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &Scene{
		camera: NewCamera(spec.Camera, width, height),
		spec:   spec,
	}
	s.clouds = makeClouds(spec.Clouds, rng)
	return s
}

func makeClouds(n int, rng *rand.Rand) []cloud {
	clouds := make([]cloud, 0, n)
	for i := 0; i < n; i++ {
		clouds = append(clouds, cloud{
			center: vec3{rng.Float64()*20 - 10, 3 + rng.Float64()*2, -rng.Float64() * 50},
			scale:  vec3{1 + rng.Float64(), 0.5 + rng.Float64()*0.5, 1 + rng.Float64()},
		})
	}
	return clouds
}

// SetSpec swaps colors, fog and camera after a tuning reload. Clouds stay.
func (s *Scene) SetSpec(spec prefabs.SceneSpec) {
	w, h := s.camera.Viewport()
	s.spec = spec
	s.camera = NewCamera(spec.Camera, int(w), int(h))
}

func (s *Scene) SetViewport(width, height int) {
	s.camera.SetViewport(width, height)
}

func (s *Scene) Camera() *Camera {
	return s.camera
}

func (s *Scene) Draw(dst *ebiten.Image, w *ecs.World) {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	dst.Fill(s.spec.Sky.NRGBA)
	s.drawClouds(dst)
	s.drawGround(dst)

	s.collect(w)
	for _, it := range s.items {
		if it.model.CastShadow {
			s.drawShadow(dst, it)
		}
	}
	for _, it := range s.items {
		switch it.model.Shape {
		case component.ShapeBox:
			s.drawBox(dst, it)
		case component.ShapeDisc:
			s.drawDisc(dst, it)
		}
	}
}

// collect gathers every visible model sorted far to near.
func (s *Scene) collect(w *ecs.World) {
	s.items = s.items[:0]
	ecs.ForEach2(w, component.ModelComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *component.Model, t *component.Transform) {
		depth := s.camera.Depth(vec3{t.X, t.Y, t.Z})
		if depth < nearPlane {
			return
		}
		s.items = append(s.items, drawItem{depth: depth, transform: *t, model: *m})
	})
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].depth > s.items[j].depth
	})
}

func (s *Scene) fog(c color.NRGBA, depth float64) color.NRGBA {
	return fogged(c, s.spec.Sky.NRGBA, depth, s.spec.FogNear, s.spec.FogFar)
}

func (s *Scene) drawClouds(dst *ebiten.Image) {
	white := colornames.White
	for i := len(s.clouds) - 1; i >= 0; i-- {
		c := s.clouds[i]
		center, depth, ok := s.camera.Project(c.center)
		if !ok {
			continue
		}
		rx := s.camera.ScreenRadius(0.5*c.scale.X, depth)
		ry := s.camera.ScreenRadius(0.5*c.scale.Y, depth)
		col := s.fog(color.NRGBA{R: white.R, G: white.G, B: white.B, A: 204}, depth)
		s.fillPolygon(dst, ellipse(center, rx, ry), col)
	}
}

func ellipse(center cp.Vector, rx, ry float64) []cp.Vector {
	pts := make([]cp.Vector, 0, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts = append(pts, center.Add(cp.Vector{X: math.Cos(a) * rx, Y: math.Sin(a) * ry}))
	}
	return pts
}

// drawGround splits the plane into strips along the lane so fog can shade
// each strip by its own depth. The part behind the camera is cut off.
func (s *Scene) drawGround(dst *ebiten.Image) {
	halfW := s.spec.GroundWidth / 2
	far := -s.spec.GroundLength / 2
	near := math.Min(s.spec.GroundLength/2, s.camera.Eye().Z-nearPlane*2)
	if near <= far {
		return
	}
	base := lit(s.spec.Ground.NRGBA, vec3{0, 1, 0})

	step := (near - far) / groundStrips
	for i := 0; i < groundStrips; i++ {
		z0 := far + float64(i)*step
		z1 := z0 + step
		quad := [4]vec3{{-halfW, 0, z0}, {halfW, 0, z0}, {halfW, 0, z1}, {-halfW, 0, z1}}
		pts := make([]cp.Vector, 0, 4)
		var depthSum float64
		for _, p := range quad {
			sp, d, ok := s.camera.Project(p)
			if !ok {
				pts = nil
				break
			}
			pts = append(pts, sp)
			depthSum += d
		}
		if pts == nil {
			continue
		}
		s.fillPolygon(dst, pts, s.fog(base, depthSum/4))
	}
}

func (s *Scene) drawShadow(dst *ebiten.Image, it drawItem) {
	t := it.transform
	bottom := t.Y - it.model.Height/2
	if bottom < 0 {
		bottom = 0
	}
	fade := 1 - bottom/shadowFade
	if fade <= 0 {
		return
	}
	dx, dz := shadowOffset(t.Y)
	center := vec3{t.X + dx, 0.01, t.Z + dz}
	r := math.Max(it.model.Width, it.model.Depth) * 0.6

	pts := make([]cp.Vector, 0, circleSegments)
	var depth float64
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		sp, d, ok := s.camera.Project(center.add(vec3{math.Cos(a) * r, 0, math.Sin(a) * r}))
		if !ok {
			return
		}
		pts = append(pts, sp)
		depth = d
	}
	shadow := colornames.Black
	col := color.NRGBA{R: shadow.R, G: shadow.G, B: shadow.B, A: uint8(255 * shadowAlpha * fade)}
	col.A = uint8(float64(col.A) * (1 - fogAmount(depth, s.spec.FogNear, s.spec.FogFar)))
	s.fillPolygon(dst, pts, col)
}

type boxFace struct {
	corners [4]int
	normal  vec3
}

var boxCorners = [8]vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var boxFaces = [6]boxFace{
	{[4]int{4, 5, 6, 7}, vec3{0, 0, 1}},
	{[4]int{1, 0, 3, 2}, vec3{0, 0, -1}},
	{[4]int{5, 1, 2, 6}, vec3{1, 0, 0}},
	{[4]int{0, 4, 7, 3}, vec3{-1, 0, 0}},
	{[4]int{3, 7, 6, 2}, vec3{0, 1, 0}},
	{[4]int{0, 1, 5, 4}, vec3{0, -1, 0}},
}

func (s *Scene) drawBox(dst *ebiten.Image, it drawItem) {
	t := it.transform
	half := vec3{it.model.Width / 2, it.model.Height / 2, it.model.Depth / 2}
	pos := vec3{t.X, t.Y, t.Z}

	var world [8]vec3
	var screen [8]cp.Vector
	for i, c := range boxCorners {
		local := vec3{c.X * half.X, c.Y * half.Y, c.Z * half.Z}
		world[i] = local.rotate(t.RotX, t.RotY, t.RotZ).add(pos)
		sp, _, ok := s.camera.Project(world[i])
		if !ok {
			return
		}
		screen[i] = sp
	}

	eye := s.camera.Eye()
	for _, f := range boxFaces {
		n := f.normal.rotate(t.RotX, t.RotY, t.RotZ)
		var center vec3
		for _, ci := range f.corners {
			center = center.add(world[ci])
		}
		center = center.scale(0.25)
		if n.dot(eye.sub(center)) <= 0 {
			continue
		}
		col := s.fog(lit(it.model.Color, n), s.camera.Depth(center))
		pts := []cp.Vector{screen[f.corners[0]], screen[f.corners[1]], screen[f.corners[2]], screen[f.corners[3]]}
		s.fillPolygon(dst, pts, col)
	}
}

// drawDisc draws a flat round model whose axis is local Y.
func (s *Scene) drawDisc(dst *ebiten.Image, it drawItem) {
	t := it.transform
	r := it.model.Width / 2
	pos := vec3{t.X, t.Y, t.Z}

	pts := make([]cp.Vector, 0, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		local := vec3{math.Cos(a) * r, 0, math.Sin(a) * r}
		sp, _, ok := s.camera.Project(local.rotate(t.RotX, t.RotY, t.RotZ).add(pos))
		if !ok {
			return
		}
		pts = append(pts, sp)
	}
	n := vec3{0, 1, 0}.rotate(t.RotX, t.RotY, t.RotZ)
	s.fillPolygon(dst, pts, s.fog(litTwoSided(it.model.Color, n), it.depth))
}

// fillPolygon fills a convex polygon as a triangle fan.
func (s *Scene) fillPolygon(dst *ebiten.Image, pts []cp.Vector, c color.NRGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255

	s.verts = s.verts[:0]
	s.idxs = s.idxs[:0]
	for _, p := range pts {
		s.verts = append(s.verts, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		s.idxs = append(s.idxs, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(s.verts, s.idxs, s.white, op)
}
