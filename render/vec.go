package render

import "math"

type vec3 struct {
	X, Y, Z float64
}

func (a vec3) add(b vec3) vec3      { return vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a vec3) sub(b vec3) vec3      { return vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a vec3) scale(s float64) vec3 { return vec3{a.X * s, a.Y * s, a.Z * s} }
func (a vec3) dot(b vec3) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a vec3) normalize() vec3 {
	l := math.Sqrt(a.dot(a))
	if l == 0 {
		return a
	}
	return a.scale(1 / l)
}

// rotate applies Euler angles in XYZ order: the vertex turns about Z, then
// Y, then X.
func (a vec3) rotate(rx, ry, rz float64) vec3 {
	v := a
	if rz != 0 {
		s, c := math.Sincos(rz)
		v = vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
	}
	if ry != 0 {
		s, c := math.Sincos(ry)
		v = vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
	}
	if rx != 0 {
		s, c := math.Sincos(rx)
		v = vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
	}
	return v
}
