package solid

import (
	"math"

	"github.com/df07/go-shape-transforms/pkg/core"
)

// boxDomain is the parameter box shared by the box and pyramid families
var boxDomain = NewDomain(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))

// Cube represents a cube centered at the origin
type Cube struct {
	HalfWidth float64
}

// NewCube creates a cube with the given half-width
// (a half-width of 1 creates a 2x2x2 cube)
func NewCube(halfWidth float64) Cube {
	return Cube{HalfWidth: halfWidth}
}

// Contains reports whether p lies inside the cube
func (c Cube) Contains(p core.Vec3) bool {
	a := c.HalfWidth
	return math.Abs(p.X) <= a && math.Abs(p.Y) <= a && math.Abs(p.Z) <= a
}

// Domain returns the cube's parameter box
func (c Cube) Domain() Domain {
	return boxDomain
}

// Transform returns the cube's parametric transform
func (c Cube) Transform() Transform {
	a := c.HalfWidth
	return cubeTransform{a: a, w: a * a * a}
}

// cubeTransform scales the unit cube; the Jacobian is constant
type cubeTransform struct {
	a float64 // half-width
	w float64 // a³
}

// Eval maps (lambda, mu, nu) in [-1,1]³ onto the cube
func (t cubeTransform) Eval(lambda, mu, nu float64) (float64, core.Vec3) {
	return t.w, core.NewVec3(t.a*lambda, t.a*mu, t.a*nu)
}

// Parallelepiped represents an axis-aligned rectangular box centered at the
// origin, described by its half-extents along each axis
type Parallelepiped struct {
	HalfSize core.Vec3
}

// NewParallelepiped creates a box from its half-extents
func NewParallelepiped(a, b, c float64) Parallelepiped {
	return Parallelepiped{HalfSize: core.NewVec3(a, b, c)}
}

// Contains reports whether p lies inside the box
func (b Parallelepiped) Contains(p core.Vec3) bool {
	return math.Abs(p.X) <= b.HalfSize.X &&
		math.Abs(p.Y) <= b.HalfSize.Y &&
		math.Abs(p.Z) <= b.HalfSize.Z
}

// Domain returns the box's parameter box
func (b Parallelepiped) Domain() Domain {
	return boxDomain
}

// Transform returns the box's parametric transform
func (b Parallelepiped) Transform() Transform {
	return parallelepipedTransform{
		size: b.HalfSize,
		w:    b.HalfSize.X * b.HalfSize.Y * b.HalfSize.Z,
	}
}

// parallelepipedTransform scales the unit cube per axis
type parallelepipedTransform struct {
	size core.Vec3
	w    float64 // abc
}

// Eval maps (lambda, mu, nu) in [-1,1]³ onto the box
func (t parallelepipedTransform) Eval(lambda, mu, nu float64) (float64, core.Vec3) {
	return t.w, t.size.MultiplyVec(core.NewVec3(lambda, mu, nu))
}
