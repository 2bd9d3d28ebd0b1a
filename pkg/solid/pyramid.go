package solid

import (
	"math"

	"github.com/df07/go-shape-transforms/pkg/core"
)

// The pyramid family shares the [-1,1]³ domain with the box family. Each
// variant tapers the x and y extents linearly along z with a factor kappa(nu)
// that reaches zero at the apex (or the taper ratio at the truncation plane).
// Containment tests use the cross-multiplied form of the taper inequality so
// degenerate (zero half-height) shapes never divide by zero.

// SquarePyramid represents a pyramid with a square base, centered at the
// origin: the base has half-width HalfWidth at z = -HalfHeight and the apex
// sits at z = +HalfHeight
type SquarePyramid struct {
	HalfWidth  float64
	HalfHeight float64
}

// NewSquarePyramid creates a square pyramid from its base half-width and
// half-height
func NewSquarePyramid(halfWidth, halfHeight float64) SquarePyramid {
	return SquarePyramid{HalfWidth: halfWidth, HalfHeight: halfHeight}
}

// Contains reports whether p lies inside the pyramid
func (s SquarePyramid) Contains(p core.Vec3) bool {
	a, b := s.HalfWidth, s.HalfHeight
	if math.Abs(p.Z) > b {
		return false
	}
	bound := a * (b - p.Z) // taper bound scaled by 2b
	return 2*b*math.Abs(p.X) <= bound && 2*b*math.Abs(p.Y) <= bound
}

// Domain returns the pyramid's parameter box
func (s SquarePyramid) Domain() Domain {
	return boxDomain
}

// Transform returns the pyramid's parametric transform
func (s SquarePyramid) Transform() Transform {
	return squarePyramidTransform{
		a: s.HalfWidth,
		b: s.HalfHeight,
		w: s.HalfWidth * s.HalfWidth * s.HalfHeight,
	}
}

// squarePyramidTransform tapers the unit box linearly toward the apex
type squarePyramidTransform struct {
	a float64 // base half-width
	b float64 // half-height
	w float64 // a²b
}

// Eval maps (lambda, mu, nu) in [-1,1]³ onto the pyramid.
// The Jacobian is a²·b·kappa²; it vanishes at the apex.
func (t squarePyramidTransform) Eval(lambda, mu, nu float64) (float64, core.Vec3) {
	kappa := (1 - nu) / 2
	return t.w * kappa * kappa, core.NewVec3(
		t.a*kappa*lambda,
		t.a*kappa*mu,
		t.b*nu,
	)
}

// RectangularPyramid represents a pyramid with a rectangular base, centered
// at the origin with the apex at z = +HalfHeight
type RectangularPyramid struct {
	HalfWidthX float64
	HalfWidthY float64
	HalfHeight float64
}

// NewRectangularPyramid creates a rectangular pyramid from its base
// half-widths and half-height
func NewRectangularPyramid(a, b, halfHeight float64) RectangularPyramid {
	return RectangularPyramid{HalfWidthX: a, HalfWidthY: b, HalfHeight: halfHeight}
}

// Contains reports whether p lies inside the pyramid
func (r RectangularPyramid) Contains(p core.Vec3) bool {
	c := r.HalfHeight
	if math.Abs(p.Z) > c {
		return false
	}
	taper := c - p.Z // taper factor scaled by 2c
	return 2*c*math.Abs(p.X) <= r.HalfWidthX*taper &&
		2*c*math.Abs(p.Y) <= r.HalfWidthY*taper
}

// Domain returns the pyramid's parameter box
func (r RectangularPyramid) Domain() Domain {
	return boxDomain
}

// Transform returns the pyramid's parametric transform
func (r RectangularPyramid) Transform() Transform {
	return rectangularPyramidTransform{
		a: r.HalfWidthX,
		b: r.HalfWidthY,
		c: r.HalfHeight,
		w: r.HalfWidthX * r.HalfWidthY * r.HalfHeight,
	}
}

// rectangularPyramidTransform tapers the unit box linearly toward the apex
type rectangularPyramidTransform struct {
	a, b float64 // base half-widths
	c    float64 // half-height
	w    float64 // abc
}

// Eval maps (lambda, mu, nu) in [-1,1]³ onto the pyramid
func (t rectangularPyramidTransform) Eval(lambda, mu, nu float64) (float64, core.Vec3) {
	kappa := (1 - nu) / 2
	return t.w * kappa * kappa, core.NewVec3(
		t.a*kappa*lambda,
		t.b*kappa*mu,
		t.c*nu,
	)
}

// TruncatedSquarePyramid represents a square frustum centered at the origin:
// the base has half-width HalfWidth at z = -HalfHeight and the top face has
// half-width TaperRatio·HalfWidth at z = +HalfHeight
type TruncatedSquarePyramid struct {
	HalfWidth  float64
	HalfHeight float64
	TaperRatio float64
}

// NewTruncatedSquarePyramid creates a frustum from its base half-width,
// half-height, and top-to-base taper ratio
func NewTruncatedSquarePyramid(halfWidth, halfHeight, taperRatio float64) TruncatedSquarePyramid {
	return TruncatedSquarePyramid{
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		TaperRatio: taperRatio,
	}
}

// Contains reports whether p lies inside the frustum
func (f TruncatedSquarePyramid) Contains(p core.Vec3) bool {
	a, b, r := f.HalfWidth, f.HalfHeight, f.TaperRatio
	if math.Abs(p.Z) > b {
		return false
	}
	bound := a * ((b - p.Z) + r*(b+p.Z)) // taper bound scaled by 2b
	return 2*b*math.Abs(p.X) <= bound && 2*b*math.Abs(p.Y) <= bound
}

// Domain returns the frustum's parameter box
func (f TruncatedSquarePyramid) Domain() Domain {
	return boxDomain
}

// Transform returns the frustum's parametric transform
func (f TruncatedSquarePyramid) Transform() Transform {
	return truncatedPyramidTransform{
		a:     f.HalfWidth,
		b:     f.HalfHeight,
		taper: f.TaperRatio,
		w:     f.HalfWidth * f.HalfWidth * f.HalfHeight,
	}
}

// truncatedPyramidTransform interpolates the half-width from the base value
// at nu = -1 to the tapered value at nu = +1
type truncatedPyramidTransform struct {
	a     float64 // base half-width
	b     float64 // half-height
	taper float64 // top-to-base ratio
	w     float64 // a²b
}

// Eval maps (lambda, mu, nu) in [-1,1]³ onto the frustum
func (t truncatedPyramidTransform) Eval(lambda, mu, nu float64) (float64, core.Vec3) {
	kappa := ((1 - nu) + t.taper*(1+nu)) / 2
	return t.w * kappa * kappa, core.NewVec3(
		t.a*kappa*lambda,
		t.a*kappa*mu,
		t.b*nu,
	)
}
