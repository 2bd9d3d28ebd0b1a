package solid

import (
	"math"

	"github.com/df07/go-shape-transforms/pkg/core"
)

// toroidalDomain is the parameter box for the revolved solids: radial
// fraction lambda, cross-section angle theta, revolution angle phi
var toroidalDomain = NewDomain(
	core.NewVec3(0, -math.Pi, -math.Pi),
	core.NewVec3(1, math.Pi, math.Pi),
)

// Torus represents a torus centered at the origin with its axis along z.
// MinorRadius must not exceed MajorRadius (the solid is not
// self-intersecting).
type Torus struct {
	MajorRadius float64
	MinorRadius float64
}

// NewTorus creates a torus from its major and minor radii
func NewTorus(major, minor float64) Torus {
	return Torus{MajorRadius: major, MinorRadius: minor}
}

// Contains reports whether p lies inside the torus
func (t Torus) Contains(p core.Vec3) bool {
	s := math.Sqrt(p.X*p.X+p.Y*p.Y) - t.MajorRadius
	return s*s+p.Z*p.Z <= t.MinorRadius*t.MinorRadius
}

// Domain returns the torus's parameter box
func (t Torus) Domain() Domain {
	return toroidalDomain
}

// Transform returns the torus's parametric transform
func (t Torus) Transform() Transform {
	return torusTransform{
		major: t.MajorRadius,
		minor: t.MinorRadius,
		w:     t.MinorRadius * t.MinorRadius,
	}
}

// torusTransform maps a polar disk cross-section revolved about the z axis
type torusTransform struct {
	major float64 // major radius
	minor float64 // minor radius
	w     float64 // minor²
}

// Eval maps (lambda, theta, phi) onto the torus.
// The Jacobian is minor²·lambda·(major + minor·lambda·cos(theta)); it
// vanishes on the circular axis.
func (t torusTransform) Eval(lambda, theta, phi float64) (float64, core.Vec3) {
	rho := t.major + t.minor*lambda*math.Cos(theta)
	return t.w * lambda * rho, core.NewVec3(
		rho*math.Cos(phi),
		rho*math.Sin(phi),
		t.minor*lambda*math.Sin(theta),
	)
}

// Ring represents a torus with an elliptical cross-section, centered at the
// origin with its axis along z: the cross-section has semi-axis SemiAxisRadial
// in the radial direction and SemiAxisVertical along z. SemiAxisRadial must
// not exceed MajorRadius.
type Ring struct {
	MajorRadius      float64
	SemiAxisRadial   float64
	SemiAxisVertical float64
}

// NewRing creates a ring from its major radius and cross-section semi-axes
func NewRing(major, radial, vertical float64) Ring {
	return Ring{MajorRadius: major, SemiAxisRadial: radial, SemiAxisVertical: vertical}
}

// Contains reports whether p lies inside the ring
func (r Ring) Contains(p core.Vec3) bool {
	s := (math.Sqrt(p.X*p.X+p.Y*p.Y) - r.MajorRadius) / r.SemiAxisRadial
	z := p.Z / r.SemiAxisVertical
	return s*s+z*z <= 1
}

// Domain returns the ring's parameter box
func (r Ring) Domain() Domain {
	return toroidalDomain
}

// Transform returns the ring's parametric transform
func (r Ring) Transform() Transform {
	return ringTransform{
		major:  r.MajorRadius,
		radial: r.SemiAxisRadial,
		vert:   r.SemiAxisVertical,
		w:      r.SemiAxisRadial * r.SemiAxisVertical,
	}
}

// ringTransform maps an elliptical disk cross-section revolved about the
// z axis
type ringTransform struct {
	major  float64 // major radius
	radial float64 // cross-section semi-axis, radial direction
	vert   float64 // cross-section semi-axis, z direction
	w      float64 // radial·vert
}

// Eval maps (lambda, theta, phi) onto the ring
func (t ringTransform) Eval(lambda, theta, phi float64) (float64, core.Vec3) {
	rho := t.major + t.radial*lambda*math.Cos(theta)
	return t.w * lambda * rho, core.NewVec3(
		rho*math.Cos(phi),
		rho*math.Sin(phi),
		t.vert*lambda*math.Sin(theta),
	)
}

// triToroidDomain is the parameter box for the triangular toroid: height
// fraction lambda, width fraction mu, revolution angle phi
var triToroidDomain = NewDomain(
	core.NewVec3(0, -1, -math.Pi),
	core.NewVec3(1, 1, math.Pi),
)

// TriangularToroid represents an isoceles triangle revolved about the z axis:
// the triangle has half-width HalfWidth on the z = 0 plane, its apex at
// z = Height, and is centered radially at MajorRadius. HalfWidth must not
// exceed MajorRadius.
type TriangularToroid struct {
	MajorRadius float64
	HalfWidth   float64
	Height      float64
}

// NewTriangularToroid creates a triangular toroid from its major radius and
// cross-section half-width and height
func NewTriangularToroid(major, halfWidth, height float64) TriangularToroid {
	return TriangularToroid{MajorRadius: major, HalfWidth: halfWidth, Height: height}
}

// Contains reports whether p lies inside the toroid
func (t TriangularToroid) Contains(p core.Vec3) bool {
	a, b := t.HalfWidth, t.Height
	if p.Z < 0 || p.Z > b {
		return false
	}
	s := math.Abs(math.Sqrt(p.X*p.X+p.Y*p.Y) - t.MajorRadius)
	return b*s <= a*(b-p.Z) // |s| ≤ a·(1 - z/b), cross-multiplied
}

// Domain returns the toroid's parameter box
func (t TriangularToroid) Domain() Domain {
	return triToroidDomain
}

// Transform returns the toroid's parametric transform
func (t TriangularToroid) Transform() Transform {
	return triangularToroidTransform{
		major: t.MajorRadius,
		a:     t.HalfWidth,
		b:     t.Height,
		w:     t.HalfWidth * t.Height,
	}
}

// triangularToroidTransform maps a linearly tapered cross-section revolved
// about the z axis
type triangularToroidTransform struct {
	major float64 // major radius
	a     float64 // cross-section half-width
	b     float64 // cross-section height
	w     float64 // ab
}

// Eval maps (lambda, mu, phi) onto the toroid.
// The Jacobian is a·b·(1-lambda)·rho; it vanishes at the apex circle.
func (t triangularToroidTransform) Eval(lambda, mu, phi float64) (float64, core.Vec3) {
	taper := 1 - lambda
	rho := t.major + t.a*taper*mu
	return t.w * taper * rho, core.NewVec3(
		rho*math.Cos(phi),
		rho*math.Sin(phi),
		t.b*lambda,
	)
}
