package solid

import (
	"math"

	"github.com/df07/go-shape-transforms/pkg/core"
)

// cylindricalDomain is the parameter box for the cylinder family:
// radial fraction lambda, azimuthal angle phi, axial fraction nu
var cylindricalDomain = NewDomain(
	core.NewVec3(0, -math.Pi, -1),
	core.NewVec3(1, math.Pi, 1),
)

// Cylinder represents a circular cylinder centered at the origin with its
// axis along z
type Cylinder struct {
	Radius     float64
	HalfHeight float64
}

// NewCylinder creates a cylinder with the given radius and half-height
func NewCylinder(radius, halfHeight float64) Cylinder {
	return Cylinder{Radius: radius, HalfHeight: halfHeight}
}

// Contains reports whether p lies inside the cylinder
func (c Cylinder) Contains(p core.Vec3) bool {
	return p.X*p.X+p.Y*p.Y <= c.Radius*c.Radius && math.Abs(p.Z) <= c.HalfHeight
}

// Domain returns the cylinder's parameter box
func (c Cylinder) Domain() Domain {
	return cylindricalDomain
}

// Transform returns the cylinder's parametric transform
func (c Cylinder) Transform() Transform {
	return cylinderTransform{
		r: c.Radius,
		c: c.HalfHeight,
		w: c.Radius * c.Radius * c.HalfHeight,
	}
}

// cylinderTransform is the polar disk map extruded along z
type cylinderTransform struct {
	r float64 // radius
	c float64 // half-height
	w float64 // r²c
}

// Eval maps (lambda, phi, nu) onto the cylinder.
// The Jacobian is r²·c·lambda; it vanishes on the axis.
func (t cylinderTransform) Eval(lambda, phi, nu float64) (float64, core.Vec3) {
	rho := t.r * lambda
	return t.w * lambda, core.NewVec3(
		rho*math.Cos(phi),
		rho*math.Sin(phi),
		t.c*nu,
	)
}

// EllipticCylinder represents a cylinder with an elliptical cross-section,
// centered at the origin with its axis along z
type EllipticCylinder struct {
	SemiAxisX  float64
	SemiAxisY  float64
	HalfHeight float64
}

// NewEllipticCylinder creates an elliptic cylinder from its cross-section
// semi-axes and half-height
func NewEllipticCylinder(a, b, halfHeight float64) EllipticCylinder {
	return EllipticCylinder{SemiAxisX: a, SemiAxisY: b, HalfHeight: halfHeight}
}

// Contains reports whether p lies inside the elliptic cylinder
func (e EllipticCylinder) Contains(p core.Vec3) bool {
	u := p.X / e.SemiAxisX
	v := p.Y / e.SemiAxisY
	return u*u+v*v <= 1 && math.Abs(p.Z) <= e.HalfHeight
}

// Domain returns the elliptic cylinder's parameter box
func (e EllipticCylinder) Domain() Domain {
	return cylindricalDomain
}

// Transform returns the elliptic cylinder's parametric transform
func (e EllipticCylinder) Transform() Transform {
	return ellipticCylinderTransform{
		a: e.SemiAxisX,
		b: e.SemiAxisY,
		c: e.HalfHeight,
		w: e.SemiAxisX * e.SemiAxisY * e.HalfHeight,
	}
}

// ellipticCylinderTransform is the polar disk map scaled per axis and
// extruded along z
type ellipticCylinderTransform struct {
	a, b float64 // cross-section semi-axes
	c    float64 // half-height
	w    float64 // abc
}

// Eval maps (lambda, phi, nu) onto the elliptic cylinder
func (t ellipticCylinderTransform) Eval(lambda, phi, nu float64) (float64, core.Vec3) {
	return t.w * lambda, core.NewVec3(
		t.a*lambda*math.Cos(phi),
		t.b*lambda*math.Sin(phi),
		t.c*nu,
	)
}

// HollowCylinder represents the annular region between two coaxial
// cylinders centered at the origin with their axis along z.
// InnerRadius must not exceed OuterRadius.
type HollowCylinder struct {
	InnerRadius float64
	OuterRadius float64
	HalfHeight  float64
}

// NewHollowCylinder creates a hollow cylinder from its inner and outer radii
// and half-height
func NewHollowCylinder(inner, outer, halfHeight float64) HollowCylinder {
	return HollowCylinder{InnerRadius: inner, OuterRadius: outer, HalfHeight: halfHeight}
}

// Contains reports whether p lies inside the annular region
func (h HollowCylinder) Contains(p core.Vec3) bool {
	rr := p.X*p.X + p.Y*p.Y
	return rr >= h.InnerRadius*h.InnerRadius &&
		rr <= h.OuterRadius*h.OuterRadius &&
		math.Abs(p.Z) <= h.HalfHeight
}

// Domain returns the hollow cylinder's parameter box
func (h HollowCylinder) Domain() Domain {
	return cylindricalDomain
}

// Transform returns the hollow cylinder's parametric transform
func (h HollowCylinder) Transform() Transform {
	span := h.OuterRadius - h.InnerRadius
	return hollowCylinderTransform{
		inner: h.InnerRadius,
		span:  span,
		c:     h.HalfHeight,
		w:     h.HalfHeight * span,
	}
}

// hollowCylinderTransform offsets the radial coordinate linearly from the
// inner radius to the outer radius
type hollowCylinderTransform struct {
	inner float64 // inner radius
	span  float64 // outer - inner
	c     float64 // half-height
	w     float64 // c·(outer - inner)
}

// Eval maps (lambda, phi, nu) onto the annular region.
// The Jacobian is c·(outer−inner)·rho, non-negative for inner ≤ outer.
func (t hollowCylinderTransform) Eval(lambda, phi, nu float64) (float64, core.Vec3) {
	rho := t.inner + t.span*lambda
	return t.w * rho, core.NewVec3(
		rho*math.Cos(phi),
		rho*math.Sin(phi),
		t.c*nu,
	)
}
