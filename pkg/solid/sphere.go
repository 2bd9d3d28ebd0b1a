package solid

import (
	"math"

	"github.com/df07/go-shape-transforms/pkg/core"
)

// sphericalDomain is the parameter box for the sphere family:
// radial fraction lambda, polar angle theta, azimuthal angle phi
var sphericalDomain = NewDomain(
	core.NewVec3(0, 0, 0),
	core.NewVec3(1, math.Pi, 2*math.Pi),
)

// Sphere represents a sphere centered at the origin
type Sphere struct {
	Radius float64
}

// NewSphere creates a sphere with the given radius
func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

// Contains reports whether p lies inside the sphere
func (s Sphere) Contains(p core.Vec3) bool {
	return p.LengthSquared() <= s.Radius*s.Radius
}

// Domain returns the sphere's parameter box
func (s Sphere) Domain() Domain {
	return sphericalDomain
}

// Transform returns the sphere's parametric transform
func (s Sphere) Transform() Transform {
	return sphereTransform{r: s.Radius, w: s.Radius * s.Radius * s.Radius}
}

// sphereTransform is the spherical-coordinate map scaled by the radius
type sphereTransform struct {
	r float64 // radius
	w float64 // r³
}

// Eval maps (lambda, theta, phi) onto the sphere.
// The Jacobian is r³·lambda²·sin(theta); it vanishes at the center and poles.
func (t sphereTransform) Eval(lambda, theta, phi float64) (float64, core.Vec3) {
	sinTheta := math.Sin(theta)
	rho := t.r * lambda * sinTheta
	return t.w * lambda * lambda * sinTheta, core.NewVec3(
		rho*math.Cos(phi),
		rho*math.Sin(phi),
		t.r*lambda*math.Cos(theta),
	)
}

// Ellipsoid represents an axis-aligned ellipsoid centered at the origin
type Ellipsoid struct {
	SemiAxes core.Vec3
}

// NewEllipsoid creates an ellipsoid from its semi-axes
func NewEllipsoid(a, b, c float64) Ellipsoid {
	return Ellipsoid{SemiAxes: core.NewVec3(a, b, c)}
}

// Contains reports whether p lies inside the ellipsoid
func (e Ellipsoid) Contains(p core.Vec3) bool {
	u := p.X / e.SemiAxes.X
	v := p.Y / e.SemiAxes.Y
	w := p.Z / e.SemiAxes.Z
	return u*u+v*v+w*w <= 1
}

// Domain returns the ellipsoid's parameter box
func (e Ellipsoid) Domain() Domain {
	return sphericalDomain
}

// Transform returns the ellipsoid's parametric transform
func (e Ellipsoid) Transform() Transform {
	return ellipsoidTransform{
		axes: e.SemiAxes,
		w:    e.SemiAxes.X * e.SemiAxes.Y * e.SemiAxes.Z,
	}
}

// ellipsoidTransform is the spherical-coordinate map scaled per axis
type ellipsoidTransform struct {
	axes core.Vec3
	w    float64 // abc
}

// Eval maps (lambda, theta, phi) onto the ellipsoid
func (t ellipsoidTransform) Eval(lambda, theta, phi float64) (float64, core.Vec3) {
	sinTheta := math.Sin(theta)
	return t.w * lambda * lambda * sinTheta, core.NewVec3(
		t.axes.X*lambda*sinTheta*math.Cos(phi),
		t.axes.Y*lambda*sinTheta*math.Sin(phi),
		t.axes.Z*lambda*math.Cos(theta),
	)
}
