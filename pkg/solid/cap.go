package solid

import (
	"math"

	"github.com/df07/go-shape-transforms/pkg/core"
)

// capDomain is the parameter box for the spherical cap: radial fraction
// lambda, azimuthal angle phi, height fraction nu
var capDomain = NewDomain(
	core.NewVec3(0, -math.Pi, 0),
	core.NewVec3(1, math.Pi, 1),
)

// SphericalCap represents the region of a sphere of radius Radius centered
// at the origin above the plane z = Radius - Height. Height must not exceed
// 2·Radius (the full sphere).
type SphericalCap struct {
	Radius float64
	Height float64
}

// NewSphericalCap creates a cap from its sphere radius and cap height
func NewSphericalCap(radius, height float64) SphericalCap {
	return SphericalCap{Radius: radius, Height: height}
}

// Contains reports whether p lies inside the cap
func (s SphericalCap) Contains(p core.Vec3) bool {
	return p.LengthSquared() <= s.Radius*s.Radius && p.Z >= s.Radius-s.Height
}

// Domain returns the cap's parameter box
func (s SphericalCap) Domain() Domain {
	return capDomain
}

// Transform returns the cap's parametric transform
func (s SphericalCap) Transform() Transform {
	return capTransform{r: s.Radius, h: s.Height}
}

// capTransform stacks polar disks of the sphere's cross-section radius from
// the cutting plane up to the pole
type capTransform struct {
	r float64 // sphere radius
	h float64 // cap height
}

// Eval maps (lambda, phi, nu) onto the cap.
// kappa = h·(1-nu) is the depth below the pole; the disk radius at that
// depth is sqrt(kappa·(2r-kappa)). The radicand is clamped at zero so that
// rounding at the pole (nu = 1) cannot produce a negative value under the
// square root. The Jacobian is h·lambda·kappa·(2r-kappa).
func (t capTransform) Eval(lambda, phi, nu float64) (float64, core.Vec3) {
	kappa := t.h * (1 - nu)
	radicand := kappa * (2*t.r - kappa)
	if radicand < 0 {
		radicand = 0
	}
	rho := lambda * math.Sqrt(radicand)
	return t.h * lambda * radicand, core.NewVec3(
		rho*math.Cos(phi),
		rho*math.Sin(phi),
		t.r-kappa,
	)
}
