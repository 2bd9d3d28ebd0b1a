// Package solid provides a closed catalog of canonical 3D solids together
// with containment tests and closed-form changes of variables from each
// solid's Cartesian interior to an axis-aligned rectangular parameter box.
// The transforms carry their Jacobian determinants so that integrating the
// Jacobian (or a Jacobian-weighted field) over the parameter box reproduces
// a volume integral over the solid.
//
// Solids are centered at the origin and aligned with the coordinate axes;
// translation and rotation are the caller's responsibility.
package solid

import "github.com/df07/go-shape-transforms/pkg/core"

// Shape is a canonical solid that knows its parameter box, its containment
// test, and its parametric transform.
type Shape interface {
	// Contains reports whether p lies inside the solid. Boundary points
	// count as inside.
	Contains(p core.Vec3) bool

	// Domain returns the rectangular parameter box that the shape's
	// transform maps onto the solid's interior. It depends only on the
	// shape's variant, never on its size parameters.
	Domain() Domain

	// Transform returns the parametric transform for this shape instance,
	// with all parameter-dependent Jacobian constants precomputed.
	Transform() Transform
}

// Transform maps parameter-box coordinates onto a solid's interior.
type Transform interface {
	// Eval maps (lambda, mu, nu) inside the shape's domain to the Jacobian
	// determinant of the change of variables and the Cartesian point.
	// Inputs outside the domain produce undefined (but finite-time,
	// non-panicking) results; Eval performs no bounds checks.
	Eval(lambda, mu, nu float64) (jac float64, p core.Vec3)
}

// Domain is the axis-aligned box in (lambda, mu, nu) parameter space that a
// transform maps onto its solid
type Domain struct {
	Low  core.Vec3
	High core.Vec3
}

// NewDomain creates a domain from its corner bounds
func NewDomain(low, high core.Vec3) Domain {
	return Domain{Low: low, High: high}
}

// Measure returns the volume of the parameter box, used to normalize Monte
// Carlo averages over the domain
func (d Domain) Measure() float64 {
	size := d.High.Subtract(d.Low)
	return size.X * size.Y * size.Z
}

// Contains reports whether (lambda, mu, nu) lies inside the box.
// Boundary points count as inside.
func (d Domain) Contains(lambda, mu, nu float64) bool {
	return lambda >= d.Low.X && lambda <= d.High.X &&
		mu >= d.Low.Y && mu <= d.High.Y &&
		nu >= d.Low.Z && nu <= d.High.Z
}

// Sample returns a uniformly distributed point in the box
func (d Domain) Sample(sampler core.Sampler) core.Vec3 {
	u := sampler.Get3D()
	return d.Low.Add(d.High.Subtract(d.Low).MultiplyVec(u))
}

// Grid calls fn at every node of an n×n×n grid spanning the closed box,
// including the boundary planes. Intended for tests and debugging sweeps,
// not for integration.
func (d Domain) Grid(n int, fn func(lambda, mu, nu float64)) {
	if n < 2 {
		n = 2
	}
	size := d.High.Subtract(d.Low)
	step := 1.0 / float64(n-1)
	for i := 0; i < n; i++ {
		lambda := d.Low.X + size.X*float64(i)*step
		for j := 0; j < n; j++ {
			mu := d.Low.Y + size.Y*float64(j)*step
			for k := 0; k < n; k++ {
				nu := d.Low.Z + size.Z*float64(k)*step
				fn(lambda, mu, nu)
			}
		}
	}
}
