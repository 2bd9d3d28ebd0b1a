package solid

import "github.com/df07/go-shape-transforms/pkg/core"

// Field is a scalar field over Cartesian space
type Field func(p core.Vec3) float64

// ParametricField is a scalar field over a shape's parameter box
type ParametricField func(lambda, mu, nu float64) float64

// Restrict gates a Cartesian field to a shape's interior: the returned field
// equals f inside the shape and zero outside. The coordinates are unchanged,
// so the result is still a field over Cartesian space.
func Restrict(f Field, s Shape) Field {
	return func(p core.Vec3) float64 {
		if !s.Contains(p) {
			return 0
		}
		return f(p)
	}
}

// Integrand composes a Cartesian field with a shape's parametric transform,
// returning the Jacobian-weighted integrand J·f(x,y,z) over the shape's
// domain. No containment check is performed: the transform only produces
// interior points for in-domain inputs, so integrating the result over
// s.Domain() equals integrating f over the solid.
func Integrand(f Field, s Shape) ParametricField {
	t := s.Transform()
	return func(lambda, mu, nu float64) float64 {
		jac, p := t.Eval(lambda, mu, nu)
		return jac * f(p)
	}
}

// VolumeIntegrand returns the bare Jacobian as an integrand over the
// shape's domain; its integral is the solid's volume.
func VolumeIntegrand(s Shape) ParametricField {
	t := s.Transform()
	return func(lambda, mu, nu float64) float64 {
		jac, _ := t.Eval(lambda, mu, nu)
		return jac
	}
}
