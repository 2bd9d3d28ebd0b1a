package solid

import (
	"math"
	"testing"

	"github.com/df07/go-shape-transforms/pkg/core"
)

type containsCase struct {
	name  string
	point core.Vec3
	want  bool
}

func runContainsCases(t *testing.T, s Shape, cases []containsCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestCube_Contains(t *testing.T) {
	runContainsCases(t, NewCube(2), []containsCase{
		{"center", core.NewVec3(0, 0, 0), true},
		{"interior", core.NewVec3(1, 1, 1), true},
		{"corner boundary", core.NewVec3(2, 2, 2), true},
		{"outside x", core.NewVec3(2.1, 0, 0), false},
		{"outside diagonal", core.NewVec3(2.1, 2.1, 2.1), false},
	})
}

func TestParallelepiped_Contains(t *testing.T) {
	runContainsCases(t, NewParallelepiped(1, 2, 3), []containsCase{
		{"interior", core.NewVec3(0.5, 1.5, 2.5), true},
		{"corner boundary", core.NewVec3(1, 2, 3), true},
		{"outside x", core.NewVec3(1.5, 0, 0), false},
		{"outside z", core.NewVec3(0, 0, -3.5), false},
	})
}

func TestSphere_Contains(t *testing.T) {
	runContainsCases(t, NewSphere(1), []containsCase{
		{"center", core.NewVec3(0, 0, 0), true},
		{"interior", core.NewVec3(0.5, 0.5, 0.5), true},
		{"surface boundary", core.NewVec3(1, 0, 0), true},
		{"outside", core.NewVec3(0.8, 0.8, 0), false},
	})
}

func TestEllipsoid_Contains(t *testing.T) {
	runContainsCases(t, NewEllipsoid(1, 2, 3), []containsCase{
		{"interior", core.NewVec3(0.9, 0, 0), true},
		{"pole boundary", core.NewVec3(0, 0, 3), true},
		{"outside pole", core.NewVec3(0, 0, 3.1), false},
		{"outside xy", core.NewVec3(0.8, 1.6, 0), false},
	})
}

func TestCylinder_Contains(t *testing.T) {
	runContainsCases(t, NewCylinder(1, 2), []containsCase{
		{"interior", core.NewVec3(0.5, 0.5, 1), true},
		{"top boundary", core.NewVec3(0.5, 0.5, 2), true},
		{"outside radius", core.NewVec3(0.8, 0.8, 0), false},
		{"outside height", core.NewVec3(0, 0, 2.1), false},
	})
}

func TestEllipticCylinder_Contains(t *testing.T) {
	runContainsCases(t, NewEllipticCylinder(1, 2, 1), []containsCase{
		{"interior", core.NewVec3(0.5, 1.5, 1), true},
		{"outside y", core.NewVec3(0, 2.1, 0), false},
		{"outside height", core.NewVec3(0, 0, 1.5), false},
	})
}

func TestHollowCylinder_Contains(t *testing.T) {
	runContainsCases(t, NewHollowCylinder(1, 2, 1), []containsCase{
		{"annulus interior", core.NewVec3(1.5, 0, 0.5), true},
		{"inner boundary", core.NewVec3(1, 0, 1), true},
		{"inside hole", core.NewVec3(0.5, 0, 0), false},
		{"outside outer", core.NewVec3(2.5, 0, 0), false},
		{"outside height", core.NewVec3(1.5, 0, 1.5), false},
	})
}

func TestSquarePyramid_Contains(t *testing.T) {
	runContainsCases(t, NewSquarePyramid(1, 1), []containsCase{
		{"mid height interior", core.NewVec3(0.4, 0.4, 0), true},
		{"mid height outside", core.NewVec3(0.6, 0, 0), false},
		{"base interior", core.NewVec3(0.9, 0.9, -1), true},
		{"apex", core.NewVec3(0, 0, 1), true},
		{"near apex outside", core.NewVec3(0.1, 0, 0.9), false},
		{"below base", core.NewVec3(0, 0, -1.1), false},
	})
}

func TestRectangularPyramid_Contains(t *testing.T) {
	runContainsCases(t, NewRectangularPyramid(1, 2, 1), []containsCase{
		{"mid height interior", core.NewVec3(0.4, 0.8, 0), true},
		{"mid height outside y", core.NewVec3(0, 1.2, 0), false},
		{"apex", core.NewVec3(0, 0, 1), true},
	})
}

func TestTruncatedSquarePyramid_Contains(t *testing.T) {
	runContainsCases(t, NewTruncatedSquarePyramid(1, 1, 0.5), []containsCase{
		{"top face interior", core.NewVec3(0.45, 0, 1), true},
		{"top face outside", core.NewVec3(0.6, 0, 1), false},
		{"base interior", core.NewVec3(0.9, 0, -1), true},
		{"above top", core.NewVec3(0, 0, 1.1), false},
	})
}

func TestTorus_Contains(t *testing.T) {
	runContainsCases(t, NewTorus(3, 1), []containsCase{
		{"tube center", core.NewVec3(3, 0, 0), true},
		{"tube interior", core.NewVec3(3, 0, 0.5), true},
		{"outer boundary", core.NewVec3(4, 0, 0), true},
		{"outside tube", core.NewVec3(3, 0, 1.1), false},
		{"inside hole", core.NewVec3(1, 0, 0), false},
		{"origin", core.NewVec3(0, 0, 0), false},
	})
}

func TestRing_Contains(t *testing.T) {
	runContainsCases(t, NewRing(3, 1, 0.5), []containsCase{
		{"tube interior", core.NewVec3(3.5, 0, 0), true},
		{"vertical boundary", core.NewVec3(3, 0, 0.5), true},
		{"outside vertical", core.NewVec3(3, 0, 0.6), false},
		{"outside radial", core.NewVec3(4.1, 0, 0), false},
	})
}

func TestTriangularToroid_Contains(t *testing.T) {
	runContainsCases(t, NewTriangularToroid(3, 1, 2), []containsCase{
		{"mid height interior", core.NewVec3(3, 0, 1), true},
		{"mid height outside", core.NewVec3(3.6, 0, 1), false},
		{"base interior", core.NewVec3(3.9, 0, 0), true},
		{"apex circle", core.NewVec3(3, 0, 2), true},
		{"off apex", core.NewVec3(3.1, 0, 2), false},
		{"below base", core.NewVec3(3, 0, -0.1), false},
	})
}

func TestSphericalCap_Contains(t *testing.T) {
	runContainsCases(t, NewSphericalCap(1, 0.5), []containsCase{
		{"interior", core.NewVec3(0, 0, 0.75), true},
		{"off axis interior", core.NewVec3(0.5, 0, 0.6), true},
		{"pole boundary", core.NewVec3(0, 0, 1), true},
		{"below cutting plane", core.NewVec3(0, 0, 0.4), false},
		{"outside sphere", core.NewVec3(0.9, 0, 0.6), false},
	})
}

func TestDomains(t *testing.T) {
	tests := []struct {
		name      string
		shape     Shape
		low, high core.Vec3
	}{
		{"cube", NewCube(1), core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)},
		{"parallelepiped", NewParallelepiped(1, 2, 3), core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)},
		{"square pyramid", NewSquarePyramid(1, 1), core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)},
		{"sphere", NewSphere(1), core.NewVec3(0, 0, 0), core.NewVec3(1, math.Pi, 2 * math.Pi)},
		{"ellipsoid", NewEllipsoid(1, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(1, math.Pi, 2 * math.Pi)},
		{"cylinder", NewCylinder(1, 2), core.NewVec3(0, -math.Pi, -1), core.NewVec3(1, math.Pi, 1)},
		{"torus", NewTorus(3, 1), core.NewVec3(0, -math.Pi, -math.Pi), core.NewVec3(1, math.Pi, math.Pi)},
		{"triangular toroid", NewTriangularToroid(3, 1, 2), core.NewVec3(0, -1, -math.Pi), core.NewVec3(1, 1, math.Pi)},
		{"spherical cap", NewSphericalCap(1, 0.5), core.NewVec3(0, -math.Pi, 0), core.NewVec3(1, math.Pi, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.shape.Domain()
			if d.Low != tt.low || d.High != tt.high {
				t.Errorf("Domain() = [%v, %v], want [%v, %v]", d.Low, d.High, tt.low, tt.high)
			}
			if d.Measure() <= 0 {
				t.Errorf("Measure() = %v, want positive", d.Measure())
			}
		})
	}
}

func TestDomain_DependsOnVariantOnly(t *testing.T) {
	if NewSphere(1).Domain() != NewSphere(42).Domain() {
		t.Error("sphere domain should not depend on radius")
	}
	if NewTorus(3, 1).Domain() != NewTorus(10, 0.1).Domain() {
		t.Error("torus domain should not depend on radii")
	}
}

func TestDomain_SampleInsideBox(t *testing.T) {
	d := NewCylinder(1, 2).Domain()
	sampler := newTestSampler(3)
	for i := 0; i < 100; i++ {
		p := d.Sample(sampler)
		if !d.Contains(p.X, p.Y, p.Z) {
			t.Fatalf("Sample() = %v outside domain [%v, %v]", p, d.Low, d.High)
		}
	}
}
