package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/df07/go-shape-transforms/pkg/montecarlo"
	"github.com/df07/go-shape-transforms/pkg/solid"
)

// catalogEntry pairs a sample instance of each shape variant with its
// analytic volume for reference output
type catalogEntry struct {
	name   string
	shape  solid.Shape
	volume float64
}

// catalog returns a sample instance of every shape variant
func catalog() []catalogEntry {
	return []catalogEntry{
		{"cube", solid.NewCube(1), 8},
		{"parallelepiped", solid.NewParallelepiped(1, 2, 3), 48},
		{"sphere", solid.NewSphere(1), 4 * math.Pi / 3},
		{"ellipsoid", solid.NewEllipsoid(1, 2, 3), 8 * math.Pi},
		{"cylinder", solid.NewCylinder(1, 2), 4 * math.Pi},
		{"elliptic-cylinder", solid.NewEllipticCylinder(1.5, 1, 2), 6 * math.Pi},
		{"hollow-cylinder", solid.NewHollowCylinder(1, 2, 1.5), 9 * math.Pi},
		{"square-pyramid", solid.NewSquarePyramid(1, 1.5), 4},
		{"rectangular-pyramid", solid.NewRectangularPyramid(1, 2, 1.5), 8},
		{"truncated-square-pyramid", solid.NewTruncatedSquarePyramid(1, 1.5, 0.5), 7},
		{"ring", solid.NewRing(3, 1, 0.5), 3 * math.Pi * math.Pi},
		{"torus", solid.NewTorus(3, 1), 6 * math.Pi * math.Pi},
		{"triangular-toroid", solid.NewTriangularToroid(3, 1, 2), 12 * math.Pi},
		{"spherical-cap", solid.NewSphericalCap(1, 0.5), 5 * math.Pi / 24},
	}
}

// findShape looks up a catalog entry by name
func findShape(name string) (catalogEntry, bool) {
	for _, entry := range catalog() {
		if entry.name == name {
			return entry, true
		}
	}
	return catalogEntry{}, false
}

// quadratureVolume integrates the shape's Jacobian over its parameter box
// with a tensor-product Gauss-Legendre rule of n nodes per axis
func quadratureVolume(s solid.Shape, n int) float64 {
	f := solid.VolumeIntegrand(s)
	d := s.Domain()
	return quad.Fixed(func(lambda float64) float64 {
		return quad.Fixed(func(mu float64) float64 {
			return quad.Fixed(func(nu float64) float64 {
				return f(lambda, mu, nu)
			}, d.Low.Z, d.High.Z, n, nil, 0)
		}, d.Low.Y, d.High.Y, n, nil, 0)
	}, d.Low.X, d.High.X, n, nil, 0)
}

func main() {
	shapeName := flag.String("shape", "sphere", "Shape to evaluate (use -list for available shapes)")
	samples := flag.Int("samples", 2000000, "Number of Monte Carlo samples")
	workers := flag.Int("workers", 0, "Number of workers (0 = all CPUs)")
	seed := flag.Int64("seed", 42, "Random seed")
	list := flag.Bool("list", false, "List available shapes and exit")
	flag.Parse()

	if *list {
		fmt.Println("Available shapes (sample parameters, analytic volume):")
		for _, entry := range catalog() {
			fmt.Printf("  %-26s %+v  volume %.6f\n", entry.name, entry.shape, entry.volume)
		}
		return
	}

	entry, ok := findShape(*shapeName)
	if !ok {
		fmt.Printf("Unknown shape: %s (use -list for available shapes)\n", *shapeName)
		os.Exit(1)
	}

	fmt.Printf("Estimating volume of %s %+v\n", entry.name, entry.shape)
	fmt.Printf("Parameter domain: [%v, %v]\n", entry.shape.Domain().Low, entry.shape.Domain().High)

	estimator := montecarlo.NewEstimator(*workers)
	startTime := time.Now()
	result := estimator.Volume(entry.shape, *samples, *seed)
	elapsed := time.Since(startTime)

	quadVolume := quadratureVolume(entry.shape, 24)

	fmt.Printf("Monte Carlo:  %.6f ± %.6f (%d samples, %d workers, %v)\n",
		result.Estimate, result.StdError, result.Samples, estimator.NumWorkers(), elapsed)
	fmt.Printf("Quadrature:   %.6f (24-node Gauss-Legendre)\n", quadVolume)
	fmt.Printf("Analytic:     %.6f\n", entry.volume)
	if result.StdError > 0 {
		fmt.Printf("MC error:     %.6f (%.3f standard errors)\n",
			result.Estimate-entry.volume, math.Abs(result.Estimate-entry.volume)/result.StdError)
	} else {
		fmt.Printf("MC error:     %.6f\n", result.Estimate-entry.volume)
	}
}
