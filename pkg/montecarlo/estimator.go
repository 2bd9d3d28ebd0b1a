// Package montecarlo estimates integrals of parametric fields over
// rectangular domains by uniform random sampling. It is a consumer of the
// solid package: composing a Cartesian field with a shape's parametric
// transform via solid.Integrand yields an integrand this package can
// estimate over the shape's parameter box.
package montecarlo

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/df07/go-shape-transforms/pkg/core"
	"github.com/df07/go-shape-transforms/pkg/solid"
)

// Result contains the outcome of a Monte Carlo integration
type Result struct {
	Estimate float64 // integral estimate
	StdError float64 // standard error of the estimate
	Samples  int     // total samples evaluated
}

// Estimator integrates parametric fields over a rectangular domain using
// parallel uniform sampling
type Estimator struct {
	numWorkers int
}

// NewEstimator creates an estimator with the specified number of workers.
// A non-positive count uses all CPUs.
func NewEstimator(numWorkers int) *Estimator {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Estimator{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers the estimator fans out to
func (e *Estimator) NumWorkers() int {
	return e.numWorkers
}

// moments accumulates one worker's share of the sample sums
type moments struct {
	sum   float64
	sumSq float64
	count int
}

// Integrate estimates the integral of f over d using n uniform samples.
// Each worker derives its generator from the seed and its worker index, and
// partial sums are combined in worker order, so a fixed seed and worker
// count reproduce the estimate exactly.
func (e *Estimator) Integrate(f solid.ParametricField, d solid.Domain, n int, seed int64) Result {
	if n <= 0 {
		return Result{}
	}

	numWorkers := e.numWorkers
	if numWorkers > n {
		numWorkers = n
	}

	// Split the samples into per-worker chunks, spreading the remainder
	chunk := n / numWorkers
	remainder := n % numWorkers

	partials := make([]moments, numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		count := chunk
		if i < remainder {
			count++
		}

		wg.Add(1)
		go func(id, count int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(id))))

			var m moments
			for s := 0; s < count; s++ {
				u := d.Sample(sampler)
				v := f(u.X, u.Y, u.Z)
				m.sum += v
				m.sumSq += v * v
				m.count++
			}
			// Each worker owns a distinct slot, so this is thread-safe
			partials[id] = m
		}(i, count)
	}
	wg.Wait()

	var total moments
	for _, m := range partials {
		total.sum += m.sum
		total.sumSq += m.sumSq
		total.count += m.count
	}

	measure := d.Measure()
	mean := total.sum / float64(total.count)
	variance := total.sumSq/float64(total.count) - mean*mean
	if variance < 0 {
		variance = 0 // rounding can push a constant integrand's variance below zero
	}

	return Result{
		Estimate: measure * mean,
		StdError: measure * math.Sqrt(variance/float64(total.count)),
		Samples:  total.count,
	}
}

// Volume estimates a shape's volume by integrating its Jacobian over its
// parameter domain
func (e *Estimator) Volume(s solid.Shape, n int, seed int64) Result {
	return e.Integrate(solid.VolumeIntegrand(s), s.Domain(), n, seed)
}
