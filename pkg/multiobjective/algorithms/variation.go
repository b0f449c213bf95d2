package algorithms

import (
	"math"
	"math/rand"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

const (
	defaultCrossoverRate     = 0.9
	defaultDistributionIndex = 20.0
)

// Variation bundles SBX crossover and polynomial mutation over a bounded
// real-valued decision space.
type Variation struct {
	CrossoverRate float64
	// MutationRate is the per-variable mutation probability.
	MutationRate      float64
	DistributionIndex float64

	lower, upper []float64
	rng          *rand.Rand
}

func newVariation(problem framework.Problem, crossoverRate, mutationRate, distributionIndex float64, rng *rand.Rand) *Variation {
	lower, upper := problem.LowerBounds(), problem.UpperBounds()
	if crossoverRate <= 0 {
		crossoverRate = defaultCrossoverRate
	}
	if mutationRate <= 0 {
		mutationRate = 1 / float64(len(lower))
	}
	if distributionIndex <= 0 {
		distributionIndex = defaultDistributionIndex
	}
	return &Variation{
		CrossoverRate:     crossoverRate,
		MutationRate:      mutationRate,
		DistributionIndex: distributionIndex,
		lower:             lower,
		upper:             upper,
		rng:               rng,
	}
}

// RandomVariables samples n decision vectors uniformly within the bounds.
func (v *Variation) RandomVariables(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		vars := make([]float64, len(v.lower))
		for j := range vars {
			vars[j] = v.lower[j] + v.rng.Float64()*(v.upper[j]-v.lower[j])
		}
		out[i] = vars
	}
	return out
}

// Crossover performs SBX (Simulated Binary Crossover)
func (v *Variation) Crossover(parent1, parent2 []float64) ([]float64, []float64) {
	child1 := append([]float64(nil), parent1...)
	child2 := append([]float64(nil), parent2...)
	if v.rng.Float64() >= v.CrossoverRate {
		return child1, child2
	}

	exponent := 1.0 / (v.DistributionIndex + 1)
	for i := range parent1 {
		if v.rng.Float64() > 0.5 {
			continue
		}
		u := v.rng.Float64()
		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2*u, exponent)
		} else {
			beta = math.Pow(1.0/(2*(1.0-u)), exponent)
		}

		child1[i] = v.clamp(i, 0.5*((1+beta)*parent1[i]+(1-beta)*parent2[i]))
		child2[i] = v.clamp(i, 0.5*((1-beta)*parent1[i]+(1+beta)*parent2[i]))
	}
	return child1, child2
}

// Mutate performs polynomial mutation in place.
func (v *Variation) Mutate(vars []float64) {
	exponent := 1.0 / (v.DistributionIndex + 1)
	for i := range vars {
		if v.rng.Float64() >= v.MutationRate {
			continue
		}
		u := v.rng.Float64()
		var delta float64
		if u < 0.5 {
			delta = math.Pow(2*u, exponent) - 1
		} else {
			delta = 1 - math.Pow(2*(1-u), exponent)
		}
		vars[i] = v.clamp(i, vars[i]+delta*(v.upper[i]-v.lower[i]))
	}
}

// Reproduce fills n offspring decision vectors from parents drawn by selectParent.
func (v *Variation) Reproduce(n int, selectParent func() (*framework.Individual, error)) ([][]float64, error) {
	out := make([][]float64, 0, n+1)
	for len(out) < n {
		p1, err := selectParent()
		if err != nil {
			return nil, err
		}
		p2, err := selectParent()
		if err != nil {
			return nil, err
		}
		c1, c2 := v.Crossover(p1.Variables, p2.Variables)
		v.Mutate(c1)
		v.Mutate(c2)
		out = append(out, c1, c2)
	}
	return out[:n], nil
}

func (v *Variation) clamp(i int, x float64) float64 {
	return math.Max(v.lower[i], math.Min(v.upper[i], x))
}
