package benchmarks

import (
	"math"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

const (
	DTLZ2Name = "DTLZ2"
)

// DTLZ2 is a scalable problem whose Pareto front is the positive part of the
// unit hypersphere.
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

// NewDTLZ2 returns a DTLZ2 instance. numVars must be at least numObjectives.
func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	return &DTLZ2{numVars: numVars, numObjectives: numObjectives}
}

func (p *DTLZ2) Name() string {
	return DTLZ2Name
}

func (p *DTLZ2) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for m := range funcs {
		funcs[m] = func(x []float64) float64 {
			return p.objective(m, x)
		}
	}
	return funcs
}

func (p *DTLZ2) objective(m int, x []float64) float64 {
	g := 0.0
	for i := p.numObjectives - 1; i < len(x); i++ {
		g += (x[i] - 0.5) * (x[i] - 0.5)
	}

	f := 1 + g
	last := p.numObjectives - 1 - m
	for j := 0; j < last; j++ {
		f *= math.Cos(x[j] * math.Pi / 2)
	}
	if m > 0 {
		f *= math.Sin(x[last] * math.Pi / 2)
	}
	return f
}

func (p *DTLZ2) LowerBounds() []float64 {
	return constant(p.numVars, 0)
}

func (p *DTLZ2) UpperBounds() []float64 {
	return constant(p.numVars, 1)
}

// TrueParetoFront lays a regular lattice over the position variables with the
// distance variables fixed at 0.5, returning at most numPoints points.
func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	positions := p.numObjectives - 1
	if positions <= 0 || numPoints <= 0 {
		return nil
	}
	perAxis := int(math.Floor(math.Pow(float64(numPoints), 1/float64(positions))))
	perAxis = max(perAxis, 1)

	total := 1
	for i := 0; i < positions; i++ {
		total *= perAxis
	}

	x := constant(p.numVars, 0.5)
	points := make([]framework.ObjectiveSpacePoint, 0, total)
	for idx := 0; idx < total; idx++ {
		rest := idx
		for j := 0; j < positions; j++ {
			x[j] = spaced(rest%perAxis, perAxis)
			rest /= perAxis
		}
		point := make(framework.ObjectiveSpacePoint, p.numObjectives)
		for m := range point {
			point[m] = p.objective(m, x)
		}
		points = append(points, point)
	}
	return points
}
