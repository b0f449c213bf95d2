package benchmarks

import (
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

const (
	SRNName = "SRN"
)

// SRN is Srinivas and Deb's constrained two-objective problem. Its Pareto
// front lies on x1 = -2.5 with x2 between 2.5 and about 14.79.
type SRN struct{}

var _ framework.ConstrainedProblem = SRN{}

func NewSRN() SRN {
	return SRN{}
}

func (SRN) Name() string {
	return SRNName
}

func (SRN) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(x []float64) float64 {
			return 2 + (x[0]-2)*(x[0]-2) + (x[1]-1)*(x[1]-1)
		},
		func(x []float64) float64 {
			return 9*x[0] - (x[1]-1)*(x[1]-1)
		},
	}
}

func (SRN) Constraints() []framework.ConstraintFunc {
	return []framework.ConstraintFunc{
		// x1^2 + x2^2 <= 225
		func(x []float64) float64 {
			return max(0, x[0]*x[0]+x[1]*x[1]-225)
		},
		// x1 - 3 x2 + 10 <= 0
		func(x []float64) float64 {
			return max(0, x[0]-3*x[1]+10)
		},
	}
}

func (SRN) LowerBounds() []float64 {
	return []float64{-20, -20}
}

func (SRN) UpperBounds() []float64 {
	return []float64{20, 20}
}

func (p SRN) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	const lo, hi = 2.5, 14.79
	funcs := p.ObjectiveFuncs()
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := range points {
		x := []float64{-2.5, lo + spaced(i, numPoints)*(hi-lo)}
		points[i] = framework.ObjectiveSpacePoint{funcs[0](x), funcs[1](x)}
	}
	return points
}
