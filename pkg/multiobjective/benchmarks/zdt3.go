package benchmarks

import (
	"math"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

const (
	ZDT3Name = "ZDT3"
)

// ZDT3 has a disconnected Pareto front made of five segments.
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars}
}

func (p *ZDT3) Name() string {
	return ZDT3Name
}

func (p *ZDT3) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(x []float64) float64 { return x[0] },
		func(x []float64) float64 {
			g := zdtG(x)
			h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
			return g * h
		},
	}
}

func (p *ZDT3) LowerBounds() []float64 {
	return constant(p.numVars, 0)
}

func (p *ZDT3) UpperBounds() []float64 {
	return constant(p.numVars, 1)
}

// TrueParetoFront samples numPoints values of f1 and keeps the non-dominated
// ones, so fewer than numPoints points are returned.
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	candidates := make([]*framework.Individual, numPoints)
	for i := range candidates {
		f1 := spaced(i, numPoints)
		candidates[i] = framework.NewIndividual([]float64{f1, 1 - math.Sqrt(f1) - f1*math.Sin(10*math.Pi*f1)}, 0)
	}
	fronts, err := framework.NonDominatedSort(candidates)
	if err != nil || len(fronts) == 0 {
		return nil
	}
	return framework.Points(fronts[0])
}
