package framework

import "fmt"

// Individual is the engine-side record of an evaluated solution. Objective values
// use the minimization convention. The engine only reads Objectives and Violation;
// Rank, Density and Cell are written by the ranking, density and grid routines.
type Individual struct {
	Variables  []float64
	Objectives []float64

	// Violation is the overall constraint violation degree. 0 means feasible;
	// the magnitude encodes severity regardless of sign.
	Violation float64

	// Rank is the index of the front the individual was assigned to by the last ranking.
	Rank int
	// Density is written by the last density.Estimator run over a set containing
	// the individual. Its meaning is estimator specific.
	Density float64
	// DensityTieBreak holds secondary density values compared in order when
	// Density ties, e.g. the farther neighbor distances of the k-nearest-neighbor
	// estimator. Estimators without a tie-break leave it untouched.
	DensityTieBreak []float64
	// Cell is the adaptive grid hypercube index, or -1 when not located.
	Cell int
}

// NewIndividual returns an evaluated individual that has not been ranked or located yet.
func NewIndividual(objectives []float64, violation float64) *Individual {
	return &Individual{
		Objectives: objectives,
		Violation:  violation,
		Cell:       -1,
	}
}

// Feasible reports whether the individual satisfies all constraints.
func (ind *Individual) Feasible() bool {
	return ind.Violation == 0
}

// Copy returns a deep copy of the individual including computed attributes.
func (ind *Individual) Copy() *Individual {
	out := *ind
	out.Variables = append([]float64(nil), ind.Variables...)
	out.Objectives = append([]float64(nil), ind.Objectives...)
	out.DensityTieBreak = append([]float64(nil), ind.DensityTieBreak...)
	return &out
}

func (ind *Individual) String() string {
	return fmt.Sprintf("%v (violation=%g rank=%d density=%g)", ind.Objectives, ind.Violation, ind.Rank, ind.Density)
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// ConstraintFunc returns how much a decision vector violates a constraint.
// A satisfied constraint returns 0.
type ConstraintFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	LowerBounds() []float64
	UpperBounds() []float64

	ObjectiveFuncs() []ObjectiveFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// ConstrainedProblem is implemented by problems that carry constraints.
type ConstrainedProblem interface {
	Problem
	Constraints() []ConstraintFunc
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
}

// Evaluate computes the objective vector and overall constraint violation of x.
func Evaluate(p Problem, x []float64) *Individual {
	funcs := p.ObjectiveFuncs()
	objs := make([]float64, len(funcs))
	for i, f := range funcs {
		objs[i] = f(x)
	}

	violation := 0.0
	if cp, ok := p.(ConstrainedProblem); ok {
		for _, c := range cp.Constraints() {
			if v := c(x); v > 0 {
				violation += v
			}
		}
	}

	ind := NewIndividual(objs, violation)
	ind.Variables = x
	return ind
}

// Points extracts the objective vectors of the given individuals.
func Points(individuals []*Individual) []ObjectiveSpacePoint {
	out := make([]ObjectiveSpacePoint, len(individuals))
	for i, ind := range individuals {
		out[i] = ind.Objectives
	}
	return out
}
