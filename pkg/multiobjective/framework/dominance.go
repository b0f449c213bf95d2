package framework

import "math"

// Comparator orders two individuals. Compare returns -1 when a is better than b,
// 1 when b is better than a and 0 when neither is better. The order is partial:
// 0 covers both incomparable and objective-equal pairs.
type Comparator interface {
	Compare(a, b *Individual) int
}

// DominanceComparator implements Pareto dominance with constraint-violation
// precedence:
//   - a feasible individual is always better than an infeasible one,
//   - between two infeasible individuals the smaller violation magnitude is better,
//   - otherwise (both feasible, or equal violation) plain Pareto dominance decides.
//
// Both individuals must carry the same number of objectives.
type DominanceComparator struct{}

var _ Comparator = DominanceComparator{}

func (DominanceComparator) Compare(a, b *Individual) int {
	if c := compareViolation(a.Violation, b.Violation); c != 0 {
		return c
	}
	return dominanceTest(a.Objectives, b.Objectives)
}

func compareViolation(va, vb float64) int {
	feasibleA, feasibleB := va == 0, vb == 0
	switch {
	case feasibleA && feasibleB:
		return 0
	case feasibleA:
		return -1
	case feasibleB:
		return 1
	}

	ma, mb := math.Abs(va), math.Abs(vb)
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	}
	return 0
}

func dominanceTest(a, b []float64) int {
	aBetter, bBetter := false, false
	for i := 0; i < len(a); i++ {
		if a[i] < b[i] {
			aBetter = true
		} else if a[i] > b[i] {
			bBetter = true
		}
		if aBetter && bBetter {
			return 0
		}
	}

	switch {
	case aBetter:
		return -1
	case bBetter:
		return 1
	}
	return 0
}

// Dominates checks if individual a dominates individual b
func Dominates(a, b *Individual) bool {
	return DominanceComparator{}.Compare(a, b) < 0
}

// EqualObjectives reports whether a and b have identical objective vectors and violation.
func EqualObjectives(a, b *Individual) bool {
	if len(a.Objectives) != len(b.Objectives) || a.Violation != b.Violation {
		return false
	}
	for i := range a.Objectives {
		if a.Objectives[i] != b.Objectives[i] {
			return false
		}
	}
	return true
}
