package framework

import (
	"fmt"
	"sort"
)

// Ranking is an ordered partition of a population into fronts, front 0 being
// the best. Fronts are stored as index lists into the ranked population.
type Ranking struct {
	population []*Individual
	fronts     [][]int
}

// NumberOfSubFronts returns the number of fronts in the ranking.
func (r *Ranking) NumberOfSubFronts() int {
	return len(r.fronts)
}

// SubFront returns the individuals of front i.
func (r *Ranking) SubFront(i int) ([]*Individual, error) {
	if i < 0 || i >= len(r.fronts) {
		return nil, fmt.Errorf("%w: front %d not in [0, %d)", ErrInvalidRange, i, len(r.fronts))
	}
	front := make([]*Individual, len(r.fronts[i]))
	for j, idx := range r.fronts[i] {
		front[j] = r.population[idx]
	}
	return front, nil
}

// FrontIndices returns the population indices that make up front i. The slice
// is owned by the ranking and must not be modified.
func (r *Ranking) FrontIndices(i int) []int {
	if i < 0 || i >= len(r.fronts) {
		return nil
	}
	return r.fronts[i]
}

// Fronts materializes every front in rank order.
func (r *Ranking) Fronts() [][]*Individual {
	out := make([][]*Individual, len(r.fronts))
	for i := range r.fronts {
		out[i], _ = r.SubFront(i)
	}
	return out
}

// Population returns the ranked population in its original order.
func (r *Ranking) Population() []*Individual {
	return r.population
}

// Ranker partitions a population into fronts and writes Individual.Rank.
type Ranker interface {
	Name() string
	ComputeRanking(population []*Individual) (*Ranking, error)
}

// NonDominatedSort performs non-dominated sorting on the population
func NonDominatedSort(population []*Individual) ([][]*Individual, error) {
	ranking, err := FastNonDominatedSort{}.ComputeRanking(population)
	if err != nil {
		return nil, err
	}
	return ranking.Fronts(), nil
}

// FastNonDominatedSort is the O(N²·M) domination-counter sort: every individual
// keeps how many others dominate it and which ones it dominates; fronts are then
// peeled by decrementing counters.
type FastNonDominatedSort struct {
	// Comparator defaults to DominanceComparator.
	Comparator Comparator
}

var _ Ranker = FastNonDominatedSort{}

func (FastNonDominatedSort) Name() string {
	return "fast"
}

func (s FastNonDominatedSort) ComputeRanking(population []*Individual) (*Ranking, error) {
	if err := checkPopulation(population); err != nil {
		return nil, err
	}
	cmp := s.Comparator
	if cmp == nil {
		cmp = DominanceComparator{}
	}

	n := len(population)
	dominated := make([][]int, n)
	domCount := make([]int, n)

	// Calculate domination for each pair once
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch cmp.Compare(population[i], population[j]) {
			case -1:
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			case 1:
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	ranking := &Ranking{population: population}

	currentFront := []int{}
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	// Find subsequent fronts
	for len(currentFront) > 0 {
		rank := len(ranking.fronts)
		for _, idx := range currentFront {
			population[idx].Rank = rank
		}
		ranking.fronts = append(ranking.fronts, currentFront)

		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		currentFront = nextFront
	}

	return ranking, nil
}

// EfficientNonDominatedSort is the sequential-search variant of efficient
// non-dominated sorting (ENS-SS). The population is pre-sorted by violation
// magnitude and then lexicographically by objectives, so that every individual
// can only be dominated by individuals placed before it; each individual is then
// assigned to the first front that holds none of its dominators. It always uses
// DominanceComparator and produces the same partition as FastNonDominatedSort.
type EfficientNonDominatedSort struct{}

var _ Ranker = EfficientNonDominatedSort{}

func (EfficientNonDominatedSort) Name() string {
	return "efficient"
}

func (EfficientNonDominatedSort) ComputeRanking(population []*Individual) (*Ranking, error) {
	if err := checkPopulation(population); err != nil {
		return nil, err
	}
	cmp := DominanceComparator{}

	order := make([]int, len(population))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return lexicographicLess(population[order[i]], population[order[j]])
	})

	ranking := &Ranking{population: population}
	for _, idx := range order {
		candidate := population[idx]
		k := 0
		for ; k < len(ranking.fronts); k++ {
			if !frontDominates(cmp, population, ranking.fronts[k], candidate) {
				break
			}
		}
		if k == len(ranking.fronts) {
			ranking.fronts = append(ranking.fronts, nil)
		}
		ranking.fronts[k] = append(ranking.fronts[k], idx)
		candidate.Rank = k
	}
	return ranking, nil
}

// frontDominates scans the front backwards since the most recently added members
// are the closest to the candidate in sort order.
func frontDominates(cmp Comparator, population []*Individual, front []int, candidate *Individual) bool {
	for i := len(front) - 1; i >= 0; i-- {
		if cmp.Compare(population[front[i]], candidate) < 0 {
			return true
		}
	}
	return false
}

func lexicographicLess(a, b *Individual) bool {
	if c := compareViolation(a.Violation, b.Violation); c != 0 {
		return c < 0
	}
	for m := range a.Objectives {
		if a.Objectives[m] != b.Objectives[m] {
			return a.Objectives[m] < b.Objectives[m]
		}
	}
	return false
}

func checkPopulation(population []*Individual) error {
	if len(population) == 0 {
		return nil
	}
	for i, ind := range population {
		if ind == nil {
			return fmt.Errorf("%w: individual %d is nil", ErrNullArgument, i)
		}
	}
	m := len(population[0].Objectives)
	for i, ind := range population {
		if len(ind.Objectives) != m {
			return fmt.Errorf("%w: individual %d has %d objectives, want %d", ErrInvalidCondition, i, len(ind.Objectives), m)
		}
	}
	return nil
}
