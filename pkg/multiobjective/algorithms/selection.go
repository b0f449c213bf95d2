package algorithms

import (
	"fmt"
	"math/rand"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/density"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// RankingAndDensityComparator prefers the lower rank and, within a rank, the
// individual the estimator prefers. Both attributes must be current.
type RankingAndDensityComparator struct {
	Estimator density.Estimator
}

var _ framework.Comparator = RankingAndDensityComparator{}

func (c RankingAndDensityComparator) Compare(a, b *framework.Individual) int {
	switch {
	case a.Rank < b.Rank:
		return -1
	case a.Rank > b.Rank:
		return 1
	}
	return c.Estimator.Compare(a, b)
}

// BinaryTournament draws two individuals with replacement and returns the
// better one; a fair coin decides ties.
func BinaryTournament(population []*framework.Individual, cmp framework.Comparator, rng *rand.Rand) (*framework.Individual, error) {
	if len(population) == 0 {
		return nil, fmt.Errorf("%w: tournament over an empty population", framework.ErrEmptyCollection)
	}
	a := population[rng.Intn(len(population))]
	b := population[rng.Intn(len(population))]
	switch cmp.Compare(a, b) {
	case -1:
		return a, nil
	case 1:
		return b, nil
	}
	if rng.Intn(2) == 0 {
		return a, nil
	}
	return b, nil
}

// EnvironmentalSelection keeps size individuals of population: whole fronts in
// rank order, then the least crowded members of the first front that does not
// fit. Every kept individual carries its rank and the density computed over its
// front.
func EnvironmentalSelection(population []*framework.Individual, size int, ranker framework.Ranker, estimator density.Estimator) ([]*framework.Individual, *framework.Ranking, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("%w: selection size must be > 0, got %d", framework.ErrInvalidRange, size)
	}
	ranking, err := ranker.ComputeRanking(population)
	if err != nil {
		return nil, nil, err
	}

	selected := make([]*framework.Individual, 0, size)
	for i := 0; i < ranking.NumberOfSubFronts() && len(selected) < size; i++ {
		front, err := ranking.SubFront(i)
		if err != nil {
			return nil, nil, err
		}
		if err := estimator.Compute(front); err != nil {
			return nil, nil, fmt.Errorf("compute %s density of front %d: %w", estimator.Name(), i, err)
		}
		if len(selected)+len(front) <= size {
			selected = append(selected, front...)
			continue
		}
		selected = append(selected, estimator.Sort(front)[:size-len(selected)]...)
	}
	return selected, ranking, nil
}
