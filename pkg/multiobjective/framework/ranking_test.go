package framework

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func individuals(points ...[]float64) []*Individual {
	out := make([]*Individual, len(points))
	for i, p := range points {
		out[i] = NewIndividual(p, 0)
	}
	return out
}

func randomPopulation(rng *rand.Rand, n, m int, withViolations bool) []*Individual {
	pop := make([]*Individual, n)
	for i := range pop {
		objs := make([]float64, m)
		for j := range objs {
			// A coarse lattice produces plenty of duplicates and ties.
			objs[j] = float64(rng.Intn(6))
		}
		violation := 0.0
		if withViolations && rng.Float64() < 0.3 {
			violation = -float64(rng.Intn(3) + 1)
		}
		pop[i] = NewIndividual(objs, violation)
	}
	return pop
}

func rankers() []Ranker {
	return []Ranker{FastNonDominatedSort{}, EfficientNonDominatedSort{}}
}

func TestRankingAllNonDominatedSingleFront(t *testing.T) {
	for _, r := range rankers() {
		t.Run(r.Name(), func(t *testing.T) {
			pop := individuals([]float64{1, 5}, []float64{2, 4}, []float64{3, 3}, []float64{5, 1})

			ranking, err := r.ComputeRanking(pop)
			require.NoError(t, err)
			require.Equal(t, 1, ranking.NumberOfSubFronts())

			front, err := ranking.SubFront(0)
			require.NoError(t, err)
			assert.ElementsMatch(t, pop, front)
			for _, ind := range pop {
				assert.Equal(t, 0, ind.Rank)
			}
		})
	}
}

func TestRankingEmptyPopulation(t *testing.T) {
	for _, r := range rankers() {
		ranking, err := r.ComputeRanking(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, ranking.NumberOfSubFronts())
		_, err = ranking.SubFront(0)
		assert.True(t, errors.Is(err, ErrInvalidRange))
	}
}

func TestRankingPreconditions(t *testing.T) {
	for _, r := range rankers() {
		_, err := r.ComputeRanking([]*Individual{NewIndividual([]float64{1}, 0), nil})
		assert.ErrorIs(t, err, ErrNullArgument, r.Name())

		_, err = r.ComputeRanking(individuals([]float64{1, 2}, []float64{1}))
		assert.ErrorIs(t, err, ErrInvalidCondition, r.Name())
	}
}

func TestRankingLayeredFronts(t *testing.T) {
	for _, r := range rankers() {
		t.Run(r.Name(), func(t *testing.T) {
			pop := individuals(
				[]float64{3, 3}, // front 1
				[]float64{1, 2}, // front 0
				[]float64{2, 1}, // front 0
				[]float64{4, 4}, // front 2
				[]float64{3, 3}, // duplicate, front 1
				[]float64{5, 2}, // front 1
			)
			ranking, err := r.ComputeRanking(pop)
			require.NoError(t, err)

			got := make([]int, len(pop))
			for i, ind := range pop {
				got[i] = ind.Rank
			}
			if diff := cmp.Diff([]int{1, 0, 0, 2, 1, 1}, got); diff != "" {
				t.Errorf("unexpected ranks (-want +got):\n%s", diff)
			}
			assert.Equal(t, 3, ranking.NumberOfSubFronts())
		})
	}
}

func TestRankingConstraintPrecedence(t *testing.T) {
	pop := []*Individual{
		NewIndividual([]float64{0, 0}, -2),
		NewIndividual([]float64{9, 9}, 0),
		NewIndividual([]float64{0, 0}, -1),
	}
	for _, r := range rankers() {
		_, err := r.ComputeRanking(pop)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 0, 1}, []int{pop[0].Rank, pop[1].Rank, pop[2].Rank}, r.Name())
	}
}

func TestRankingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 25; iter++ {
		m := 2 + iter%3
		pop := randomPopulation(rng, 60, m, iter%2 == 1)

		for _, r := range rankers() {
			ranking, err := r.ComputeRanking(pop)
			require.NoError(t, err)

			seen := make(map[*Individual]int)
			for f := 0; f < ranking.NumberOfSubFronts(); f++ {
				front, err := ranking.SubFront(f)
				require.NoError(t, err)
				require.NotEmpty(t, front)
				for _, a := range front {
					seen[a]++
					require.Equal(t, f, a.Rank)
					for _, b := range front {
						require.False(t, Dominates(a, b), "front %d is not mutually non-dominated", f)
					}
				}
			}
			require.Len(t, seen, len(pop), "ranking must partition the population")
			for _, count := range seen {
				require.Equal(t, 1, count)
			}

			for _, a := range pop {
				for _, b := range pop {
					if Dominates(a, b) {
						require.Less(t, a.Rank, b.Rank)
					}
					if EqualObjectives(a, b) {
						require.Equal(t, a.Rank, b.Rank)
					}
				}
			}
		}
	}
}

func TestRankersAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pop := randomPopulation(rng, 120, 3, true)

	fast, err := FastNonDominatedSort{}.ComputeRanking(pop)
	require.NoError(t, err)
	fastRanks := ranksOf(pop)

	efficient, err := EfficientNonDominatedSort{}.ComputeRanking(pop)
	require.NoError(t, err)
	efficientRanks := ranksOf(pop)

	require.Equal(t, fast.NumberOfSubFronts(), efficient.NumberOfSubFronts())
	if diff := cmp.Diff(fastRanks, efficientRanks); diff != "" {
		t.Errorf("rankers disagree (-fast +efficient):\n%s", diff)
	}
	for f := 0; f < fast.NumberOfSubFronts(); f++ {
		a := append([]int(nil), fast.FrontIndices(f)...)
		b := append([]int(nil), efficient.FrontIndices(f)...)
		sort.Ints(a)
		sort.Ints(b)
		assert.Equal(t, a, b)
	}
}

func TestNonDominatedSort(t *testing.T) {
	fronts, err := NonDominatedSort(individuals([]float64{1, 1}, []float64{2, 2}, []float64{0, 3}))
	require.NoError(t, err)
	require.Len(t, fronts, 2)
	assert.Len(t, fronts[0], 2)
	assert.Equal(t, []float64{2, 2}, fronts[1][0].Objectives)
}

func ranksOf(pop []*Individual) []int {
	out := make([]int, len(pop))
	for i, ind := range pop {
		out[i] = ind.Rank
	}
	return out
}
