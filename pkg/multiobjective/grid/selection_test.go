package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

func TestSelectorPrefersSparseHypercubes(t *testing.T) {
	g, err := NewAdaptiveGrid(2)
	require.NoError(t, err)
	members := sampleIndividuals()
	require.NoError(t, g.Update(members))

	s, err := NewSelector(g, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	counts := map[int]int{}
	for i := 0; i < 3000; i++ {
		counts[s.SelectHypercube()]++
	}
	// Densities are 1 (cell 3), 2 (cell 1) and 3 (cell 2).
	assert.Greater(t, counts[3], counts[1])
	assert.Greater(t, counts[1], counts[2])
}

func TestSelectorSelectReturnsMemberOfHypercube(t *testing.T) {
	g, err := NewAdaptiveGrid(2)
	require.NoError(t, err)
	members := sampleIndividuals()
	require.NoError(t, g.Update(members))

	s, err := NewSelector(g, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	seen := map[*framework.Individual]bool{}
	for i := 0; i < 500; i++ {
		got, err := s.Select(members)
		require.NoError(t, err)
		require.Contains(t, members, got)
		seen[got] = true
	}
	// Random start offsets reach more than one member of a shared hypercube.
	assert.Greater(t, len(seen), 3)
}

func TestSelectorSingleHypercube(t *testing.T) {
	g, err := NewAdaptiveGrid(3)
	require.NoError(t, err)
	members := []*framework.Individual{framework.NewIndividual([]float64{1, 1}, 0)}
	require.NoError(t, g.Update(members))

	s, err := NewSelector(g, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	got, err := s.Select(members)
	require.NoError(t, err)
	assert.Same(t, members[0], got)
}

func TestSelectorErrors(t *testing.T) {
	_, err := NewSelector(nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, framework.ErrNullArgument)

	g, err := NewAdaptiveGrid(2)
	require.NoError(t, err)
	_, err = NewSelector(g, nil)
	assert.ErrorIs(t, err, framework.ErrNullArgument)

	s, err := NewSelector(g, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, err = s.Select(nil)
	assert.ErrorIs(t, err, framework.ErrEmptyCollection)

	members := sampleIndividuals()
	_, err = s.Select(members)
	assert.ErrorIs(t, err, framework.ErrEmptyCollection, "grid never updated")

	require.NoError(t, g.Update(members[:2]))
	_, err = s.Select([]*framework.Individual{framework.NewIndividual([]float64{9, 9}, 0)})
	assert.ErrorIs(t, err, framework.ErrInvalidCondition)
}
