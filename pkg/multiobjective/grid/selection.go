package grid

import (
	"fmt"
	"math/rand"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// Selector implements grid-biased selection over a set located on an AdaptiveGrid:
// two occupied hypercubes are drawn at random, the less crowded one wins (a fair
// coin settles equal densities) and a member of the winning hypercube is returned.
type Selector struct {
	grid *AdaptiveGrid
	rng  *rand.Rand
}

func NewSelector(grid *AdaptiveGrid, rng *rand.Rand) (*Selector, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: grid", framework.ErrNullArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source", framework.ErrNullArgument)
	}
	return &Selector{grid: grid, rng: rng}, nil
}

// SelectHypercube runs the binary tournament between two random occupied hypercubes.
func (s *Selector) SelectHypercube() int {
	first := s.grid.RandomOccupiedHypercube(s.rng)
	second := s.grid.RandomOccupiedHypercube(s.rng)
	if first == second {
		return first
	}

	d1, d2 := s.grid.LocationDensity(first), s.grid.LocationDensity(second)
	switch {
	case d1 < d2:
		return first
	case d2 < d1:
		return second
	case s.rng.Intn(2) == 0:
		return first
	default:
		return second
	}
}

// Select returns a member of the hypercube chosen by SelectHypercube. Members
// must be the set the grid was last updated with. The hypercube is searched
// linearly from a random offset, wrapping around, and the first match is returned.
func (s *Selector) Select(members []*framework.Individual) (*framework.Individual, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no members to select from", framework.ErrEmptyCollection)
	}
	cell := s.SelectHypercube()
	if cell < 0 {
		return nil, fmt.Errorf("%w: grid has no occupied hypercube", framework.ErrEmptyCollection)
	}

	start := s.rng.Intn(len(members))
	for i := 0; i < len(members); i++ {
		candidate := members[(start+i)%len(members)]
		if s.grid.Location(candidate.Objectives) == cell {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no member located in hypercube %d, grid is stale", framework.ErrInvalidCondition, cell)
}
