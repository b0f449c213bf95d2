package density

import (
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/grid"
)

// Grid scores individuals by the occupancy of their adaptive-grid hypercube.
// Smaller occupancy is preferred. Every Compute rebuilds the grid over the
// given set, so the grid always reflects the bounds of the last computed set.
type Grid struct {
	grid *grid.AdaptiveGrid
}

var (
	_ Estimator = (*Grid)(nil)
	_ Tracker   = (*Grid)(nil)
)

func NewGrid(divisions int) (*Grid, error) {
	g, err := grid.NewAdaptiveGrid(divisions)
	if err != nil {
		return nil, err
	}
	return &Grid{grid: g}, nil
}

func (*Grid) Name() string {
	return GridName
}

// AdaptiveGrid exposes the grid built by the last Compute or Track, e.g. for
// grid-biased selection.
func (e *Grid) AdaptiveGrid() *grid.AdaptiveGrid {
	return e.grid
}

func (e *Grid) Compute(front []*framework.Individual) error {
	if err := e.grid.Update(front); err != nil {
		return err
	}
	for _, ind := range front {
		ind.Density = float64(e.grid.LocationDensity(ind.Cell))
	}
	return nil
}

// Track rebuilds the grid over the current members of the owning set.
func (e *Grid) Track(members []*framework.Individual) error {
	return e.Compute(members)
}

func (*Grid) Compare(a, b *framework.Individual) int {
	return -preferLarger(a.Density, b.Density)
}

func (e *Grid) Sort(front []*framework.Individual) []*framework.Individual {
	return sortByPreference(front, e.Compare)
}
