package grid

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// AdaptiveGrid partitions objective space into hypercubes. Every objective range
// observed at the last Update is split into Divisions equal bins; a hypercube is
// identified by its per-objective bin indices flattened into one integer.
// Occupancy is tracked sparsely since only a small fraction of the conceptual
// grid is ever occupied.
//
// The grid is not safe for concurrent use.
type AdaptiveGrid struct {
	divisions int

	lower []float64
	upper []float64

	occupancy map[int]int
	occupied  sets.Set[int]
	// cells lists the occupied hypercubes in ascending order as of the last Update.
	cells []int
}

// NewAdaptiveGrid returns an empty grid splitting every objective into divisions bins.
func NewAdaptiveGrid(divisions int) (*AdaptiveGrid, error) {
	if divisions < 1 {
		return nil, fmt.Errorf("%w: grid divisions must be >= 1, got %d", framework.ErrInvalidRange, divisions)
	}
	return &AdaptiveGrid{
		divisions: divisions,
		occupancy: make(map[int]int),
		occupied:  sets.New[int](),
	}, nil
}

func (g *AdaptiveGrid) Divisions() int {
	return g.divisions
}

// Bounds returns copies of the per-objective lower and upper limits.
func (g *AdaptiveGrid) Bounds() (lower, upper []float64) {
	return append([]float64(nil), g.lower...), append([]float64(nil), g.upper...)
}

// Update rebuilds the bounds and occupancy from individuals and writes the
// hypercube index of each into Individual.Cell.
func (g *AdaptiveGrid) Update(individuals []*framework.Individual) error {
	g.occupancy = make(map[int]int, len(individuals))
	g.occupied = sets.New[int]()
	g.cells = nil
	if len(individuals) == 0 {
		g.lower, g.upper = nil, nil
		return nil
	}

	for i, ind := range individuals {
		if ind == nil {
			return fmt.Errorf("%w: individual %d is nil", framework.ErrNullArgument, i)
		}
	}
	m := len(individuals[0].Objectives)
	if m == 0 {
		return fmt.Errorf("%w: individuals have no objectives", framework.ErrInvalidCondition)
	}
	if float64(m)*math.Log(float64(g.divisions)) >= math.Log(math.MaxInt64) {
		return fmt.Errorf("%w: %d^%d hypercubes overflow the cell index", framework.ErrInvalidRange, g.divisions, m)
	}
	for i, ind := range individuals {
		if len(ind.Objectives) != m {
			return fmt.Errorf("%w: individual %d has %d objectives, want %d", framework.ErrInvalidCondition, i, len(ind.Objectives), m)
		}
	}

	g.lower = make([]float64, m)
	g.upper = make([]float64, m)
	column := make([]float64, 0, len(individuals))
	for obj := 0; obj < m; obj++ {
		column = column[:0]
		for _, ind := range individuals {
			if v := ind.Objectives[obj]; !math.IsNaN(v) {
				column = append(column, v)
			}
		}
		if len(column) == 0 {
			continue
		}
		g.lower[obj] = floats.Min(column)
		g.upper[obj] = floats.Max(column)
	}

	for _, ind := range individuals {
		ind.Cell = g.Location(ind.Objectives)
		g.add(ind.Cell)
	}
	g.cells = sets.List(g.occupied)
	return nil
}

// Location returns the hypercube index of point, or -1 when the point lies
// outside the current bounds and the grid needs to be rebuilt. Points with a
// NaN objective are never located.
func (g *AdaptiveGrid) Location(point []float64) int {
	if len(g.lower) == 0 || len(point) != len(g.lower) {
		return -1
	}

	cell := 0
	stride := 1
	for obj, v := range point {
		if math.IsNaN(v) || v < g.lower[obj] || v > g.upper[obj] {
			return -1
		}

		bin := 0
		if width := g.upper[obj] - g.lower[obj]; width > 0 {
			bin = int((v - g.lower[obj]) / width * float64(g.divisions))
			if bin >= g.divisions {
				bin = g.divisions - 1
			}
		}
		cell += bin * stride
		stride *= g.divisions
	}
	return cell
}

// Coordinates expands a flattened hypercube index into per-objective bin indices.
func (g *AdaptiveGrid) Coordinates(cell int) []int {
	coords := make([]int, len(g.lower))
	for obj := range coords {
		coords[obj] = cell % g.divisions
		cell /= g.divisions
	}
	return coords
}

// LocationDensity returns how many individuals occupy the hypercube.
func (g *AdaptiveGrid) LocationDensity(cell int) int {
	return g.occupancy[cell]
}

// OccupiedHypercubes returns the number of hypercubes holding at least one individual.
func (g *AdaptiveGrid) OccupiedHypercubes() int {
	return g.occupied.Len()
}

// MostPopulated returns the most crowded hypercube, the lowest index winning
// ties, or -1 for an empty grid.
func (g *AdaptiveGrid) MostPopulated() int {
	best, bestCount := -1, 0
	for _, cell := range g.cells {
		if count := g.occupancy[cell]; count > bestCount {
			best, bestCount = cell, count
		}
	}
	return best
}

// RandomOccupiedHypercube picks uniformly among the occupied hypercubes, or
// returns -1 for an empty grid.
func (g *AdaptiveGrid) RandomOccupiedHypercube(rng *rand.Rand) int {
	if len(g.cells) == 0 {
		return -1
	}
	return g.cells[rng.Intn(len(g.cells))]
}

func (g *AdaptiveGrid) add(cell int) {
	if cell < 0 {
		return
	}
	g.occupancy[cell]++
	g.occupied.Insert(cell)
}
