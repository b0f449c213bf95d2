package density

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// KNearestNeighbor is the SPEA2 density: the Euclidean distance in objective
// space to the k-th nearest other member of the set. Larger is preferred.
// Members with fewer than k neighbors get +Inf. Ties on the k-th distance are
// settled by the following neighbor distances, as SPEA2 archive truncation does;
// those are kept in Individual.DensityTieBreak so that individuals of separately
// computed sets stay comparable.
type KNearestNeighbor struct {
	k         int
	normalize bool
}

var _ Estimator = (*KNearestNeighbor)(nil)

func NewKNearestNeighbor(k int, normalize bool) (*KNearestNeighbor, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", framework.ErrInvalidRange, k)
	}
	return &KNearestNeighbor{k: k, normalize: normalize}, nil
}

func (*KNearestNeighbor) Name() string {
	return KNearestNeighborName
}

func (e *KNearestNeighbor) Compute(front []*framework.Individual) error {
	if err := checkFront(front); err != nil {
		return err
	}

	points := e.points(front)
	for i, ind := range front {
		distances := make([]float64, 0, len(front)-1)
		for j := range front {
			if i != j {
				distances = append(distances, floats.Distance(points[i], points[j], 2))
			}
		}
		sort.Float64s(distances)

		if len(distances) < e.k {
			ind.Density = math.Inf(1)
			ind.DensityTieBreak = nil
		} else {
			ind.Density = distances[e.k-1]
			ind.DensityTieBreak = distances[e.k:]
		}
	}
	return nil
}

func (e *KNearestNeighbor) points(front []*framework.Individual) [][]float64 {
	points := make([][]float64, len(front))
	for i, ind := range front {
		points[i] = ind.Objectives
	}
	if !e.normalize || len(front) == 0 {
		return points
	}

	m := len(front[0].Objectives)
	lower, upper := make([]float64, m), make([]float64, m)
	copy(lower, points[0])
	copy(upper, points[0])
	for _, p := range points[1:] {
		for obj := range p {
			lower[obj] = math.Min(lower[obj], p[obj])
			upper[obj] = math.Max(upper[obj], p[obj])
		}
	}

	scaled := make([][]float64, len(points))
	for i, p := range points {
		q := make([]float64, m)
		copy(q, p)
		floats.Sub(q, lower)
		for obj := range q {
			if width := upper[obj] - lower[obj]; width > 0 {
				q[obj] /= width
			} else {
				q[obj] = 0
			}
		}
		scaled[i] = q
	}
	return scaled
}

func (*KNearestNeighbor) Compare(a, b *framework.Individual) int {
	if c := preferLarger(a.Density, b.Density); c != 0 {
		return c
	}
	da, db := a.DensityTieBreak, b.DensityTieBreak
	for i := 0; i < len(da) && i < len(db); i++ {
		if c := preferLarger(da[i], db[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (e *KNearestNeighbor) Sort(front []*framework.Individual) []*framework.Individual {
	return sortByPreference(front, e.Compare)
}
