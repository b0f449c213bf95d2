package density

import (
	"fmt"
	"sort"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// Estimator assigns every individual of a set a crowdedness score, stored in
// Individual.Density, and orders individuals by it. Implementations are freely
// substitutable; callers pick one through New and never by type.
type Estimator interface {
	Name() string

	// Compute writes Individual.Density for every member of front. Running it
	// twice on an unchanged front yields identical values.
	Compute(front []*framework.Individual) error

	// Compare orders two individuals of the last computed front: negative when a
	// is less crowded (preferred for retention), positive when b is, 0 on ties.
	Compare(a, b *framework.Individual) int

	// Sort returns a copy of front ordered from least to most crowded.
	Sort(front []*framework.Individual) []*framework.Individual
}

// Tracker is implemented by estimators that keep state built over the whole
// owning set. Owners call Track with the full membership after every change.
type Tracker interface {
	Track(members []*framework.Individual) error
}

const (
	CrowdingDistanceName        = "crowding"
	GridName                    = "grid"
	KNearestNeighborName        = "knn"
	HypervolumeContributionName = "hypervolume"
)

// Options carries the parameters of every estimator kind; each kind reads its own fields.
type Options struct {
	// GridDivisions is the number of bins per objective of the adaptive grid.
	GridDivisions int
	// K selects the k-th nearest neighbor.
	K int
	// Normalize scales objectives to [0, 1] before measuring neighbor distances.
	Normalize bool
	// ReferencePoint fixes the hypervolume reference point. When empty the
	// front's nadir shifted by Offset is used.
	ReferencePoint []float64
	Offset         float64
}

// New builds the estimator registered under name.
func New(name string, opts Options) (Estimator, error) {
	switch name {
	case CrowdingDistanceName:
		return NewCrowdingDistance(), nil
	case GridName:
		return NewGrid(opts.GridDivisions)
	case KNearestNeighborName:
		return NewKNearestNeighbor(opts.K, opts.Normalize)
	case HypervolumeContributionName:
		return NewHypervolumeContribution(opts.ReferencePoint, opts.Offset)
	default:
		return nil, fmt.Errorf("%w: unknown density estimator %q", framework.ErrInvalidCondition, name)
	}
}

// Worst returns the index of the most crowded member of a computed front. The
// scan only moves past the current candidate on a strictly worse member, so the
// first of several equally crowded members is reported. It returns -1 for an
// empty front.
func Worst(e Estimator, front []*framework.Individual) int {
	if len(front) == 0 {
		return -1
	}
	worst := 0
	for i := 1; i < len(front); i++ {
		if e.Compare(front[i], front[worst]) > 0 {
			worst = i
		}
	}
	return worst
}

func sortByPreference(front []*framework.Individual, compare func(a, b *framework.Individual) int) []*framework.Individual {
	out := make([]*framework.Individual, len(front))
	copy(out, front)
	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j]) < 0
	})
	return out
}

// preferLarger orders by descending density.
func preferLarger(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func checkFront(front []*framework.Individual) error {
	for i, ind := range front {
		if ind == nil {
			return fmt.Errorf("%w: individual %d is nil", framework.ErrNullArgument, i)
		}
		if len(ind.Objectives) != len(front[0].Objectives) {
			return fmt.Errorf("%w: individual %d has %d objectives, want %d", framework.ErrInvalidCondition, i, len(ind.Objectives), len(front[0].Objectives))
		}
	}
	return nil
}
