package density

import (
	"fmt"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/indicators"
)

// HypervolumeContribution scores every member by the hypervolume the set loses
// without it. The smallest contribution is the most removable.
type HypervolumeContribution struct {
	referencePoint []float64
	offset         float64
}

var _ Estimator = (*HypervolumeContribution)(nil)

// NewHypervolumeContribution uses referencePoint when given, otherwise the nadir
// of each computed set shifted by offset.
func NewHypervolumeContribution(referencePoint []float64, offset float64) (*HypervolumeContribution, error) {
	if len(referencePoint) == 0 && offset <= 0 {
		return nil, fmt.Errorf("%w: hypervolume offset must be > 0 without a fixed reference point, got %g", framework.ErrInvalidRange, offset)
	}
	return &HypervolumeContribution{
		referencePoint: append([]float64(nil), referencePoint...),
		offset:         offset,
	}, nil
}

func (*HypervolumeContribution) Name() string {
	return HypervolumeContributionName
}

func (e *HypervolumeContribution) Compute(front []*framework.Individual) error {
	if err := checkFront(front); err != nil {
		return err
	}
	if len(front) == 0 {
		return nil
	}

	points := make([][]float64, len(front))
	for i, ind := range front {
		points[i] = ind.Objectives
	}

	refPoint := e.referencePoint
	if len(refPoint) == 0 {
		nadir, err := indicators.NadirPoint(points)
		if err != nil {
			return err
		}
		for m := range nadir {
			nadir[m] += e.offset
		}
		refPoint = nadir
	}

	contributions, err := indicators.Contributions(points, refPoint)
	if err != nil {
		return err
	}
	for i, ind := range front {
		ind.Density = contributions[i]
	}
	return nil
}

func (*HypervolumeContribution) Compare(a, b *framework.Individual) int {
	return preferLarger(a.Density, b.Density)
}

func (e *HypervolumeContribution) Sort(front []*framework.Individual) []*framework.Individual {
	return sortByPreference(front, e.Compare)
}
