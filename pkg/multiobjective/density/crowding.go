package density

import (
	"math"
	"sort"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// CrowdingDistance is the NSGA-II diversity estimator: per objective, the two
// boundary individuals get +Inf and interior ones accumulate the normalized gap
// between their neighbors. Larger distances are preferred.
type CrowdingDistance struct{}

var _ Estimator = CrowdingDistance{}

func NewCrowdingDistance() CrowdingDistance {
	return CrowdingDistance{}
}

func (CrowdingDistance) Name() string {
	return CrowdingDistanceName
}

// Compute leaves the order of front untouched.
func (CrowdingDistance) Compute(front []*framework.Individual) error {
	if err := checkFront(front); err != nil {
		return err
	}
	if len(front) <= 2 {
		for _, ind := range front {
			ind.Density = math.Inf(1)
		}
		return nil
	}

	for _, ind := range front {
		ind.Density = 0
	}

	order := make([]int, len(front))
	numObjectives := len(front[0].Objectives)
	for m := 0; m < numObjectives; m++ {
		for i := range order {
			order[i] = i
		}
		// Sort by each objective
		sort.SliceStable(order, func(i, j int) bool {
			return front[order[i]].Objectives[m] < front[order[j]].Objectives[m]
		})

		first, last := front[order[0]], front[order[len(order)-1]]
		first.Density = math.Inf(1)
		last.Density = math.Inf(1)

		objectiveRange := last.Objectives[m] - first.Objectives[m]
		if objectiveRange == 0 {
			continue
		}

		for i := 1; i < len(order)-1; i++ {
			gap := front[order[i+1]].Objectives[m] - front[order[i-1]].Objectives[m]
			front[order[i]].Density += gap / objectiveRange
		}
	}
	return nil
}

func (CrowdingDistance) Compare(a, b *framework.Individual) int {
	return preferLarger(a.Density, b.Density)
}

func (c CrowdingDistance) Sort(front []*framework.Individual) []*framework.Individual {
	return sortByPreference(front, c.Compare)
}
