package algorithms

import (
	"context"
	"fmt"
	"math/rand"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/archive"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/density"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/grid"
)

const (
	PESA2Name = "PESA-II"
)

// PESA2Config holds the PESA-II parameters. The archive is the only
// persistent population; each generation breeds PopulationSize offspring from
// archive members picked by grid-biased selection.
type PESA2Config struct {
	PopulationSize    int
	ArchiveSize       int
	Generations       int
	GridDivisions     int
	CrossoverRate     float64
	MutationRate      float64
	DistributionIndex float64

	ArchiveOptions []archive.Option
	Rand           *rand.Rand
}

type PESA2 struct {
	problem   framework.Problem
	cfg       PESA2Config
	variation *Variation
	estimator *density.Grid
	archive   *archive.Archive
	selector  *grid.Selector
}

var _ framework.Algorithm = (*PESA2)(nil)

func NewPESA2(problem framework.Problem, cfg PESA2Config) (*PESA2, error) {
	if problem == nil {
		return nil, fmt.Errorf("%w: problem", framework.ErrNullArgument)
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("%w: random source", framework.ErrNullArgument)
	}
	if cfg.PopulationSize < 1 {
		return nil, fmt.Errorf("%w: population size must be > 0, got %d", framework.ErrInvalidRange, cfg.PopulationSize)
	}
	if len(problem.LowerBounds()) == 0 || len(problem.LowerBounds()) != len(problem.UpperBounds()) {
		return nil, fmt.Errorf("%w: problem %s has inconsistent bounds", framework.ErrInvalidCondition, problem.Name())
	}

	estimator, err := density.NewGrid(cfg.GridDivisions)
	if err != nil {
		return nil, err
	}
	arch, err := archive.New(cfg.ArchiveSize, estimator, cfg.ArchiveOptions...)
	if err != nil {
		return nil, err
	}
	selector, err := grid.NewSelector(estimator.AdaptiveGrid(), cfg.Rand)
	if err != nil {
		return nil, err
	}

	return &PESA2{
		problem:   problem,
		cfg:       cfg,
		variation: newVariation(problem, cfg.CrossoverRate, cfg.MutationRate, cfg.DistributionIndex, cfg.Rand),
		estimator: estimator,
		archive:   arch,
		selector:  selector,
	}, nil
}

func (p *PESA2) Name() string {
	return PESA2Name
}

// Archive returns the archive the last Run filled.
func (p *PESA2) Archive() *archive.Archive {
	return p.archive
}

// Run returns the archive members after the configured number of generations.
func (p *PESA2) Run(ctx context.Context) ([]*framework.Individual, error) {
	logger := klog.FromContext(ctx)

	if err := p.join(p.variation.RandomVariables(p.cfg.PopulationSize)); err != nil {
		return nil, err
	}

	for gen := 0; gen < p.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The archive keeps its grid current, so the selector sees exactly
		// these members.
		members := p.archive.Solutions()
		vars, err := p.variation.Reproduce(p.cfg.PopulationSize, func() (*framework.Individual, error) {
			return p.selector.Select(members)
		})
		if err != nil {
			return nil, err
		}
		if err := p.join(vars); err != nil {
			return nil, err
		}
		logger.V(4).Info("Generation completed", "algorithm", PESA2Name, "problem", p.problem.Name(),
			"generation", gen+1, "archiveSize", p.archive.Size(), "occupiedHypercubes", p.estimator.AdaptiveGrid().OccupiedHypercubes())
	}
	return p.archive.Solutions(), nil
}

func (p *PESA2) join(vars [][]float64) error {
	for _, x := range vars {
		if _, err := p.archive.Add(framework.Evaluate(p.problem, x)); err != nil {
			return fmt.Errorf("archive %s solution: %w", p.problem.Name(), err)
		}
	}
	return nil
}
