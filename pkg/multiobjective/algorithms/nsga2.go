package algorithms

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/archive"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/density"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

const (
	NSGAIIName = "NSGA-II"
)

// RankingObserver is notified of every ranking an algorithm computes.
type RankingObserver interface {
	ObserveRanking(algorithm string, ranking *framework.Ranking)
}

// NSGAIIConfig holds the NSGA-II parameters. Zero rates and distribution index
// fall back to 0.9, 1/numVars and 20.
type NSGAIIConfig struct {
	PopulationSize    int
	Generations       int
	CrossoverRate     float64
	MutationRate      float64
	DistributionIndex float64

	// Parallelism bounds concurrent objective evaluations. Values below 2
	// evaluate sequentially. Problems must be safe for concurrent use when
	// evaluated in parallel.
	Parallelism int

	Ranker    framework.Ranker
	Estimator density.Estimator

	// Archive, when set, receives every evaluated individual. Insertions
	// happen on the driver goroutine in evaluation order.
	Archive  *archive.Archive
	Observer RankingObserver
	Rand     *rand.Rand
}

// NSGAII represents the NSGA-II algorithm configuration
type NSGAII struct {
	problem   framework.Problem
	cfg       NSGAIIConfig
	variation *Variation
}

var _ framework.Algorithm = (*NSGAII)(nil)

// NewNSGAII creates a new instance of NSGA-II with given parameters
func NewNSGAII(problem framework.Problem, cfg NSGAIIConfig) (*NSGAII, error) {
	if problem == nil {
		return nil, fmt.Errorf("%w: problem", framework.ErrNullArgument)
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("%w: random source", framework.ErrNullArgument)
	}
	if cfg.PopulationSize < 2 {
		return nil, fmt.Errorf("%w: population size must be >= 2, got %d", framework.ErrInvalidRange, cfg.PopulationSize)
	}
	if cfg.Generations < 0 {
		return nil, fmt.Errorf("%w: generations must be >= 0, got %d", framework.ErrInvalidRange, cfg.Generations)
	}
	if len(problem.LowerBounds()) == 0 || len(problem.LowerBounds()) != len(problem.UpperBounds()) {
		return nil, fmt.Errorf("%w: problem %s has inconsistent bounds", framework.ErrInvalidCondition, problem.Name())
	}
	if cfg.Ranker == nil {
		cfg.Ranker = framework.FastNonDominatedSort{}
	}
	if cfg.Estimator == nil {
		cfg.Estimator = density.NewCrowdingDistance()
	}

	return &NSGAII{
		problem:   problem,
		cfg:       cfg,
		variation: newVariation(problem, cfg.CrossoverRate, cfg.MutationRate, cfg.DistributionIndex, cfg.Rand),
	}, nil
}

func (n *NSGAII) Name() string {
	return NSGAIIName
}

// Run evolves the population for the configured number of generations and
// returns the final population, ranked and with densities computed per front.
func (n *NSGAII) Run(ctx context.Context) ([]*framework.Individual, error) {
	logger := klog.FromContext(ctx)

	population, err := n.evaluate(ctx, n.variation.RandomVariables(n.cfg.PopulationSize))
	if err != nil {
		return nil, err
	}
	population, _, err = n.selectSurvivors(population)
	if err != nil {
		return nil, err
	}

	tournament := RankingAndDensityComparator{Estimator: n.cfg.Estimator}
	for gen := 0; gen < n.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vars, err := n.variation.Reproduce(n.cfg.PopulationSize, func() (*framework.Individual, error) {
			return BinaryTournament(population, tournament, n.cfg.Rand)
		})
		if err != nil {
			return nil, err
		}
		offspring, err := n.evaluate(ctx, vars)
		if err != nil {
			return nil, err
		}

		combined := make([]*framework.Individual, 0, len(population)+len(offspring))
		combined = append(combined, population...)
		combined = append(combined, offspring...)

		var ranking *framework.Ranking
		population, ranking, err = n.selectSurvivors(combined)
		if err != nil {
			return nil, err
		}
		logger.V(4).Info("Generation completed", "algorithm", NSGAIIName, "problem", n.problem.Name(),
			"generation", gen+1, "fronts", ranking.NumberOfSubFronts(), "firstFront", len(ranking.FrontIndices(0)))
	}
	return population, nil
}

func (n *NSGAII) selectSurvivors(population []*framework.Individual) ([]*framework.Individual, *framework.Ranking, error) {
	survivors, ranking, err := EnvironmentalSelection(population, n.cfg.PopulationSize, n.cfg.Ranker, n.cfg.Estimator)
	if err != nil {
		return nil, nil, err
	}
	if n.cfg.Observer != nil {
		n.cfg.Observer.ObserveRanking(NSGAIIName, ranking)
	}
	return survivors, ranking, nil
}

// evaluate computes the individuals of vars, in parallel when configured, and
// feeds them to the external archive in input order.
func (n *NSGAII) evaluate(ctx context.Context, vars [][]float64) ([]*framework.Individual, error) {
	out := make([]*framework.Individual, len(vars))
	if n.cfg.Parallelism < 2 {
		for i, x := range vars {
			out[i] = framework.Evaluate(n.problem, x)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(n.cfg.Parallelism)
		for i, x := range vars {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = framework.Evaluate(n.problem, x)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if n.cfg.Archive != nil {
		for _, ind := range out {
			// Copies keep archive densities apart from population densities.
			if _, err := n.cfg.Archive.Add(ind.Copy()); err != nil {
				return nil, fmt.Errorf("archive %s solution: %w", n.problem.Name(), err)
			}
		}
	}
	return out, nil
}
