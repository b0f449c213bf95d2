package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/archive"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/indicators"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/metrics"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/util"
)

const (
	algorithmNSGAII = "nsga2"
	algorithmPESA2  = "pesa2"
)

type runOptions struct {
	problem      string
	algorithm    string
	numVars      int
	population   int
	generations  int
	parallelism  int
	configPath   string
	referenceSet string
	reportPath   string
	metricsFile  string
	plotDir      string
}

func newRunCommand(out io.Writer) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an evolutionary algorithm on a benchmark problem",
		Long: fmt.Sprintf(`Run NSGA-II or PESA-II on a benchmark problem and report the
non-dominated solutions found. The engine configuration selects the ranking
strategy, density estimator and archive.

Problems: %s

Examples:
  frontctl run --problem ZDT1 --algorithm nsga2 --generations 250
  frontctl run --problem DTLZ2 --algorithm pesa2 --config engine.yaml --metrics-file run.prom`,
			strings.Join(benchmarks.Names(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd.Context(), out)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.problem, "problem", benchmarks.ZDT1Name, "Benchmark problem")
	fs.StringVar(&o.algorithm, "algorithm", algorithmNSGAII, "Algorithm: nsga2 or pesa2")
	fs.IntVar(&o.numVars, "vars", 30, "Number of decision variables")
	fs.IntVar(&o.population, "population", 100, "Population size (offspring per generation for pesa2)")
	fs.IntVar(&o.generations, "generations", 250, "Number of generations")
	fs.IntVar(&o.parallelism, "parallelism", 1, "Concurrent objective evaluations (nsga2)")
	addEngineConfigFlag(fs, &o.configPath)
	fs.StringVar(&o.referenceSet, "reference-set", "", "Reference front for the hypervolume; defaults to the problem's true front")
	fs.StringVar(&o.reportPath, "report", "", "Write a ParetoFrontReport of the result to this file")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "Write Prometheus metrics of the run to this file")
	fs.StringVar(&o.plotDir, "plot-dir", "", "Write an HTML plot against the true front into this directory")
	return cmd
}

func (o *runOptions) run(ctx context.Context, out io.Writer) error {
	logger := klog.FromContext(ctx)

	engine, err := loadEngineConfig(o.configPath)
	if err != nil {
		return err
	}
	problem, err := benchmarks.New(o.problem, o.numVars)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	archiveOpts := []archive.Option{
		archive.WithRecorder(recorder.Archive(o.algorithm)),
		archive.WithLogger(logger),
	}

	var (
		solutions   []*framework.Individual
		evaluations int
	)
	switch o.algorithm {
	case algorithmNSGAII:
		ranker, err := engine.BuildRanker()
		if err != nil {
			return err
		}
		estimator, err := engine.BuildEstimator()
		if err != nil {
			return err
		}
		arch, err := engine.BuildArchive(archiveOpts...)
		if err != nil {
			return err
		}
		nsga, err := algorithms.NewNSGAII(problem, algorithms.NSGAIIConfig{
			PopulationSize: o.population,
			Generations:    o.generations,
			Parallelism:    o.parallelism,
			Ranker:         ranker,
			Estimator:      estimator,
			Archive:        arch,
			Observer:       recorder,
			Rand:           engine.Rand(),
		})
		if err != nil {
			return err
		}
		if _, err := nsga.Run(ctx); err != nil {
			return err
		}
		solutions = arch.Solutions()
	case algorithmPESA2:
		pesa, err := algorithms.NewPESA2(problem, algorithms.PESA2Config{
			PopulationSize: o.population,
			ArchiveSize:    engine.ArchiveSize,
			Generations:    o.generations,
			GridDivisions:  engine.GridDivisions,
			ArchiveOptions: append(archiveOpts, archive.WithDuplicatePolicy(engine.Duplicates)),
			Rand:           engine.Rand(),
		})
		if err != nil {
			return err
		}
		if solutions, err = pesa.Run(ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown algorithm %q, want %s or %s", o.algorithm, algorithmNSGAII, algorithmPESA2)
	}
	evaluations = o.population * (o.generations + 1)

	fmt.Fprintf(out, "problem:      %s\n", problem.Name())
	fmt.Fprintf(out, "algorithm:    %s\n", o.algorithm)
	fmt.Fprintf(out, "evaluations:  %s\n", humanize.Comma(int64(evaluations)))
	fmt.Fprintf(out, "solutions:    %s\n", humanize.Comma(int64(len(solutions))))

	reference, err := o.reference(problem)
	if err != nil {
		return err
	}
	if len(reference) > 0 {
		hv, err := indicators.HypervolumeWithReferenceSet(objectiveRows(solutions), reference)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "hypervolume:  %.6f\n", hv)
	}

	if o.reportPath != "" {
		ranking, err := rankWithDensity(engine, solutions)
		if err != nil {
			return err
		}
		if err := writeReport(o.reportPath, problem.Name()+"-"+o.algorithm, ranking, util.ReportOptions{
			Source:    fmt.Sprintf("%s/%s", o.algorithm, problem.Name()),
			Ranking:   engine.Ranking,
			Estimator: engine.Estimator,
		}); err != nil {
			return err
		}
	}
	if o.plotDir != "" {
		path, err := util.PlotResults(o.plotDir, framework.Points(solutions), problem, o.algorithm)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "plot written to %s\n", path)
	}
	if o.metricsFile != "" {
		if err := prometheus.WriteToTextfile(o.metricsFile, reg); err != nil {
			return err
		}
	}
	return nil
}

func (o *runOptions) reference(problem framework.Problem) ([][]float64, error) {
	if o.referenceSet != "" {
		return readFront(o.referenceSet)
	}
	front := problem.TrueParetoFront(1000)
	rows := make([][]float64, len(front))
	for i, p := range front {
		rows[i] = p
	}
	return rows, nil
}

func objectiveRows(individuals []*framework.Individual) [][]float64 {
	out := make([][]float64, len(individuals))
	for i, ind := range individuals {
		out[i] = ind.Objectives
	}
	return out
}
