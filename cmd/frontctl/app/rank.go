package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/config"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/util"
)

type rankOptions struct {
	front          string
	configPath     string
	reportPath     string
	plotDir        string
	referencePoint []float64
}

func newRankCommand(out io.Writer) *cobra.Command {
	o := &rankOptions{}
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Partition a front file into non-dominated fronts",
		Long: `Rank the objective vectors of a file into non-dominated fronts and
compute the configured density estimator over every front.

Examples:
  frontctl rank --front population.txt
  frontctl rank --front population.txt --config engine.yaml --report report.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(out)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.front, "front", "", "File with one objective vector per line")
	addEngineConfigFlag(fs, &o.configPath)
	fs.StringVar(&o.reportPath, "report", "", "Write a ParetoFrontReport to this file")
	fs.StringVar(&o.plotDir, "plot-dir", "", "Write an HTML scatter plot of the fronts into this directory")
	fs.Float64SliceVar(&o.referencePoint, "reference-point", nil, "Reference point for the report hypervolume")
	_ = cmd.MarkFlagRequired("front")
	return cmd
}

func (o *rankOptions) run(out io.Writer) error {
	engine, err := loadEngineConfig(o.configPath)
	if err != nil {
		return err
	}
	rows, err := readFront(o.front)
	if err != nil {
		return err
	}

	population := make([]*framework.Individual, len(rows))
	for i, row := range rows {
		population[i] = framework.NewIndividual(append([]float64(nil), row...), 0)
	}
	ranking, err := rankWithDensity(engine, population)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "FRONT\tSIZE")
	for i := 0; i < ranking.NumberOfSubFronts(); i++ {
		fmt.Fprintf(w, "%d\t%s\n", i, humanize.Comma(int64(len(ranking.FrontIndices(i)))))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(o.front), filepath.Ext(o.front))
	if o.reportPath != "" {
		if err := writeReport(o.reportPath, name, ranking, util.ReportOptions{
			Source:         o.front,
			Ranking:        engine.Ranking,
			Estimator:      engine.Estimator,
			ReferencePoint: o.referencePoint,
		}); err != nil {
			return err
		}
	}
	if o.plotDir != "" {
		path, err := util.PlotRanking(o.plotDir, name, ranking, 5)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "plot written to %s\n", path)
	}
	return nil
}

// rankWithDensity ranks population and computes the configured estimator over every front.
func rankWithDensity(engine *config.EngineConfig, population []*framework.Individual) (*framework.Ranking, error) {
	ranker, err := engine.BuildRanker()
	if err != nil {
		return nil, err
	}
	estimator, err := engine.BuildEstimator()
	if err != nil {
		return nil, err
	}
	ranking, err := ranker.ComputeRanking(population)
	if err != nil {
		return nil, err
	}
	for _, front := range ranking.Fronts() {
		if err := estimator.Compute(front); err != nil {
			return nil, err
		}
	}
	return ranking, nil
}

func writeReport(path, name string, ranking *framework.Ranking, o util.ReportOptions) error {
	report, err := util.NewParetoFrontReport(strings.ToLower(name), ranking, o)
	if err != nil {
		return err
	}
	data, err := util.MarshalReport(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
