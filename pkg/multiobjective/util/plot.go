package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// PlotResults creates a scatter plot comparing the true Pareto front of the given Problem
// with the final population resulted from the algorithm. The chart is written as
// HTML into outputDir and its path is returned.
func PlotResults(outputDir string, results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("results are empty for %s Benchmark", problem.Name())
	}

	if len(results[0]) != 2 {
		return "", fmt.Errorf("can only plot 2D for %s Benchmark", problem.Name())
	}

	scatter := newScatter(fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()))

	if trueParetoFront := problem.TrueParetoFront(100); len(trueParetoFront) > 0 {
		scatter.AddSeries("True Pareto Front", scatterData(trueParetoFront, "circle"))
	}
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), scatterData(results, "triangle"))
	setSeriesOptions(scatter)

	return render(scatter, filepath.Join(outputDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName)))
}

// PlotRanking draws one series per front of a two-objective ranking, at most
// maxFronts of them.
func PlotRanking(outputDir, title string, ranking *framework.Ranking, maxFronts int) (string, error) {
	if ranking.NumberOfSubFronts() == 0 {
		return "", fmt.Errorf("%w: nothing to plot for %s", framework.ErrEmptyCollection, title)
	}
	if len(ranking.Population()[0].Objectives) != 2 {
		return "", fmt.Errorf("can only plot 2D rankings, %s has %d objectives", title, len(ranking.Population()[0].Objectives))
	}

	scatter := newScatter(title)
	for i, front := range ranking.Fronts() {
		if i >= maxFronts {
			break
		}
		scatter.AddSeries(fmt.Sprintf("Front %d", i), scatterData(framework.Points(front), "circle"))
	}
	setSeriesOptions(scatter)

	return render(scatter, filepath.Join(outputDir, fmt.Sprintf("%s_ranking.html", title)))
}

func newScatter(title string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	return scatter
}

func scatterData(points []framework.ObjectiveSpacePoint, symbol string) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     symbol,
			SymbolSize: 10,
		}
	}
	return data
}

func setSeriesOptions(scatter *charts.Scatter) {
	scatter.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
		charts.WithEmphasisOpts(opts.Emphasis{}),
	)
}

func render(scatter *charts.Scatter, path string) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return "", err
	}
	return path, nil
}
