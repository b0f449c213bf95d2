package app

import (
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/component-base/logs"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/config"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/indicators"
)

// frontCache keeps parsed front files for the lifetime of the process, so
// commands that read the same reference set repeatedly parse it once.
var frontCache = cache.New(10*time.Minute, 20*time.Minute)

// NewFrontctlCommand returns the root command writing results to out.
func NewFrontctlCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frontctl",
		Short: "Rank, measure and produce Pareto fronts",
		Long: `frontctl ranks objective vectors into non-dominated fronts, computes
hypervolume indicators and runs the bundled evolutionary algorithms on
benchmark problems.`,
		SilenceUsage: true,
	}
	cmd.SetGlobalNormalizationFunc(cliflag.WordSepNormalizeFunc)
	logs.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newHypervolumeCommand(out),
		newRankCommand(out),
		newRunCommand(out),
	)
	return cmd
}

// addEngineConfigFlag registers the flag selecting the engine configuration file.
func addEngineConfigFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "config", "", "Engine configuration file (YAML); defaults apply when unset")
}

func readFront(path string) ([][]float64, error) {
	if cached, ok := frontCache.Get(path); ok {
		return cached.([][]float64), nil
	}
	front, err := indicators.ReadFrontFile(path)
	if err != nil {
		return nil, err
	}
	frontCache.Set(path, front, cache.DefaultExpiration)
	return front, nil
}

func loadEngineConfig(path string) (*config.EngineConfig, error) {
	if path == "" {
		c := &config.EngineConfig{}
		c.SetDefaults()
		return c, c.Validate()
	}
	return config.Load(path)
}
