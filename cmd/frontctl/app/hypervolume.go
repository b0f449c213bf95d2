package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/indicators"
)

type hypervolumeOptions struct {
	front          string
	referenceSet   string
	referencePoint []float64
}

func newHypervolumeCommand(out io.Writer) *cobra.Command {
	o := &hypervolumeOptions{}
	cmd := &cobra.Command{
		Use:   "hypervolume",
		Short: "Compute the hypervolume of a front file",
		Long: `Compute the hypervolume dominated by the points of a front file.

The reference point is either given explicitly or derived from a reference
set as its per-objective maximum.

Examples:
  frontctl hypervolume --front run.pf --reference-set ZDT1.pf
  frontctl hypervolume --front run.pf --reference-point 1.1,1.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(out)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.front, "front", "", "File with one objective vector per line")
	fs.StringVar(&o.referenceSet, "reference-set", "", "File whose per-objective maximum is the reference point")
	fs.Float64SliceVar(&o.referencePoint, "reference-point", nil, "Explicit reference point")
	_ = cmd.MarkFlagRequired("front")
	cmd.MarkFlagsMutuallyExclusive("reference-set", "reference-point")
	return cmd
}

func (o *hypervolumeOptions) run(out io.Writer) error {
	front, err := readFront(o.front)
	if err != nil {
		return err
	}

	var hv float64
	switch {
	case o.referenceSet != "":
		refSet, err := readFront(o.referenceSet)
		if err != nil {
			return err
		}
		hv, err = indicators.HypervolumeWithReferenceSet(front, refSet)
		if err != nil {
			return err
		}
	case len(o.referencePoint) > 0:
		hv, err = indicators.Hypervolume(front, o.referencePoint)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("one of --reference-set or --reference-point is required")
	}

	fmt.Fprintf(out, "%.6f\n", hv)
	return nil
}
