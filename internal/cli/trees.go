package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
	"github.com/ecotracks/ecotracks/internal/greenops"
)

// NewTreesCmd creates the command that converts an emission into trees.
func NewTreesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "trees <value> [unit]",
		Short: "Trees needed to offset an emission",
		Long: `Converts a carbon quantity to tCO2e and multiplies by 40 trees per tonne.

Units: g, kg, t, lb and their CO2/CO2e forms (e.g. kgCO2e). Default t.`,
		Example: `  ecotracks trees 148.47
  ecotracks trees 2500 kgCO2e`,
		Args: cobra.RangeArgs(1, 2), //nolint:mnd // value and optional unit
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			input := greenops.CarbonInput{Value: value}
			if len(args) > 1 {
				if !greenops.IsRecognizedUnit(args[1]) {
					return fmt.Errorf("%w: %q (use g, kg, t or lb, optionally with CO2e)", greenops.ErrInvalidUnit, args[1])
				}
				input.Unit = args[1]
			}

			out, err := greenops.Calculate(input)
			if err != nil {
				return err
			}

			return writeStructured(cmd.OutOrStdout(), config.GetOutputFormat(output), out,
				func(w io.Writer) error { return renderTrees(w, out) })
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format: table, json or yaml")
	return cmd
}

func renderTrees(w io.Writer, out greenops.EquivalencyOutput) error {
	if out.IsEmpty {
		_, err := fmt.Fprintf(w, "%s is less than one tree\n", greenops.FormatTonnes(out.InputTonnes))
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", greenops.FormatTonnes(out.InputTonnes), out.DisplayText)
	return err
}
