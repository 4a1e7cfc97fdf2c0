package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
	"github.com/ecotracks/ecotracks/internal/greenops"
	"github.com/ecotracks/ecotracks/internal/inventory"
)

// Region sort orders.
const (
	sortInput = "input"
	sortTotal = "total"
)

// ErrUnsupportedSort is returned for unknown --sort values.
var ErrUnsupportedSort = errors.New("unsupported sort order")

// NewRegionsCmd creates the command that lists regional emissions.
func NewRegionsCmd() *cobra.Command {
	var (
		sortBy string
		output string
	)

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List emissions per operating region",
		Long: `Lists each region's total emissions with its scope 1/2/3 split
(75/15/10) and tree equivalent (40 trees per tCO2e).`,
		Example: `  ecotracks regions
  ecotracks regions --sort total --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records := inventory.Regions()
			switch sortBy {
			case sortInput:
			case sortTotal:
				records = inventory.SortedByTotal(records)
			default:
				return fmt.Errorf("%w: %q (use input or total)", ErrUnsupportedSort, sortBy)
			}

			details := inventory.Details(records)
			return writeStructured(cmd.OutOrStdout(), config.GetOutputFormat(output), details,
				func(w io.Writer) error { return renderRegionsTable(w, records, details) })
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", sortInput, "row order: input or total")
	cmd.Flags().StringVar(&output, "output", "", "output format: table, json or yaml")
	return cmd
}

func renderRegionsTable(w io.Writer, records []inventory.RegionRecord, details []inventory.RegionDetail) error {
	tw := newTabWriter(w)

	fmt.Fprintln(tw, "Region\tTotal\tScope 1\tScope 2\tScope 3\tTrees")
	fmt.Fprintln(tw, "------\t-----\t-------\t-------\t-------\t-----")
	for _, d := range details {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Code,
			greenops.FormatFloat(d.Total, 2),
			greenops.FormatFloat(d.Scope1, 2),
			greenops.FormatFloat(d.Scope2, 2),
			greenops.FormatFloat(d.Scope3, 2),
			greenops.FormatNumber(d.TreeEquivalent),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if top, ok := inventory.TopContributor(records); ok {
		fmt.Fprintf(w, "\nTop contributor: %s (%s)\n", top.Code, greenops.FormatTonnes(top.Total))
	}
	fmt.Fprintf(w, "Total footprint: %s\n", greenops.FormatTonnes(inventory.TotalFootprint))
	return nil
}
