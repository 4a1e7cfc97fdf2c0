package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
	"github.com/ecotracks/ecotracks/internal/inventory"
)

// NewFactorsCmd creates the command that lists emission factors.
func NewFactorsCmd() *cobra.Command {
	var (
		filter string
		output string
	)

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List emission factors",
		Long: `Lists the emission factor reference table. --filter keeps factors whose
name contains the text, ignoring case and accents.`,
		Example: `  ecotracks factors --filter diesel
  ecotracks factors --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factors := inventory.FilterFactors(inventory.Factors(), filter)
			return writeStructured(cmd.OutOrStdout(), config.GetOutputFormat(output), factors,
				func(w io.Writer) error { return renderFactorsTable(w, factors, filter) })
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "factor name filter")
	cmd.Flags().StringVar(&output, "output", "", "output format: table, json or yaml")
	return cmd
}

func renderFactorsTable(w io.Writer, factors []inventory.EmissionFactor, filter string) error {
	if len(factors) == 0 {
		_, err := fmt.Fprintf(w, "No factors match %q.\n", filter)
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tType\tName\tFactor\tUnit\tSource")
	fmt.Fprintln(tw, "--\t----\t----\t------\t----\t------")
	for _, f := range factors {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.Category, f.Name, strconv.FormatFloat(f.Factor, 'f', -1, 64), f.Unit, f.Source)
	}
	return tw.Flush()
}
