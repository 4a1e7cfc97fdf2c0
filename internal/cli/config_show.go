package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
)

// NewConfigShowCmd creates the command that prints the active configuration.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		Example: `  ecotracks config show
  ecotracks config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			format := output
			if format == "" || format == config.FormatTable {
				format = config.FormatYAML
			}
			return writeStructured(cmd.OutOrStdout(), format, cfg, func(io.Writer) error { return nil })
		},
	}

	cmd.Flags().StringVar(&output, "output", config.FormatYAML, "output format: yaml or json")
	return cmd
}
