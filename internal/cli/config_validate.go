package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
	"github.com/ecotracks/ecotracks/internal/dashboard"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the active configuration: schema version, diagram mode,
output format and the default dashboard page.`,
		Example: `  # Validate current configuration
  ecotracks config validate

  # Validate and show detailed information
  ecotracks config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if cfg.Dashboard.DefaultPage != "" {
		if _, err := dashboard.ParsePage(cfg.Dashboard.DefaultPage); err != nil {
			return fmt.Errorf("configuration validation failed: dashboard.default_page: %w", err)
		}
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd.OutOrStdout(), cfg)
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(w io.Writer, cfg *config.Config) {
	source := cfg.Path()
	if source == "" {
		source = "(defaults)"
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration details:")
	fmt.Fprintf(w, "  Source: %s\n", source)
	fmt.Fprintf(w, "  Schema version: %s\n", cfg.Version)
	fmt.Fprintf(w, "  Default page: %s\n", cfg.Dashboard.DefaultPage)
	fmt.Fprintf(w, "  Logo: %s\n", cfg.Dashboard.LogoPath)
	fmt.Fprintf(w, "  Report directory: %s\n", cfg.Dashboard.ReportDir)
	fmt.Fprintf(w, "  Diagram mode: %s\n", cfg.Dashboard.DiagramMode)
	fmt.Fprintf(w, "  Output format: %s\n", cfg.Output.DefaultFormat)
	fmt.Fprintf(w, "  Logging level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(w, "  Log file: %s\n", cfg.Logging.File)
}
