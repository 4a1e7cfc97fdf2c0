// Package cli implements the ecotracks command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecotracks/ecotracks/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command. Run without a subcommand it opens the
// interactive dashboard.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *LogSetup
		configPath string
		projectDir string
	)

	cmd := &cobra.Command{
		Use:           "ecotracks",
		Short:         "Carbon emissions dashboard",
		Long:          "Ecotracks: regional emissions, emission factors, scope decision tree and ISO 14064 scope reports",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, configPath, projectDir); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, "")
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $ECOTRACKS_HOME/config.yaml)")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "project directory holding a .ecotracks overlay")

	cmd.AddCommand(
		NewDashboardCmd(), NewViewCmd(), NewRegionsCmd(), NewFactorsCmd(),
		NewDiagramCmd(), newReportCmd(), NewTreesCmd(), newConfigCmd(), NewVersionCmd(ver),
	)
	return cmd
}

const rootCmdExample = `  # Open the interactive dashboard
  ecotracks

  # Open it on the factor manager
  ecotracks dashboard --page factor-manager

  # Print the ISO reports page once, without colour
  ecotracks view iso-reports --tab 2 --plain

  # Regions as JSON, largest emitter first
  ecotracks regions --sort total --output json

  # Export the decision tree for Graphviz
  ecotracks diagram --format dot | dot -Tpng > tree.png

  # Trees needed to offset 2,500 kg of CO2e
  ecotracks trees 2500 kg`

// loadConfig resolves the configuration for this invocation and installs it
// as the global config. An explicit --config file must load; otherwise the
// user config plus any project overlay is used.
func loadConfig(cmd *cobra.Command, configPath, projectFlag string) error {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.ApplyEnv()
		config.SetGlobalConfig(cfg)
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	dir := config.ResolveProjectDir(cmd.Context(), projectFlag, wd)
	config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), dir))
	return nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
