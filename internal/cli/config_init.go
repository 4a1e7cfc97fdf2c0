package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
)

// ErrConfigExists is returned by config init when the file exists and
// --force was not given.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
// With --project it writes a project-local .ecotracks/config.yaml in the
// current directory; otherwise it writes $ECOTRACKS_HOME/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

By default the user configuration at $ECOTRACKS_HOME/config.yaml
(~/.ecotracks/config.yaml) is created. Use --project to create
.ecotracks/config.yaml in the current directory instead; its settings
override the user configuration when ecotracks runs below that directory.`,
		Example: `  # Create user configuration
  ecotracks config init

  # Create project-local configuration
  ecotracks config init --project

  # Create configuration, overwriting existing
  ecotracks config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configInitPath(project)
			if err != nil {
				return err
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "create .ecotracks/config.yaml in the current directory")

	return cmd
}

func configInitPath(project bool) (string, error) {
	if !project {
		if err := config.EnsureConfigDir(); err != nil {
			return "", fmt.Errorf("creating config directory: %w", err)
		}
		return config.ConfigFilePath()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Join(wd, ".ecotracks", "config.yaml"), nil
}

// initConfig writes the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return ErrConfigExists
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}
