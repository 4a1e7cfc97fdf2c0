// Package config loads ecotracks settings from YAML files and the environment.
//
// Settings are read from $ECOTRACKS_HOME/config.yaml (default ~/.ecotracks),
// optionally overlaid by a project-local .ecotracks/config.yaml, then by
// environment variables. A missing file is never an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/ecotracks/ecotracks/internal/logging"
)

// SchemaVersion is the config schema written by `ecotracks config init`.
const SchemaVersion = "1.0.4"

// supportedSchema is the range of config schema versions this build reads.
const supportedSchema = ">= 1.0.0, < 2.0.0"

// Diagram modes.
const (
	DiagramModeAuto      = "auto"
	DiagramModeGraphical = "graphical"
	DiagramModeText      = "text"
)

// Output formats for non-interactive commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Environment overrides.
const (
	EnvHome        = "ECOTRACKS_HOME"
	EnvProjectDir  = "ECOTRACKS_PROJECT_DIR"
	EnvLogLevel    = "ECOTRACKS_LOG_LEVEL"
	EnvDiagramMode = "ECOTRACKS_DIAGRAM_MODE"
)

const outputTypeFile = "file"

// Validation errors.
var (
	ErrUnsupportedSchema   = errors.New("unsupported config schema version")
	ErrInvalidDiagramMode  = errors.New("diagram_mode must be 'auto', 'graphical' or 'text'")
	ErrInvalidOutputFormat = errors.New("default_format must be 'table', 'json' or 'yaml'")
)

// Config is the full ecotracks configuration.
type Config struct {
	Version   string          `yaml:"version"   json:"version"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
	Output    OutputConfig    `yaml:"output"    json:"output"`
	Logging   LoggingConfig   `yaml:"logging"   json:"logging"`

	// path is the file the config was read from, if any.
	path string
}

// DashboardConfig holds settings for the interactive dashboard.
type DashboardConfig struct {
	// DefaultPage is the page shown at startup (label or id).
	DefaultPage string `yaml:"default_page" json:"default_page"`
	// LogoPath is an optional PNG drawn in the sidebar.
	LogoPath string `yaml:"logo_path"    json:"logo_path"`
	// ReportDir is where the placeholder report is written.
	ReportDir string `yaml:"report_dir"   json:"report_dir"`
	// DiagramMode selects the decision-tree renderer: auto, graphical or text.
	DiagramMode string `yaml:"diagram_mode" json:"diagram_mode"`
}

// OutputConfig holds defaults for non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Dashboard: DashboardConfig{
			DefaultPage: "control-panel",
			LogoPath:    "logo.png",
			ReportDir:   ".",
			DiagramMode: DiagramModeAuto,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// New returns the defaults overlaid with the user config file (if present)
// and environment overrides. Unreadable or invalid files are ignored.
func New() *Config {
	cfg := Default()
	if path, err := ConfigFilePath(); err == nil {
		if loaded, loadErr := Load(path); loadErr == nil {
			cfg = loaded
		} else if !errors.Is(loadErr, os.ErrNotExist) {
			l := GetLogger()
			l.Warn().Err(loadErr).Str("path", path).Msg("ignoring unreadable config file")
		}
	}
	cfg.ApplyEnv()
	return cfg
}

// Load reads path on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.path = path

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file this config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
	if mode := os.Getenv(EnvDiagramMode); mode != "" {
		c.Dashboard.DiagramMode = strings.ToLower(mode)
	}
}

// Validate checks the schema version and enumerated fields.
func (c *Config) Validate() error {
	if c.Version != "" {
		v, err := semver.NewVersion(c.Version)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnsupportedSchema, c.Version)
		}
		constraint, err := semver.NewConstraint(supportedSchema)
		if err != nil {
			return err
		}
		if !constraint.Check(v) {
			return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedSchema, c.Version, supportedSchema)
		}
	}

	switch c.Dashboard.DiagramMode {
	case "", DiagramModeAuto, DiagramModeGraphical, DiagramModeText:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidDiagramMode, c.Dashboard.DiagramMode)
	}

	switch c.Output.DefaultFormat {
	case "", FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = ensureParent(path); err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	c.path = path
	return nil
}

// GetOutputFormat returns flagValue when set, otherwise the configured default.
func GetOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if f := GetGlobalConfig().Output.DefaultFormat; f != "" {
		return f
	}
	return FormatTable
}
