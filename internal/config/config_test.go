package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ecotracks/ecotracks/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, config.SchemaVersion, cfg.Version)
	assert.Equal(t, "control-panel", cfg.Dashboard.DefaultPage)
	assert.Equal(t, "logo.png", cfg.Dashboard.LogoPath)
	assert.Equal(t, config.DiagramModeAuto, cfg.Dashboard.DiagramMode)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "empty version allowed", mutate: func(c *config.Config) { c.Version = "" }},
		{name: "older minor", mutate: func(c *config.Config) { c.Version = "1.0.0" }},
		{
			name:    "next major rejected",
			mutate:  func(c *config.Config) { c.Version = "2.1.0" },
			wantErr: config.ErrUnsupportedSchema,
		},
		{
			name:    "garbage version",
			mutate:  func(c *config.Config) { c.Version = "v-one" },
			wantErr: config.ErrUnsupportedSchema,
		},
		{
			name:    "bad diagram mode",
			mutate:  func(c *config.Config) { c.Dashboard.DiagramMode = "svg" },
			wantErr: config.ErrInvalidDiagramMode,
		},
		{
			name:    "bad output format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantErr: config.ErrInvalidOutputFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: 1.0.4
dashboard:
  default_page: iso-reports
  diagram_mode: text
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "iso-reports", cfg.Dashboard.DefaultPage)
	assert.Equal(t, config.DiagramModeText, cfg.Dashboard.DiagramMode)
	assert.Equal(t, "logo.png", cfg.Dashboard.LogoPath, "unset fields keep defaults")
	assert.Equal(t, path, cfg.Path())
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  diagram_mode: png\n"), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidDiagramMode)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Dashboard.ReportDir = "/tmp/reports"

	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", loaded.Dashboard.ReportDir)
}

func TestNew_ReadsHomeAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvDiagramMode, "")
	t.Setenv(config.EnvLogLevel, "debug")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("dashboard:\n  report_dir: /srv/out\n"), 0o600))

	cfg := config.New()

	assert.Equal(t, "/srv/out", cfg.Dashboard.ReportDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNew_EnvDiagramMode(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvDiagramMode, "TEXT")

	cfg := config.New()
	assert.Equal(t, config.DiagramModeText, cfg.Dashboard.DiagramMode)
}

func TestNew_InvalidFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvDiagramMode, "")
	t.Setenv(config.EnvLogLevel, "")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("version: 9.0.0\n"), 0o600))

	var buf bytes.Buffer
	config.Logger = zerolog.New(&buf)
	t.Cleanup(func() { config.InitLogger("warn") })

	cfg := config.New()
	assert.Equal(t, config.Default().Dashboard, cfg.Dashboard)
	assert.Contains(t, buf.String(), "ignoring unreadable config file")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestGetOutputFormat(t *testing.T) {
	t.Cleanup(config.ResetGlobalConfigForTest)
	cfg := config.Default()
	cfg.Output.DefaultFormat = config.FormatYAML
	config.SetGlobalConfig(cfg)

	assert.Equal(t, config.FormatJSON, config.GetOutputFormat(config.FormatJSON))
	assert.Equal(t, config.FormatYAML, config.GetOutputFormat(""))
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)

	lc.File = "/tmp/ecotracks.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/ecotracks.log", got.File)
	assert.Equal(t, "debug", got.Level)
}
