package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotracks/ecotracks/internal/cli"
	"github.com/ecotracks/ecotracks/internal/config"
)

func TestConfigInit_User(t *testing.T) {
	home := setupCLITest(t)

	out := mustExecute(t, "config", "init")

	path := filepath.Join(home, "config.yaml")
	assert.Contains(t, out, "Configuration initialized at "+path)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Dashboard, cfg.Dashboard)
}

func TestConfigInit_ExistingRequiresForce(t *testing.T) {
	setupCLITest(t)

	mustExecute(t, "config", "init")
	_, err := executeCmd(t, "config", "init")
	require.ErrorIs(t, err, cli.ErrConfigExists)

	mustExecute(t, "config", "init", "--force")
}

func TestConfigInit_Project(t *testing.T) {
	setupCLITest(t)
	t.Chdir(t.TempDir())

	mustExecute(t, "config", "init", "--project")

	wd, err := os.Getwd()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(wd, ".ecotracks", "config.yaml"))
	require.NoError(t, err)
}

func TestConfigShow_JSON(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvDiagramMode, "TEXT")

	out := mustExecute(t, "config", "show", "--output", "json")

	var got config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.DiagramModeText, got.Dashboard.DiagramMode)
	assert.Equal(t, config.SchemaVersion, got.Version)
}

func TestConfigShow_YAMLDefault(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "config", "show")
	assert.Contains(t, out, "default_page: control-panel")
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out := mustExecute(t, "config", "validate", "--verbose")
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Source: (defaults)")

	bad := "version: 1.0.4\ndashboard:\n  default_page: settings\n"
	path := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))

	_, err := executeCmd(t, "--config", path, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_page")
}

func TestExplicitConfig_InvalidFails(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 3.0.0\n"), 0o600))

	_, err := executeCmd(t, "--config", path, "regions")
	require.ErrorIs(t, err, config.ErrUnsupportedSchema)
}

func TestVersion(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "version")
	assert.Contains(t, out, "ecotracks ")
	assert.Contains(t, out, "commit")
}

func TestConfigInit_CreatesMissingHome(t *testing.T) {
	setupCLITest(t)
	home := filepath.Join(t.TempDir(), "nested", "home")
	t.Setenv(config.EnvHome, home)

	mustExecute(t, "config", "init")

	assert.FileExists(t, filepath.Join(home, "config.yaml"))
}
