package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotracks/ecotracks/internal/config"
)

func TestResolveProjectDir_FlagOverride(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	flagDir := t.TempDir()

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")

	assert.Equal(t, filepath.Join(flagDir, ".ecotracks"), got)
	assert.True(t, filepath.IsAbs(got), "returned path must be absolute")
}

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")

	assert.Equal(t, filepath.Join(flagDir, ".ecotracks"), got)
}

func TestResolveProjectDir_EnvVarOverride(t *testing.T) {
	envDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")

	assert.Equal(t, filepath.Join(envDir, ".ecotracks"), got)
}

func TestResolveProjectDir_AlreadySuffixed(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	dir := filepath.Join(t.TempDir(), ".ecotracks")

	got := config.ResolveProjectDir(context.Background(), dir, "")

	assert.Equal(t, dir, got, "must not double-append .ecotracks")
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".ecotracks"), 0o755))
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	got := config.ResolveProjectDir(context.Background(), "", sub)

	assert.Equal(t, filepath.Join(root, ".ecotracks"), got)
}

func TestNewWithProjectDir(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvDiagramMode, "")
	t.Setenv(config.EnvLogLevel, "")

	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
		[]byte("output:\n  default_format: yaml\n"), 0o600))

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, config.FormatYAML, cfg.Output.DefaultFormat)

	t.Run("empty project dir", func(t *testing.T) {
		cfg := config.NewWithProjectDir(context.Background(), "")
		assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	})

	t.Run("missing overlay", func(t *testing.T) {
		cfg := config.NewWithProjectDir(context.Background(), t.TempDir())
		assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	})

	t.Run("invalid overlay keeps user config", func(t *testing.T) {
		bad := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(bad, "config.yaml"),
			[]byte("output:\n  default_format: xml\n"), 0o600))
		cfg := config.NewWithProjectDir(context.Background(), bad)
		assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	})
}
