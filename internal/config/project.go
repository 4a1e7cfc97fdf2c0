package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/ecotracks/ecotracks/internal/logging"
)

const projectDirName = ".ecotracks"

// errNoProject is returned by findProject when no .ecotracks directory exists
// in startDir or any of its parents.
var errNoProject = errors.New("no .ecotracks directory found")

// ResolveProjectDir determines the project-local .ecotracks directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. ECOTRACKS_PROJECT_DIR env var
//  3. walking up from startDir looking for an existing .ecotracks directory
//
// Returns an absolute path, or "" if no project was found. Never creates
// directories.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	root, err := findProject(startDir)
	if err != nil {
		if !errors.Is(err, errNoProject) {
			logging.FromContext(ctx).Warn().
				Str("component", "config").
				Err(err).
				Str("start_dir", startDir).
				Msg("unexpected error during project discovery")
		}
		return ""
	}
	return toAbsProjectDir(ctx, root)
}

// NewWithProjectDir creates a Config by loading the user config then
// shallow-merging the project-local config on top. If projectDir is empty,
// behaves identically to New().
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()
	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, "config.yaml")
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	merged := New()
	if err := ShallowMergeYAML(merged, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using user defaults")
		return cfg
	}
	merged.ApplyEnv()
	return merged
}

// findProject walks up from startDir and returns the first directory that
// contains a .ecotracks directory.
func findProject(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		info, statErr := os.Stat(filepath.Join(dir, projectDirName))
		if statErr == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoProject
		}
		dir = parent
	}
}

// toAbsProjectDir converts dir to an absolute path and appends ".ecotracks"
// unless it already ends with it.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}
	return filepath.Join(abs, projectDirName)
}
