// Package utils provides filesystem location helpers for claunch
package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigPathEnv overrides the full path of the configuration file
	ConfigPathEnv = "CLAUNCH_CONFIG"
	// ClaudeProjectsEnv overrides the Claude projects directory used for
	// project auto-discovery
	ClaudeProjectsEnv = "CLAUNCH_CLAUDE_PROJECTS"
	// configDirName is the per-user configuration directory name
	configDirName = "claunch"
	// configFileName is the configuration file name
	configFileName = "config.yaml"
)

// GetHome returns the user's home directory
func GetHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine home directory: %w", err)
	}
	return home, nil
}

// GetConfigPath returns the path of the claunch configuration file.
// This is $CLAUNCH_CONFIG when set, otherwise
// $XDG_CONFIG_HOME/claunch/config.yaml, defaulting to
// ~/.config/claunch/config.yaml.
func GetConfigPath() (string, error) {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := GetHome()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, configDirName, configFileName), nil
}

// GetClaudeProjectsDir returns the directory scanned for Claude project
// entries during auto-discovery, typically ~/.claude/projects.
func GetClaudeProjectsDir() (string, error) {
	if dir := os.Getenv(ClaudeProjectsEnv); dir != "" {
		return dir, nil
	}

	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude", "projects"), nil
}

// ExpandHome expands a leading "~/" in a path to the user's home directory.
// Paths without the prefix are returned unchanged.
func ExpandHome(path string) string {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := GetHome()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
