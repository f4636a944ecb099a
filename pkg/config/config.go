// Package config provides configuration loading and handling functionality.
//
// The claunch configuration is a small YAML file holding the preferred
// terminal, the persisted project-name-to-directory mapping, the projects
// root used for auto-discovery, and optional launch constraints. The
// handler process is short-lived, so the file is read once at startup and
// rewritten at most once per run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio"
	"gopkg.in/yaml.v3"

	"github.com/alban/claunch/pkg/common"
)

// Terminal preference values accepted in the configuration file.
const (
	TerminalGhostty = "ghostty"
	TerminalITerm   = "iterm"
	TerminalDefault = "terminal"
)

// DefaultCommandTemplate is the tool invocation rendered when the
// configuration does not override it. The Prompt variable is substituted
// with the already shell-quoted prompt.
const DefaultCommandTemplate = "claude {{ .Prompt }}"

// validTerminals is the set of accepted terminal preference values
var validTerminals = map[string]bool{
	TerminalGhostty: true,
	TerminalITerm:   true,
	TerminalDefault: true,
}

// Config represents the claunch configuration file.
type Config struct {
	// Terminal is the preferred terminal program: "ghostty", "iterm" or
	// "terminal". Empty means use the default fallback chain.
	Terminal string `yaml:"terminal,omitempty"`

	// ProjectsRoot is the directory whose immediate subdirectories are
	// candidates for project auto-discovery. A leading "~/" is expanded.
	ProjectsRoot string `yaml:"projects_root,omitempty"`

	// Projects maps project names to absolute directories
	Projects map[string]string `yaml:"projects,omitempty"`

	// Command is a template for the tool invocation; see
	// DefaultCommandTemplate
	Command string `yaml:"command,omitempty"`

	// Constraints is a list of CEL expressions that must all evaluate to
	// true for a launch to proceed
	Constraints []string `yaml:"constraints,omitempty"`

	// path the config was loaded from, kept for Save
	path string
}

// Load reads the configuration file at the given path.
//
// A missing file is not an error: it yields an empty configuration, and a
// later Save will create the file. An unknown terminal preference is logged
// and ignored rather than failing the run, matching the tolerant handling of
// a hand-edited file.
//
// Returns:
//   - The loaded configuration
//   - A LaunchError with the ConfigIO exit code if the file exists but
//     cannot be read or parsed
func Load(path string) (*Config, error) {
	logger := common.GetLogger()

	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug("No configuration file at %s", path)
		return cfg, nil
	}
	if err != nil {
		return nil, common.NewLaunchError(common.ExitConfigIO, "failed to read config file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, common.NewLaunchError(common.ExitConfigIO, "failed to parse config file %s: %v", path, err)
	}
	cfg.path = path

	if cfg.Terminal != "" && !validTerminals[cfg.Terminal] {
		logger.Error("Unknown terminal %q in config, ignoring preference", cfg.Terminal)
		cfg.Terminal = ""
	}

	logger.Debug("Loaded configuration from %s (%d project mappings)", path, len(cfg.Projects))
	return cfg, nil
}

// Path returns the path the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// CommandTemplate returns the configured tool command template, falling back
// to DefaultCommandTemplate.
func (c *Config) CommandTemplate() string {
	if c.Command != "" {
		return c.Command
	}
	return DefaultCommandTemplate
}

// ProjectDir returns the mapped directory for a project name, if any
func (c *Config) ProjectDir(name string) (string, bool) {
	dir, ok := c.Projects[name]
	return dir, ok
}

// SetProjectMapping records a project-name-to-directory mapping in memory.
// Call Save to persist it.
func (c *Config) SetProjectMapping(name, dir string) {
	if c.Projects == nil {
		c.Projects = make(map[string]string)
	}
	c.Projects[name] = dir
}

// Save writes the configuration back to its file as an atomic whole-file
// replace, creating the configuration directory if needed. Atomic replace
// avoids a truncated file if a concurrent invocation were ever to race.
//
// Returns:
//   - A LaunchError with the ConfigIO exit code on failure
func Save(cfg *Config) error {
	if cfg.path == "" {
		return common.NewLaunchError(common.ExitConfigIO, "configuration has no file path")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return common.NewLaunchError(common.ExitConfigIO, "failed to encode config: %v", err)
	}

	dir := filepath.Dir(cfg.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return common.NewLaunchError(common.ExitConfigIO, "failed to create config directory %s: %v", dir, err)
	}

	if err := renameio.WriteFile(cfg.path, data, 0644); err != nil {
		return common.NewLaunchError(common.ExitConfigIO, "failed to write config file %s: %v", cfg.path, err)
	}

	common.GetLogger().Info("Configuration saved to %s", cfg.path)
	return nil
}

// String returns a short description of the configuration for diagnostics
func (c *Config) String() string {
	return fmt.Sprintf("Config{terminal: %q, projects: %d, constraints: %d}",
		c.Terminal, len(c.Projects), len(c.Constraints))
}
