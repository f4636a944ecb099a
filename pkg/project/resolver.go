package project

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/alban/claunch/pkg/common"
	"github.com/alban/claunch/pkg/config"
	"github.com/alban/claunch/pkg/utils"
)

// Resolver resolves a project name to a working directory.
type Resolver struct {
	cfg               *config.Config
	picker            Picker
	claudeProjectsDir string
	logger            *common.Logger
}

// NewResolver creates a Resolver backed by the given configuration and
// picker. The Claude projects directory is taken from the environment or the
// user's home; discovery silently skips it when it does not exist.
func NewResolver(cfg *config.Config, picker Picker) *Resolver {
	claudeDir, err := utils.GetClaudeProjectsDir()
	if err != nil {
		claudeDir = ""
	}
	return &Resolver{
		cfg:               cfg,
		picker:            picker,
		claudeProjectsDir: claudeDir,
		logger:            common.GetLogger(),
	}
}

// Resolve returns the working directory for a project name.
//
// A persisted mapping wins and causes no rescan. Otherwise candidates are
// auto-discovered; a single candidate is selected silently, several trigger
// the picker. Either way the chosen directory is persisted so the next run
// hits the mapping. Name matching against candidate basenames is exact and
// case-sensitive.
//
// Returns:
//   - The resolved absolute directory
//   - common.ErrCancelled when the user dismisses the selection prompt
//   - A LaunchError (ProjectNotFound, InvalidDirectory, ConfigIO) otherwise
func (r *Resolver) Resolve(name string) (string, error) {
	if dir, ok := r.cfg.ProjectDir(name); ok {
		r.logger.Debug("Project %q mapped to %s", name, dir)
		if !isDir(dir) {
			return "", common.NewLaunchError(common.ExitInvalidDirectory,
				"directory for project %q does not exist: %s", name, dir)
		}
		return dir, nil
	}

	candidates := r.discover(name)
	r.logger.Info("Discovered %d candidate directories for project %q", len(candidates), name)

	switch len(candidates) {
	case 0:
		return "", common.NewLaunchError(common.ExitProjectNotFound, "unknown project: %q", name)
	case 1:
		return candidates[0], r.persist(name, candidates[0])
	}

	chosen, err := r.picker.Pick(name, candidates)
	if err != nil {
		return "", err
	}
	return chosen, r.persist(name, chosen)
}

// discover collects candidate directories whose basename equals the project
// name, merging the projects root scan with decoded Claude project entries.
func (r *Resolver) discover(name string) []string {
	var candidates []string

	if root := utils.ExpandHome(r.cfg.ProjectsRoot); root != "" {
		entries, err := os.ReadDir(root)
		if err != nil {
			r.logger.Debug("Projects root %s not readable: %v", root, err)
		}
		for _, entry := range entries {
			if entry.IsDir() && entry.Name() == name {
				candidates = append(candidates, filepath.Join(root, entry.Name()))
			}
		}
	}

	if r.claudeProjectsDir != "" {
		entries, err := os.ReadDir(r.claudeProjectsDir)
		if err != nil {
			r.logger.Debug("Claude projects directory %s not readable: %v", r.claudeProjectsDir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			for _, path := range DecodePaths(entry.Name()) {
				if filepath.Base(path) == name {
					candidates = append(candidates, path)
				}
			}
		}
	}

	sort.Strings(candidates)
	return dedupe(candidates)
}

// persist records the resolved mapping so future runs skip discovery
func (r *Resolver) persist(name, dir string) error {
	r.cfg.SetProjectMapping(name, dir)
	if err := config.Save(r.cfg); err != nil {
		return err
	}
	r.logger.Info("Persisted project mapping %q -> %s", name, dir)
	return nil
}
