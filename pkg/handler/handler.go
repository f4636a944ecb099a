// Package handler wires the launch pipeline together.
//
// One URL event produces exactly one sequential run: parse and validate,
// resolve the project, check constraints, ask the user, build the launcher
// script, dispatch it to a terminal. The process exits right after dispatch;
// the spawned terminal session outlives it.
package handler

import (
	"context"
	"fmt"
	"os"

	"github.com/alban/claunch/pkg/common"
	"github.com/alban/claunch/pkg/config"
	"github.com/alban/claunch/pkg/gate"
	"github.com/alban/claunch/pkg/project"
	"github.com/alban/claunch/pkg/request"
	"github.com/alban/claunch/pkg/script"
	"github.com/alban/claunch/pkg/terminal"
)

// Dispatcher is the subset of the terminal dispatcher the handler needs.
// It is an interface so tests can observe dispatches without spawning
// anything.
type Dispatcher interface {
	Dispatch(ctx context.Context, scriptPath string) error
}

// Handler runs the URL-to-terminal pipeline.
type Handler struct {
	cfg         *config.Config
	constraints *common.LaunchConstraints
	resolver    *project.Resolver
	gate        gate.Gate
	builder     *script.Builder
	dispatcher  Dispatcher
	logger      *common.Logger

	// dryRun prints the resolved command instead of creating the script and
	// dispatching it
	dryRun bool
}

// Options configures a Handler.
type Options struct {
	// Config is the loaded configuration (required)
	Config *config.Config

	// DryRun skips script creation and terminal dispatch
	DryRun bool

	// Gate overrides the confirmation gate (defaults to gate.New())
	Gate gate.Gate

	// Picker overrides the project selection prompt (defaults to
	// project.NewPicker())
	Picker project.Picker

	// Dispatcher overrides the terminal dispatcher (defaults to the chain
	// derived from the configuration)
	Dispatcher Dispatcher
}

// New creates a Handler, compiling the configured launch constraints.
//
// Returns:
//   - A new Handler
//   - A LaunchError with the ConfigIO exit code if constraint compilation
//     fails
func New(opts Options) (*Handler, error) {
	logger := common.GetLogger()

	constraints, err := common.NewLaunchConstraints(opts.Config.Constraints, logger)
	if err != nil {
		return nil, common.NewLaunchError(common.ExitConfigIO, "invalid constraints in configuration: %v", err)
	}

	g := opts.Gate
	if g == nil {
		g = gate.New()
	}
	picker := opts.Picker
	if picker == nil {
		picker = project.NewPicker()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = terminal.NewDispatcherForConfig(opts.Config)
	}

	return &Handler{
		cfg:         opts.Config,
		constraints: constraints,
		resolver:    project.NewResolver(opts.Config, picker),
		gate:        g,
		builder:     script.NewBuilder(opts.Config.CommandTemplate()),
		dispatcher:  dispatcher,
		logger:      logger,
		dryRun:      opts.DryRun,
	}, nil
}

// Handle runs the pipeline for one raw URL.
//
// Returns:
//   - nil on success AND on user cancellation (common.ErrCancelled is
//     returned for the latter so callers can log it, but it maps to exit 0)
//   - A LaunchError carrying the taxonomy exit code on any failure
func (h *Handler) Handle(ctx context.Context, rawURL string) error {
	req, err := request.Parse(rawURL)
	if err != nil {
		return err
	}

	dir := req.Dir
	if req.Project != "" {
		dir, err = h.resolver.Resolve(req.Project)
		if err != nil {
			return err
		}
	}

	ok, failed, err := h.constraints.Evaluate(req.Prompt, dir, req.Project)
	if err != nil {
		return common.NewLaunchError(common.ExitLaunchBlocked, "constraint evaluation failed: %v", err)
	}
	if !ok {
		return common.NewLaunchError(common.ExitLaunchBlocked, "launch blocked by constraint: %s", failed)
	}

	decision := gate.Decision{Prompt: req.Prompt, Dir: dir}
	proceed, err := h.gate.Confirm(decision)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !proceed {
		h.logger.Info("Launch cancelled by user")
		return common.ErrCancelled
	}

	command, err := h.builder.Command(req.Prompt)
	if err != nil {
		return err
	}

	if h.dryRun {
		fmt.Printf("command: %s\n", command)
		if dir != "" {
			fmt.Printf("directory: %s\n", dir)
		}
		h.logger.Info("Dry-run: skipping script creation and dispatch")
		return nil
	}

	scriptPath, err := h.builder.WriteScript(command, dir)
	if err != nil {
		return err
	}

	if err := h.dispatcher.Dispatch(ctx, scriptPath); err != nil {
		// The script only deletes itself when it runs; without a terminal
		// it must not linger in the temp directory.
		_ = os.Remove(scriptPath)
		return err
	}

	return nil
}
