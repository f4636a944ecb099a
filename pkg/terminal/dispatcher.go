package terminal

import (
	"context"

	"github.com/alban/claunch/pkg/common"
	"github.com/alban/claunch/pkg/config"
)

// Dispatcher tries a chain of launchers in priority order.
type Dispatcher struct {
	launchers []Launcher
	logger    *common.Logger
}

// NewDispatcher creates a Dispatcher over an explicit launcher chain.
func NewDispatcher(launchers []Launcher) *Dispatcher {
	return &Dispatcher{
		launchers: launchers,
		logger:    common.GetLogger(),
	}
}

// NewDispatcherForConfig builds the launcher chain from the configured
// terminal preference. A preference pins the chain to that terminal, so its
// unavailability is a hard failure instead of silently falling back; no
// preference yields the default chain ghostty CLI, Ghostty.app, iTerm,
// Terminal.app.
func NewDispatcherForConfig(cfg *config.Config) *Dispatcher {
	var chain []Launcher
	switch cfg.Terminal {
	case config.TerminalGhostty:
		chain = []Launcher{&GhosttyCLI{}, &GhosttyApp{}}
	case config.TerminalITerm:
		chain = []Launcher{&ITerm{}}
	case config.TerminalDefault:
		chain = []Launcher{&TerminalApp{}}
	default:
		chain = []Launcher{&GhosttyCLI{}, &GhosttyApp{}, &ITerm{}, &TerminalApp{}}
	}
	return NewDispatcher(chain)
}

// Dispatch runs the launcher script in the first terminal that accepts it.
//
// Unavailable launchers are skipped and launch failures fall through to the
// next step. Exhausting the chain returns a LaunchError with the
// NoTerminalAvailable exit code; no partial side effects are left running in
// that case.
func (d *Dispatcher) Dispatch(ctx context.Context, scriptPath string) error {
	for _, l := range d.launchers {
		if !l.Available() {
			d.logger.Debug("Terminal %s not available, skipping", l.Name())
			continue
		}

		d.logger.Info("Launching script via %s", l.Name())
		if err := l.Launch(ctx, scriptPath); err != nil {
			d.logger.Error("Terminal %s failed: %v", l.Name(), err)
			continue
		}

		d.logger.Info("Terminal %s accepted the launch", l.Name())
		return nil
	}

	return common.NewLaunchError(common.ExitNoTerminalAvailable, "no terminal available to run the launcher script")
}
