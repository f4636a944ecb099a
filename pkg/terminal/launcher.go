// Package terminal dispatches the launcher script to a terminal program.
//
// Each supported terminal is a Launcher; the Dispatcher walks a fixed
// priority chain, treating every step as best-effort, and reports
// exhaustion as a NoTerminalAvailable failure.
package terminal

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/alban/claunch/pkg/common"
)

// Launcher opens the launcher script in one specific terminal program.
type Launcher interface {
	// Name identifies the launcher in logs and diagnostics
	Name() string

	// Available reports whether this terminal can be attempted at all
	Available() bool

	// Launch opens a terminal window running the script. A non-nil error
	// makes the dispatcher fall through to the next launcher.
	Launch(ctx context.Context, scriptPath string) error
}

// GhosttyBundlePath is where the Ghostty application bundle is installed
const GhosttyBundlePath = "/Applications/Ghostty.app"

// ITermBundlePath is where the iTerm2 application bundle is installed
const ITermBundlePath = "/Applications/iTerm.app"

// GhosttyCLI launches Ghostty through its command-line interface.
type GhosttyCLI struct{}

func (g *GhosttyCLI) Name() string { return "ghostty-cli" }

func (g *GhosttyCLI) Available() bool {
	return common.CheckExecutableExists("ghostty")
}

func (g *GhosttyCLI) Launch(ctx context.Context, scriptPath string) error {
	cmd := exec.CommandContext(ctx, "ghostty",
		"+new-window",
		"--command="+scriptPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ghostty CLI failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// GhosttyApp launches the Ghostty application bundle via the OS open
// mechanism, for installs where the CLI is not on the search path.
type GhosttyApp struct{}

func (g *GhosttyApp) Name() string { return "ghostty-app" }

func (g *GhosttyApp) Available() bool {
	return common.CheckAppBundleExists(GhosttyBundlePath)
}

func (g *GhosttyApp) Launch(ctx context.Context, scriptPath string) error {
	cmd := exec.CommandContext(ctx, "open", "-na", "Ghostty.app",
		"--args",
		"--command="+scriptPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("open Ghostty.app failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ITerm launches iTerm2 through its AppleScript interface.
type ITerm struct{}

func (i *ITerm) Name() string { return "iterm" }

func (i *ITerm) Available() bool {
	return common.CheckAppBundleExists(ITermBundlePath) && common.CheckExecutableExists("osascript")
}

func (i *ITerm) Launch(ctx context.Context, scriptPath string) error {
	stmt := fmt.Sprintf("tell application \"iTerm2\" to create window with default profile command %s",
		appleScriptString(shellquote.Join(scriptPath)))
	cmd := exec.CommandContext(ctx, "osascript", "-e", stmt)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("iTerm launch failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// TerminalApp launches the stock Terminal.app, the universally available
// fallback on macOS.
type TerminalApp struct{}

func (t *TerminalApp) Name() string { return "terminal-app" }

func (t *TerminalApp) Available() bool {
	return common.CheckExecutableExists("osascript")
}

func (t *TerminalApp) Launch(ctx context.Context, scriptPath string) error {
	stmt := fmt.Sprintf("tell application \"Terminal\" to do script %s",
		appleScriptString(shellquote.Join(scriptPath)))
	cmd := exec.CommandContext(ctx, "osascript", "-e", stmt)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("Terminal.app launch failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// appleScriptString renders s as an AppleScript string literal, escaping
// backslashes and double quotes.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
