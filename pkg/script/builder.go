// Package script constructs the ephemeral launcher script.
//
// The launcher script is the only artifact that crosses from this process to
// the terminal session: a short bash script that changes to the working
// directory, runs the tool with the escaped prompt, and removes itself on
// exit. The parent process is long gone by the time the interactive session
// ends, so the script owns its own teardown through an EXIT trap.
package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/alban/claunch/pkg/common"
)

// Builder renders the tool command and writes launcher scripts.
type Builder struct {
	// template is the tool invocation template; the Prompt variable expands
	// to the already shell-quoted prompt
	template string

	logger *common.Logger
}

// NewBuilder creates a Builder using the given command template (see
// config.DefaultCommandTemplate).
func NewBuilder(template string) *Builder {
	return &Builder{
		template: template,
		logger:   common.GetLogger(),
	}
}

// Command renders the tool invocation for a prompt.
//
// The prompt is shell-quoted BEFORE template substitution, so the rendered
// command always treats it as a single literal argument regardless of
// embedded whitespace, quotes or metacharacters.
func (b *Builder) Command(prompt string) (string, error) {
	cmd, err := common.ProcessTemplate(b.template, map[string]interface{}{
		"Prompt": shellquote.Join(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render command template: %w", err)
	}

	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return "", fmt.Errorf("command template rendered to an empty command")
	}
	return cmd, nil
}

// WriteScript writes a single-use launcher script and returns its path.
//
// The script file has a randomized name in the temp directory and 0700
// permissions. Its EXIT trap deletes the file however the tool terminates:
// normal exit, signal or error. The tool is deliberately not exec'd, since
// replacing the shell would defeat the trap.
//
// Parameters:
//   - command: The rendered tool invocation
//   - dir: The working directory to change to, or empty for none
func (b *Builder) WriteScript(command, dir string) (string, error) {
	f, err := os.CreateTemp("", "claunch-*.sh")
	if err != nil {
		return "", fmt.Errorf("failed to create launcher script: %w", err)
	}
	path := f.Name()

	var sb strings.Builder
	sb.WriteString("#!/bin/bash\n")
	sb.WriteString(fmt.Sprintf("trap 'rm -f -- %s' EXIT\n", shellquote.Join(path)))
	if dir != "" {
		sb.WriteString(fmt.Sprintf("cd %s\n", shellquote.Join(dir)))
	}
	sb.WriteString(command + "\n")

	if _, err := f.WriteString(sb.String()); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write launcher script: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close launcher script: %w", err)
	}

	if err := os.Chmod(path, 0700); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to make launcher script executable: %w", err)
	}

	b.logger.Info("Launcher script written to %s", path)
	return path, nil
}
