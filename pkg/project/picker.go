package project

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/alban/claunch/pkg/common"
)

// pickerTimeout bounds how long the dialog picker waits for a choice; an
// expired dialog counts as a cancellation.
const pickerTimeout = 120 * time.Second

// Picker presents a blocking choice between candidate directories for an
// ambiguous project name.
type Picker interface {
	// Pick returns the selected directory, or common.ErrCancelled when the
	// user dismisses the prompt without choosing.
	Pick(project string, candidates []string) (string, error)
}

// NewPicker returns the best available Picker: a native dialog when
// osascript is present, an interactive terminal prompt otherwise.
func NewPicker() Picker {
	if common.CheckExecutableExists("osascript") {
		return &DialogPicker{}
	}
	return &TTYPicker{}
}

// DialogPicker shows a macOS choose-from-list dialog via osascript.
//
// The project name and the candidate paths are passed to the script as
// arguments, never spliced into the AppleScript source, so their content
// cannot be interpreted as script syntax.
type DialogPicker struct{}

const pickerScript = `on run argv
  set projName to item 1 of argv
  set pathList to {}
  repeat with i from 2 to count of argv
    set end of pathList to (item i of argv as text)
  end repeat
  set chosen to choose from list pathList with title "Claunch" with prompt ("Select directory for project \"" & projName & "\":") default items {item 1 of pathList}
  if chosen is false then return ""
  return item 1 of chosen
end run`

// Pick implements the Picker interface
func (p *DialogPicker) Pick(project string, candidates []string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), pickerTimeout)
	defer cancel()

	args := append([]string{"-e", pickerScript, "--", project}, candidates...)
	out, err := exec.CommandContext(ctx, "osascript", args...).Output()
	if err != nil {
		common.GetLogger().Info("Project picker dismissed or failed: %v", err)
		return "", common.ErrCancelled
	}

	chosen := strings.TrimSpace(string(out))
	if chosen == "" {
		return "", common.ErrCancelled
	}
	return chosen, nil
}

// TTYPicker prompts for a selection on the controlling terminal
type TTYPicker struct{}

// Pick implements the Picker interface
func (p *TTYPicker) Pick(project string, candidates []string) (string, error) {
	var chosen string
	prompt := &survey.Select{
		Message: "Select directory for project \"" + project + "\":",
		Options: candidates,
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		if err == terminal.InterruptErr {
			return "", common.ErrCancelled
		}
		return "", err
	}
	return chosen, nil
}
