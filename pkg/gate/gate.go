// Package gate implements the mandatory user-confirmation step.
//
// Nothing is ever executed without this gate returning Proceed: the decoded
// prompt and the resolved directory are shown to the user in a blocking
// modal interaction with Cancel as the pre-selected choice, and dismissing
// the prompt counts as Cancel.
package gate

import (
	"fmt"
	"unicode/utf8"

	"github.com/alban/claunch/pkg/common"
)

// DisplayLimit is the maximum number of prompt runes shown to the user.
// Longer prompts are truncated for display only; the untruncated text is
// still what gets executed.
const DisplayLimit = 500

// Decision describes what is about to run. It carries the exact text shown
// to the user so that tests and logs can assert on what was approved.
type Decision struct {
	// Prompt is the full, untruncated prompt text
	Prompt string

	// Dir is the resolved working directory, empty when none was requested
	Dir string
}

// DisplayPrompt returns the prompt as shown to the user, truncated at
// DisplayLimit runes with a trailing indicator.
func (d Decision) DisplayPrompt() string {
	if utf8.RuneCountInString(d.Prompt) <= DisplayLimit {
		return d.Prompt
	}
	runes := []rune(d.Prompt)
	return string(runes[:DisplayLimit]) + "... [truncated]"
}

// DisplayText returns the complete message presented by the gate.
func (d Decision) DisplayText() string {
	text := fmt.Sprintf("Launch claude with prompt:\n\n%s", d.DisplayPrompt())
	if d.Dir != "" {
		text += fmt.Sprintf("\n\nWorking directory: %s", d.Dir)
	}
	return text
}

// Gate asks the user to approve or cancel a launch.
type Gate interface {
	// Confirm blocks until the user decides. It returns true to proceed and
	// false on cancellation; an error means the gate itself failed, which
	// also must not lead to execution.
	Confirm(d Decision) (bool, error)
}

// New returns the best available Gate: a native dialog when osascript is
// present, an interactive terminal confirmation otherwise.
func New() Gate {
	if common.CheckExecutableExists("osascript") {
		return &DialogGate{}
	}
	return &TTYGate{}
}
