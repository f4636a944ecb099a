package gate

import (
	"os/exec"

	"github.com/alban/claunch/pkg/common"
)

// DialogGate shows a macOS modal dialog via osascript.
//
// The message text is handed to the script as an argument, never spliced
// into the AppleScript source: whatever the prompt contains, the dialog
// layer cannot interpret it as script syntax. Cancel is both the default
// and the cancel button, so Return, Escape and closing the dialog all
// decline the launch.
type DialogGate struct{}

const dialogScript = `on run argv
  display dialog (item 1 of argv) with title "Claunch" buttons {"Cancel", "Launch"} default button "Cancel" cancel button "Cancel"
  return "launch"
end run`

// Confirm implements the Gate interface
func (g *DialogGate) Confirm(d Decision) (bool, error) {
	logger := common.GetLogger()

	cmd := exec.Command("osascript", "-e", dialogScript, "--", d.DisplayText())
	if err := cmd.Run(); err != nil {
		// osascript exits non-zero when the dialog is cancelled or
		// dismissed (AppleScript error -128)
		logger.Info("Confirmation dialog declined: %v", err)
		return false, nil
	}

	logger.Info("Launch confirmed via dialog")
	return true, nil
}
