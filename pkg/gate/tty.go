package gate

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"

	"github.com/alban/claunch/pkg/common"
)

// TTYGate asks for confirmation on the controlling terminal. It is the
// fallback when no dialog mechanism is available, e.g. when the handler is
// invoked by hand for testing.
type TTYGate struct{}

// Confirm implements the Gate interface
func (g *TTYGate) Confirm(d Decision) (bool, error) {
	color.New(color.FgCyan, color.Bold).Println("claunch")
	fmt.Println(d.DisplayText())
	fmt.Println()

	proceed := false
	prompt := &survey.Confirm{
		Message: "Launch?",
		Default: false,
	}
	if err := survey.AskOne(prompt, &proceed); err != nil {
		if err == terminal.InterruptErr {
			return false, nil
		}
		return false, err
	}

	common.GetLogger().Info("TTY confirmation answered: proceed=%v", proceed)
	return proceed, nil
}
