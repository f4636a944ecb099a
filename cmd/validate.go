package root

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alban/claunch/pkg/request"
)

// validateCommand parses and validates a URL without running the pipeline.
// Useful for debugging URL producers: it is guaranteed to show no dialog and
// to write nothing.
var validateCommand = &cobra.Command{
	Use:   "validate <url>",
	Short: "Validate a claunch:// URL without executing anything",
	Long: `Validate a claunch:// URL and print the decoded request.

This command performs the exact same validation as handling the URL, but
stops there: no project mapping is written, no confirmation is shown, no
terminal is launched. The exit code distinguishes the validation failures.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := request.Parse(args[0])
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s %s\n", bold("prompt:"), req.Prompt)
		if req.Dir != "" {
			fmt.Printf("%s %s\n", bold("dir:"), req.Dir)
		}
		if req.Project != "" {
			fmt.Printf("%s %s\n", bold("project:"), req.Project)
		}
		if req.Version != 0 {
			fmt.Printf("%s %d\n", bold("version:"), req.Version)
		}

		color.Green("URL is valid")
		return nil
	},
}

// init adds the validate command to the root command
func init() {
	rootCmd.AddCommand(validateCommand)
}
