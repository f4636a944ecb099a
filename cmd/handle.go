package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alban/claunch/pkg/config"
	"github.com/alban/claunch/pkg/handler"
)

// handleCommand runs the full URL-to-terminal pipeline. It is what the OS
// URL-scheme shim invokes, one URL per process.
var handleCommand = &cobra.Command{
	Use:   "handle <url>",
	Short: "Handle a claunch:// URL",
	Long: `Handle a claunch:// URL: validate it, resolve the target directory,
ask for confirmation, and launch claude in a terminal window.

For example:

  claunch handle 'claunch://open?prompt=fix+the+tests&project=myapp'

With --dry-run the resolved command and directory are printed instead of
creating the launcher script and opening a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeHandle(args[0])
	},
}

// executeHandle loads the configuration and runs the pipeline for one URL.
// Shared by the root command and the handle subcommand.
func executeHandle(rawURL string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	h, err := handler.New(handler.Options{
		Config: cfg,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	return h.Handle(context.Background(), rawURL)
}

// init adds the handle command to the root command
func init() {
	rootCmd.AddCommand(handleCommand)

	handleCommand.Flags().BoolVar(&dryRun, "dry-run", false, "Print the resolved command without launching a terminal")
}
