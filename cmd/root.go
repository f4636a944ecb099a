// Package root contains the command-line interface implementation for claunch.
//
// It defines the root command and all subcommands using Cobra and manages CLI
// flags, execution flow, and the mapping of pipeline errors to process exit
// codes.
package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alban/claunch/pkg/common"
	"github.com/alban/claunch/pkg/utils"
)

// ApplicationName is the name of the application used in various places
const ApplicationName = "claunch"

// Common command-line flags
var (
	configFile string
	logFile    string
	logLevel   string

	// handle flags
	dryRun bool

	// Application version (can be overridden at build time)
	version = "1.0.0"
)

// rootCmd represents the base command. Invoking claunch with a URL argument
// runs the handle pipeline directly, which is how the OS URL-scheme shim
// calls it.
var rootCmd = &cobra.Command{
	Use:   ApplicationName + " [url]",
	Short: "claunch URL handler",
	Long: `claunch turns claunch:// URLs into interactive claude sessions.

Given a URL like claunch://open?prompt=fix+the+tests, it validates and
decodes the parameters, resolves an optional project name to a working
directory, asks for confirmation, and opens a terminal window running
claude with the decoded prompt.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := setupLogger()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return executeHandle(args[0])
	},
}

// Execute runs the root command and exits the process with the code matching
// the outcome: 0 for success and user cancellation, a distinct non-zero code
// for each failure in the taxonomy.
func Execute() {
	defer common.RecoverPanic()

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, common.ErrCancelled) {
		common.GetLogger().Error("Command failed: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", ApplicationName, err)
	}

	if code := common.ExitCodeFor(err); code != common.ExitOK {
		os.Exit(int(code))
	}
}

// configPath returns the config file path from the flag or the default
// per-user location.
func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return utils.GetConfigPath()
}

// init registers global flags
func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to the YAML configuration file (default: per-user config)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "logfile", "l", "", "Path to the log file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: none, error, info, debug")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the resolved command without launching a terminal")
}
