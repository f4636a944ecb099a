package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alban/claunch/pkg/common"
	"github.com/alban/claunch/pkg/config"
	"github.com/alban/claunch/pkg/terminal"
)

// initCommand bootstraps a configuration file with an auto-detected terminal
// preference.
var initCommand = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a default configuration file with an auto-detected terminal
preference. Fails if the configuration file already exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil {
			return common.NewLaunchError(common.ExitConfigIO, "config already exists at %s", path)
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg.Terminal = detectTerminal()
		cfg.Projects = map[string]string{}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Created %s\n", path)
		fmt.Printf("  terminal: %s\n", cfg.Terminal)
		return nil
	},
}

// detectTerminal returns the config key of the best available terminal,
// probing in the same order as the dispatcher's default chain.
func detectTerminal() string {
	if common.CheckExecutableExists("ghostty") || common.CheckAppBundleExists(terminal.GhosttyBundlePath) {
		return config.TerminalGhostty
	}
	if common.CheckAppBundleExists(terminal.ITermBundlePath) {
		return config.TerminalITerm
	}
	return config.TerminalDefault
}

// init adds the init command to the root command
func init() {
	rootCmd.AddCommand(initCommand)
}
