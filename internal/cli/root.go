// Package cli wires the repominer commands. Commands register themselves on
// the root command from init; failures propagate out of Execute and are
// printed by main with a non-zero exit code.
package cli

import (
	"github.com/spf13/cobra"

	"repominer/internal/config"
	"repominer/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.0.0-dev"

var (
	verboseFlag bool
	tokenFlag   string
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "repominer",
	Short: "Fetch GitHub commits and issues into CSV files",
	Long: `repominer retrieves commit and issue history from the GitHub API and
normalises it into CSV records for downstream analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "",
		"GitHub personal access token (overrides GITHUB_TOKEN and the config file)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to the config file (default ~/.repominer/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file named by --config, or the default
// location. A missing file yields a zero config.
func loadConfig() (config.Config, error) {
	path := configFlag
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = defaultPath
	}
	return config.Load(path)
}
