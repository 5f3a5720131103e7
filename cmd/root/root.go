// Package root contains the root command for the application.
package root

import (
	"awiese/finance-master/internal/config"
	"awiese/finance-master/internal/csvio"
	"awiese/finance-master/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Cfg is the loaded application configuration, available to subcommands
	// after PersistentPreRun.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "finance-master",
		Short: "Categorize and aggregate bank-statement exports.",
		Long: `finance-master ingests bank-statement CSV exports and produces a
categorized, deduplicated combined transaction set plus a totals view with
per-category outflow and inflow sums.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			logging.SetDefault(Log)
			csvio.SetLogger(Log)
		},
	}

	// RulesFile overrides the configured rules file when set.
	RulesFile string
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&RulesFile, "rules", "", "Category rules YAML file (default from config)")
}

// RulesPath returns the rules file to use for this invocation.
func RulesPath() string {
	if RulesFile != "" {
		return RulesFile
	}
	return Cfg.Rules.File
}
