package cmd

import (
	"os"

	"github.com/commtower/commtower/internal/config"
	"github.com/commtower/commtower/pkg/log"
	"github.com/spf13/cobra"
)

var (
	// logLevel and logFile override the logging section of commtower.yaml.
	logLevel string
	logFile  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "commtower",
	Short: "Simulate communication tower coverage of a plot of land",
	Long: `commtower places randomly sized rectangular tower coverage areas on a grid,
trims each new tower to the largest rectangle not already covered, and reports
how much of the plot is covered or how many towers it took to fill it.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}

// rootLogging returns the logging section of commtower.yaml in the working
// directory, or the defaults when the file is absent or invalid.
func rootLogging() config.LoggingConfig {
	if cfg, err := config.Load(config.DefaultFile); err == nil {
		return cfg.Logging
	}
	return config.LoggingConfig{Level: "info"}
}

// setupLogging initialises the default logger from cfg, with command line
// flags taking precedence.
func setupLogging(cfg config.LoggingConfig) error {
	if logLevel != "" {
		cfg.Level = logLevel
	}
	if logFile != "" {
		cfg.Path = logFile
	}
	return log.Init(cfg.Path, cfg.Level)
}
