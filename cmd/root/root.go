// Package root contains the root command for the application
package root

import (
	"netc/ar-statements/internal/aging"
	"netc/ar-statements/internal/common"
	"netc/ar-statements/internal/config"
	"netc/ar-statements/internal/currencyutils"
	"netc/ar-statements/internal/fileutils"
	"netc/ar-statements/internal/logging"
	"netc/ar-statements/internal/report"
	"netc/ar-statements/internal/scanner"
	"netc/ar-statements/internal/workbook"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ar-statements",
		Short: "Build per-customer AR statements from an accounts-receivable export.",
		Long: `ar-statements ingests an accounts-receivable CSV export, normalizes it
into aging buckets and renders per-customer statements, a searchable index,
a summary workbook and a rejected-rows report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ar-statements!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Propagate the configured logger to all packages
			adapted := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetDefaultLogger(adapted)
			aging.SetLogger(adapted)
			common.SetLogger(adapted)
			report.SetLogger(adapted)
			workbook.SetLogger(adapted)
			scanner.SetLogger(adapted)
			fileutils.SetLogger(adapted)
			currencyutils.SetLogger(Log)
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input AR export CSV (auto-detected when omitted)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory (default from config)")
}
