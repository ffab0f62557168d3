package cmd

import (
	"fmt"
	"os"

	"school-onboarding/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "school-onboarding",
	Short: "School onboarding workbook loader",
	Long: `Loads school onboarding Excel workbooks into the school-management
database: sheets in dependency order, foreign keys resolved by natural key,
idempotent upserts so repeated runs never duplicate rows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard logger in console format; CLI users
		// expect readable output rather than JSON.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
