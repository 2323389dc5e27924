package cmd

import (
	"fmt"
	"os"

	"finaid-preflight/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "finaid-preflight",
	Short: "Financial Aid Assistant pre-flight verification",
	Long: `finaid-preflight verifies that a Financial Aid Assistant checkout has
every directory and file required for frontend-backend integration testing,
and can optionally probe the application database and document storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// A failed verification carries its own stdout block; don't repeat it.
		if err == ErrChecksFailed {
			os.Exit(1)
		}

		// Console format to match user expectations for a CLI tool; debug
		// level for ISO8601 timestamps instead of epoch.
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
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
