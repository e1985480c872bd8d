package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trendarr",
	Short: "Add trending Trakt shows to Sonarr",
	Long: `trendarr - add trending Trakt shows to Sonarr

Fetches the shows currently trending on Trakt, skips the ones Sonarr
already tracks, and adds the rest with the chosen quality profile.

Running trendarr without a command performs a sync.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSyncCmd,
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

func init() {
	bindGlobalFlags(rootCmd.PersistentFlags(), &opts)
	bindSyncFlags(rootCmd.Flags(), &opts)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("trendarr {{.Version}}\n")
}
