package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vmunix/trendarr/internal/config"
	"github.com/vmunix/trendarr/internal/history"
	"github.com/vmunix/trendarr/internal/trending"
)

var errSyncRunning = errors.New("another trendarr sync is already running")

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Add trending shows that Sonarr does not track yet",
	Args:  cobra.NoArgs,
	RunE:  runSyncCmd,
}

func init() {
	bindSyncFlags(syncCmd.Flags(), &opts)
	rootCmd.AddCommand(syncCmd)
}

func runSyncCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := checkRequired(cfg.RequireSonarr(), cfg.RequireTrakt()); err != nil {
		return err
	}

	res, err := runSync(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}
	printSyncSummary(cmd.OutOrStdout(), res)
	return nil
}

// runSync performs one sync with cfg, holding the lock and recording
// history when those are configured.
func runSync(ctx context.Context, cfg *config.Config, log *slog.Logger) (*trending.Result, error) {
	start := time.Now()

	if cfg.Sync.LockFile != "" {
		unlock, err := acquireLock(cfg.Sync.LockFile)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	runID := uuid.NewString()
	log = log.With("run", runID)

	library, err := newSonarrClient(cfg, log)
	if err != nil {
		return nil, err
	}
	feed := newTraktClient(cfg, log)

	var ledger trending.Ledger
	var run *history.Run
	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		defer func() { _ = store.Close() }()

		run, err = store.StartRun(ctx, runID, cfg.Sync.QualityProfile, cfg.Sync.DryRun)
		if err != nil {
			return nil, err
		}
		ledger = run
	}

	syncer := trending.New(library, feed, ledger, trending.Config{
		QualityProfile: cfg.Sync.QualityProfile,
		FetchCount:     cfg.Trakt.FetchNum,
		DryRun:         cfg.Sync.DryRun,
		WarnLookalikes: cfg.Sync.WarnLookalikes,
	}, log)

	res, runErr := syncer.Run(ctx)

	if run != nil {
		// Record the outcome even when ctx was canceled
		if err := run.Finish(context.WithoutCancel(ctx), res, runErr); err != nil {
			log.Warn("failed to record sync run", "error", err)
		}
	}
	if runErr != nil {
		return res, runErr
	}

	log.Info("sync complete",
		"added", len(res.Added),
		"dry_run", cfg.Sync.DryRun,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return res, nil
}

// acquireLock takes an exclusive lock on path without waiting.
func acquireLock(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", errSyncRunning, path)
	}
	return func() { _ = lock.Unlock() }, nil
}

func printSyncSummary(w io.Writer, res *trending.Result) {
	verb := "Added"
	if len(res.Added) > 0 && res.Added[0].DryRun {
		verb = "Would add"
	}

	if len(res.Added) == 0 {
		fmt.Fprintln(w, "No new series to add")
	} else {
		fmt.Fprintf(w, "%s %d series with profile %q:\n", verb, len(res.Added), res.Profile.Name)
		for _, a := range res.Added {
			fmt.Fprintf(w, "  %s (%d)  tvdb:%d\n", a.Title, a.Year, a.TVDBID)
		}
	}

	fmt.Fprintf(w, "\nInspected %d trending shows: %d already tracked, %d without a TVDB id\n",
		res.Inspected, res.SkippedTracked, res.SkippedNoID)
}
