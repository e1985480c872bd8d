package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/trendarr/internal/history"
)

var errNoHistory = errors.New("no history database configured (set --history-db or history.path)")

var historyFlags struct {
	limit  int
	tvdbID int
	event  string
	runs   bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List series added by previous syncs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCmd,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "Maximum entries to show (0 for all)")
	historyCmd.Flags().IntVar(&historyFlags.tvdbID, "tvdb", 0, "Only entries for this TVDB id")
	historyCmd.Flags().StringVar(&historyFlags.event, "event", "", "Only entries with this event (added, would_add)")
	historyCmd.Flags().BoolVar(&historyFlags.runs, "runs", false, "List sync runs instead of additions")
	rootCmd.AddCommand(historyCmd)
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return errNoHistory
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	w := cmd.OutOrStdout()

	if historyFlags.runs {
		runs, err := store.Runs(cmd.Context(), historyFlags.limit)
		if err != nil {
			return err
		}
		if opts.jsonOutput {
			return printJSON(w, runs)
		}
		printRuns(w, runs)
		return nil
	}

	filter := history.Filter{Limit: historyFlags.limit}
	if historyFlags.tvdbID > 0 {
		filter.TVDBID = &historyFlags.tvdbID
	}
	if historyFlags.event != "" {
		filter.Event = &historyFlags.event
	}

	entries, err := store.List(cmd.Context(), filter)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(w, entries)
	}
	printHistory(w, entries)
	return nil
}

func printHistory(w io.Writer, entries []*history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		series := "-"
		if e.SeriesID != nil {
			series = strconv.FormatInt(*e.SeriesID, 10)
		}
		rows = append(rows, []string{
			e.CreatedAt.Local().Format(time.DateTime),
			e.Event,
			e.Title,
			strconv.Itoa(e.TVDBID),
			series,
		})
	}

	fmt.Fprintln(w, renderTable(
		[]string{"WHEN", "EVENT", "TITLE", "TVDB", "SERIES"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
}

func printRuns(w io.Writer, runs []*history.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No sync runs recorded")
		return
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := "ok"
		switch {
		case r.Error != "":
			status = "failed: " + r.Error
		case r.FinishedAt == nil:
			status = "unfinished"
		case r.DryRun:
			status = "dry run"
		}
		rows = append(rows, []string{
			r.StartedAt.Local().Format(time.DateTime),
			r.QualityProfile,
			strconv.Itoa(r.Inspected),
			strconv.Itoa(r.Added),
			status,
		})
	}

	fmt.Fprintln(w, renderTable(
		[]string{"STARTED", "PROFILE", "INSPECTED", "ADDED", "STATUS"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
}
