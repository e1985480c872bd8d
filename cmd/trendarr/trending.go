package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmunix/trendarr/pkg/trakt"
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the Trakt trending feed with TVDB ids",
	Args:  cobra.NoArgs,
	RunE:  runTrendingCmd,
}

func init() {
	rootCmd.AddCommand(trendingCmd)
}

func runTrendingCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := checkRequired(cfg.RequireTrakt()); err != nil {
		return err
	}

	shows, err := newTraktClient(cfg, logger).Trending(cmd.Context(), cfg.Trakt.FetchNum)
	if err != nil {
		return fmt.Errorf("failed to fetch trending shows: %w", err)
	}

	if opts.jsonOutput {
		return printJSON(cmd.OutOrStdout(), shows)
	}
	printTrending(cmd.OutOrStdout(), shows)
	return nil
}

func printTrending(w io.Writer, shows []trakt.TrendingShow) {
	if len(shows) == 0 {
		fmt.Fprintln(w, "No trending shows")
		return
	}

	rows := make([][]string, 0, len(shows))
	for i, s := range shows {
		tvdb := "-"
		if id, ok := trakt.TVDBID(s.IDs); ok {
			tvdb = strconv.Itoa(id)
		}
		year := ""
		if s.Year > 0 {
			year = strconv.Itoa(s.Year)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Title,
			year,
			strconv.Itoa(s.Watchers),
			tvdb,
		})
	}

	fmt.Fprintln(w, renderTable(
		[]string{"#", "TITLE", "YEAR", "WATCHERS", "TVDB"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight},
	))
}
