package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmunix/trendarr/pkg/sonarr"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List Sonarr quality profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfilesCmd,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := checkRequired(cfg.RequireSonarr()); err != nil {
		return err
	}

	client, err := newSonarrClient(cfg, logger)
	if err != nil {
		return err
	}
	profiles, err := client.QualityProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch profiles: %w", err)
	}

	if opts.jsonOutput {
		return printJSON(cmd.OutOrStdout(), profiles)
	}
	printProfiles(cmd.OutOrStdout(), profiles, cfg.Sync.QualityProfile)
	return nil
}

// printProfiles lists profiles, marking the one a sync would select.
func printProfiles(w io.Writer, profiles []sonarr.QualityProfile, selected string) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No quality profiles configured")
		return
	}

	rows := make([][]string, 0, len(profiles))
	marked := false
	for _, p := range profiles {
		mark := ""
		if !marked && p.Name == selected {
			mark = "*"
			marked = true
		}
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Name, mark})
	}

	fmt.Fprintf(w, "Quality Profiles (%d):\n", len(profiles))
	fmt.Fprintln(w, renderTable([]string{"ID", "NAME", "SYNC"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
	if !marked {
		fmt.Fprintf(w, "No profile named %q; sync will fail\n", selected)
	}
}
