package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/trendarr/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates the config file syntax, required fields, and environment variable substitution without contacting Sonarr or Trakt.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := opts.configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err == nil {
		errs := append(cfg.RequireSonarr(), cfg.RequireTrakt()...)
		if len(errs) > 0 {
			err = &config.Error{Path: path, Errors: errs}
		}
	}
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(w, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(w, cfg)
	fmt.Fprintln(w, "\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, configInitForce); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%w; use --force to overwrite", err)
		}
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")

	scheme := "https"
	if cfg.Sonarr.InsecureHTTP {
		scheme = "http"
	}
	fmt.Fprintf(w, "  Sonarr:     %s (%s)\n", cfg.Sonarr.Host, scheme)
	if cfg.Sonarr.ClientCert != "" {
		fmt.Fprintf(w, "  Client TLS: %s\n", cfg.Sonarr.ClientCert)
	}
	if cfg.Sonarr.RootFolder != "" {
		fmt.Fprintf(w, "  Root:       %s\n", cfg.Sonarr.RootFolder)
	}

	auth := "client id"
	if cfg.Trakt.AccessToken != "" {
		auth = "client id + access token"
	}
	fmt.Fprintf(w, "  Trakt:      %d shows (%s)\n", cfg.Trakt.FetchNum, auth)

	fmt.Fprintf(w, "  Profile:    %s", cfg.Sync.QualityProfile)
	if cfg.Sync.DryRun {
		fmt.Fprint(w, " (dry run)")
	}
	fmt.Fprintln(w)

	if cfg.History.Path != "" {
		fmt.Fprintf(w, "  History:    %s\n", cfg.History.Path)
	}
	if cfg.Sync.LockFile != "" {
		fmt.Fprintf(w, "  Lock:       %s\n", cfg.Sync.LockFile)
	}
	fmt.Fprintf(w, "  Log:        %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
}
