package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vmunix/trendarr/internal/config"
)

// options holds flag values. Only flags the user set override the config file.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	jsonOutput bool

	host         string
	apiKey       string
	clientCert   string
	clientKey    string
	insecureHTTP bool

	traktClientID     string
	traktClientSecret string
	traktAccessToken  string
	fetchNum          int

	historyDB string

	profile        string
	dryRun         bool
	lockFile       string
	warnLookalikes bool
}

var opts options

// bindGlobalFlags registers the connection and output flags every command shares.
func bindGlobalFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.configPath, "config", "", "Config file (default: discovered)")
	fs.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", config.DefaultLogFormat, "Log format: auto, text, logfmt, json")
	fs.BoolVar(&o.jsonOutput, "json", false, "Output as JSON")

	fs.StringVar(&o.host, "host", "", "Sonarr host, e.g. sonarr.example.com:8989 (required)")
	fs.StringVar(&o.apiKey, "api-key", "", "Sonarr API key (required)")
	fs.StringVar(&o.clientCert, "client-cert", "", "PEM client certificate presented to Sonarr")
	fs.StringVar(&o.clientKey, "client-key", "", "PEM key for --client-cert")
	fs.BoolVar(&o.insecureHTTP, "insecure-http", false, "Talk to Sonarr over http instead of https")

	fs.StringVar(&o.traktClientID, "trakt-client-id", "", "Trakt application client id")
	fs.StringVar(&o.traktClientSecret, "trakt-client-secret", "", "Trakt application client secret (not needed for the public trending feed)")
	fs.StringVar(&o.traktAccessToken, "trakt-access-token", "", "Trakt OAuth access token")
	fs.IntVar(&o.fetchNum, "trakt-fetch-num", config.DefaultFetchNum, "Number of trending shows to inspect")

	fs.StringVar(&o.historyDB, "history-db", "", "SQLite database recording sync history")
}

// bindSyncFlags registers the flags that only affect a sync run.
func bindSyncFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.profile, "profile", config.DefaultQualityProfile, "Sonarr quality profile for new series")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Report what would be added without changing Sonarr")
	fs.StringVar(&o.lockFile, "lock-file", "", "Refuse to run while another sync holds this lock")
	fs.BoolVar(&o.warnLookalikes, "warn-lookalikes", false, "Warn when a new show's title resembles a tracked series")
}

// loadConfig reads the config file, if any, and applies flag overrides.
// The package logger is rebuilt from the resulting log settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		found, err := config.Discover()
		switch {
		case err == nil:
			path = found
		case errors.Is(err, config.ErrNotFound):
			// Flags alone are enough
		default:
			return nil, err
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyFlags(cfg, cmd.Flags(), &opts)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.Error{Path: path, Errors: errs}
	}

	logger = newLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, o *options) {
	set := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	if set("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if set("log-format") {
		cfg.Log.Format = o.logFormat
	}

	if set("host") {
		cfg.Sonarr.Host = o.host
	}
	if set("api-key") {
		cfg.Sonarr.APIKey = o.apiKey
	}
	if set("client-cert") {
		cfg.Sonarr.ClientCert = o.clientCert
	}
	if set("client-key") {
		cfg.Sonarr.ClientKey = o.clientKey
	}
	if set("insecure-http") {
		cfg.Sonarr.InsecureHTTP = o.insecureHTTP
	}

	if set("trakt-client-id") {
		cfg.Trakt.ClientID = o.traktClientID
	}
	if set("trakt-client-secret") {
		cfg.Trakt.ClientSecret = o.traktClientSecret
	}
	if set("trakt-access-token") {
		cfg.Trakt.AccessToken = o.traktAccessToken
	}
	if set("trakt-fetch-num") {
		cfg.Trakt.FetchNum = o.fetchNum
	}

	if set("history-db") {
		cfg.History.Path = o.historyDB
	}

	if set("profile") {
		cfg.Sync.QualityProfile = o.profile
	}
	if set("dry-run") {
		cfg.Sync.DryRun = o.dryRun
	}
	if set("lock-file") {
		cfg.Sync.LockFile = o.lockFile
	}
	if set("warn-lookalikes") {
		cfg.Sync.WarnLookalikes = o.warnLookalikes
	}
}

// checkRequired turns missing settings into a config error.
func checkRequired(missing ...[]string) error {
	var errs []string
	for _, m := range missing {
		errs = append(errs, m...)
	}
	if len(errs) == 0 {
		return nil
	}
	return &config.Error{Path: opts.configPath, Errors: errs}
}
