// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults applied by Load.
const (
	DefaultQualityProfile = "HD-1080p"
	DefaultFetchNum       = 100
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "auto"
)

// Config is the root configuration structure.
type Config struct {
	Sonarr  SonarrConfig  `toml:"sonarr"`
	Trakt   TraktConfig   `toml:"trakt"`
	Sync    SyncConfig    `toml:"sync"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

type SonarrConfig struct {
	Host         string `toml:"host"`
	APIKey       string `toml:"api_key"`
	ClientCert   string `toml:"client_cert"`
	ClientKey    string `toml:"client_key"`
	RootFolder   string `toml:"root_folder"`
	InsecureHTTP bool   `toml:"insecure_http"`
}

type TraktConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	AccessToken  string `toml:"access_token"`
	FetchNum     int    `toml:"fetch_num"`
}

type SyncConfig struct {
	QualityProfile string `toml:"quality_profile"`
	DryRun         bool   `toml:"dry_run"`
	WarnLookalikes bool   `toml:"warn_lookalikes"`
	LockFile       string `toml:"lock_file"`
}

type HistoryConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // auto, text, logfmt or json
}

// Default returns a configuration with every default applied and nothing else set.
func Default() *Config {
	cfg := &Config{Trakt: TraktConfig{FetchNum: DefaultFetchNum}}
	cfg.applyDefaults()
	return cfg
}

// Load reads, substitutes and parses the configuration file, then checks
// field formats. Connection settings may still be empty; flags can supply them.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file.
// Unresolved environment variables are still reported.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// An explicit fetch_num = 0 inspects nothing, like --trakt-fetch-num 0
	if !md.IsDefined("trakt", "fetch_num") {
		cfg.Trakt.FetchNum = DefaultFetchNum
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Sync.QualityProfile == "" {
		c.Sync.QualityProfile = DefaultQualityProfile
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces variable references with environment values.
// Comment lines are copied unchanged. Unresolved references are left in
// place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	replace := func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				msg := strings.TrimSpace(arg)
				if msg == "" {
					msg = "required"
				}
				missing = append(missing, name+": "+msg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	}

	var b strings.Builder
	b.Grow(len(content))
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			b.WriteString(line)
			continue
		}
		b.WriteString(envVarPattern.ReplaceAllStringFunc(line, replace))
	}

	return b.String(), missing
}
