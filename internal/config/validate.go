package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"auto": true, "text": true, "logfmt": true, "json": true, "": true,
}

// Validate checks field formats. It does not require connection settings,
// which may come from flags; see RequireSonarr and RequireTrakt.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be one of auto, text, logfmt, json; got %q", c.Log.Format))
	}

	if strings.Contains(c.Sonarr.Host, "/api") {
		errs = append(errs, fmt.Sprintf("sonarr.host: must be the instance root without the api path, got %q", c.Sonarr.Host))
	}

	// TLS client identity comes as a pair
	if (c.Sonarr.ClientCert == "") != (c.Sonarr.ClientKey == "") {
		errs = append(errs, "sonarr.client_cert, sonarr.client_key: both must be set together")
	}
	for _, f := range []struct{ field, path string }{
		{"sonarr.client_cert", c.Sonarr.ClientCert},
		{"sonarr.client_key", c.Sonarr.ClientKey},
	} {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("%s: file %q does not exist", f.field, f.path))
		}
	}

	if c.Sonarr.InsecureHTTP && (c.Sonarr.ClientCert != "" || strings.HasPrefix(c.Sonarr.Host, "https://")) {
		errs = append(errs, "sonarr.insecure_http: cannot be combined with https or a client certificate")
	}

	return errs
}

// RequireSonarr reports the Sonarr connection settings that are empty.
func (c *Config) RequireSonarr() []string {
	var errs []string
	if c.Sonarr.Host == "" {
		errs = append(errs, "sonarr.host: required (--host)")
	}
	if c.Sonarr.APIKey == "" {
		errs = append(errs, "sonarr.api_key: required (--api-key)")
	}
	return errs
}

// RequireTrakt reports the Trakt settings that are empty.
func (c *Config) RequireTrakt() []string {
	if c.Trakt.ClientID == "" {
		return []string{"trakt.client_id: required (--trakt-client-id)"}
	}
	return nil
}
