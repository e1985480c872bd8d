package main

import (
	"log/slog"

	"github.com/vmunix/trendarr/internal/config"
	"github.com/vmunix/trendarr/pkg/sonarr"
	"github.com/vmunix/trendarr/pkg/trakt"
)

// traktBaseURL overrides the Trakt API endpoint when set.
var traktBaseURL string

func newSonarrClient(cfg *config.Config, log *slog.Logger) (*sonarr.Client, error) {
	clientOpts := []sonarr.Option{sonarr.WithLogger(log)}
	if cfg.Sonarr.ClientCert != "" {
		cert, err := sonarr.LoadClientCertificate(cfg.Sonarr.ClientCert, cfg.Sonarr.ClientKey)
		if err != nil {
			return nil, err
		}
		clientOpts = append(clientOpts, sonarr.WithClientCertificate(cert))
	}
	if cfg.Sonarr.RootFolder != "" {
		clientOpts = append(clientOpts, sonarr.WithRootFolder(cfg.Sonarr.RootFolder))
	}

	baseURL := sonarr.BaseURL(cfg.Sonarr.Host, cfg.Sonarr.InsecureHTTP)
	return sonarr.New(baseURL, cfg.Sonarr.APIKey, clientOpts...), nil
}

func newTraktClient(cfg *config.Config, log *slog.Logger) *trakt.Client {
	clientOpts := []trakt.Option{trakt.WithLogger(log)}
	if traktBaseURL != "" {
		clientOpts = append(clientOpts, trakt.WithBaseURL(traktBaseURL))
	}
	return trakt.New(trakt.Config{
		ClientID:     cfg.Trakt.ClientID,
		ClientSecret: cfg.Trakt.ClientSecret,
		AccessToken:  cfg.Trakt.AccessToken,
	}, clientOpts...)
}
