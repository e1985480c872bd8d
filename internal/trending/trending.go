// Package trending adds shows from the Trakt trending feed to Sonarr.
package trending

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Library,Feed,Ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/trendarr/pkg/sonarr"
	"github.com/vmunix/trendarr/pkg/title"
	"github.com/vmunix/trendarr/pkg/trakt"
)

const (
	// DefaultQualityProfile is the Sonarr profile new series are added with.
	DefaultQualityProfile = "HD-1080p"

	// DefaultFetchCount is how many trending shows are inspected per run.
	DefaultFetchCount = 100
)

// Library is the subset of the Sonarr API a sync needs.
type Library interface {
	QualityProfiles(ctx context.Context) ([]sonarr.QualityProfile, error)
	Series(ctx context.Context) ([]sonarr.Series, error)
	BuildNewSeriesRequest(ctx context.Context, tvdbID, qualityProfileID int) (sonarr.NewSeriesRequest, error)
	AddSeries(ctx context.Context, req sonarr.NewSeriesRequest) (*sonarr.Series, error)
}

// Feed supplies trending shows in ranked order.
type Feed interface {
	Trending(ctx context.Context, count int) ([]trakt.TrendingShow, error)
}

// Ledger records each addition as it happens.
type Ledger interface {
	RecordAddition(ctx context.Context, a Addition) error
}

// Config controls a sync run.
type Config struct {
	QualityProfile string // Exact profile name; DefaultQualityProfile when empty
	FetchCount     int    // Passed to Feed.Trending as is
	DryRun         bool   // Report additions without calling Sonarr
	WarnLookalikes bool   // Warn when a new show's title resembles a tracked series
}

// Addition is a show that was (or, in a dry run, would have been) added.
type Addition struct {
	TVDBID   int    `json:"tvdb_id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	SeriesID int    `json:"series_id,omitempty"`
	DryRun   bool   `json:"dry_run,omitempty"`
}

// Result summarizes a run. It is returned partially filled when Run fails.
type Result struct {
	Profile        sonarr.QualityProfile `json:"quality_profile"`
	Tracked        int                   `json:"tracked"`
	Inspected      int                   `json:"inspected"`
	SkippedNoID    int                   `json:"skipped_no_id"`
	SkippedTracked int                   `json:"skipped_tracked"`
	Added          []Addition            `json:"added"`
}

// Syncer runs the trending-to-Sonarr synchronization.
type Syncer struct {
	library Library
	feed    Feed
	ledger  Ledger
	config  Config
	log     *slog.Logger
}

// New creates a Syncer. ledger may be nil.
func New(library Library, feed Feed, ledger Ledger, cfg Config, log *slog.Logger) *Syncer {
	if log == nil {
		log = slog.Default()
	}
	if cfg.QualityProfile == "" {
		cfg.QualityProfile = DefaultQualityProfile
	}
	return &Syncer{
		library: library,
		feed:    feed,
		ledger:  ledger,
		config:  cfg,
		log:     log,
	}
}

// Run performs one sync. It stops at the first error; a missing quality
// profile is reported as a *ConfigurationError before any series are read.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{Added: []Addition{}}

	profiles, err := s.library.QualityProfiles(ctx)
	if err != nil {
		return res, err
	}
	profile, err := SelectQualityProfile(profiles, s.config.QualityProfile)
	if err != nil {
		return res, err
	}
	res.Profile = profile
	s.log.Info("using Sonarr quality profile", "name", profile.Name, "id", profile.ID)

	series, err := s.library.Series(ctx)
	if err != nil {
		return res, err
	}
	tracked := Snapshot(series)
	res.Tracked = len(tracked)
	s.log.Info("loaded series from Sonarr", "count", res.Tracked)

	shows, err := s.feed.Trending(ctx, s.config.FetchCount)
	if err != nil {
		return res, fmt.Errorf("fetch trending shows: %w", err)
	}
	res.Inspected = len(shows)
	s.log.Info("inspecting trending shows from Trakt", "count", res.Inspected)

	var candidates []title.Candidate
	if s.config.WarnLookalikes {
		candidates = make([]title.Candidate, 0, len(series))
		for _, ser := range series {
			candidates = append(candidates, title.Candidate{Key: ser.TVDBID, Title: ser.Title})
		}
	}

	for _, show := range shows {
		tvdbID, ok := trakt.TVDBID(show.IDs)
		if !ok {
			res.SkippedNoID++
			s.log.Debug("skipping show without tvdb id", "title", show.FullTitle())
			continue
		}
		if _, ok := tracked[tvdbID]; ok {
			res.SkippedTracked++
			continue
		}

		if candidates != nil {
			s.warnLookalike(show, tvdbID, candidates)
		}

		add, err := s.add(ctx, show, tvdbID, profile.ID)
		if err != nil {
			return res, err
		}
		res.Added = append(res.Added, add)

		if s.ledger != nil {
			if err := s.ledger.RecordAddition(ctx, add); err != nil {
				s.log.Warn("failed to record addition", "tvdb_id", tvdbID, "error", err)
			}
		}
	}

	s.log.Debug("sync finished",
		"added", len(res.Added),
		"skipped_tracked", res.SkippedTracked,
		"skipped_no_id", res.SkippedNoID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (s *Syncer) add(ctx context.Context, show trakt.TrendingShow, tvdbID, profileID int) (Addition, error) {
	add := Addition{TVDBID: tvdbID, Title: show.Title, Year: show.Year}

	if s.config.DryRun {
		s.log.Info("would add series to Sonarr", "title", show.FullTitle(), "tvdb_id", tvdbID)
		add.DryRun = true
		return add, nil
	}

	s.log.Info("adding series to Sonarr", "title", show.FullTitle(), "tvdb_id", tvdbID)

	req, err := s.library.BuildNewSeriesRequest(ctx, tvdbID, profileID)
	if err != nil {
		return add, err
	}
	created, err := s.library.AddSeries(ctx, applyAddOptions(req))
	if err != nil {
		return add, err
	}
	if created != nil {
		add.SeriesID = created.ID
	}
	return add, nil
}

// warnLookalike flags a new show whose title closely matches a tracked
// series. Callers pass only untracked ids, so any match is under another
// TVDB id. It never blocks the addition.
func (s *Syncer) warnLookalike(show trakt.TrendingShow, tvdbID int, candidates []title.Candidate) {
	match := title.Match(show.Title, candidates)
	if match.Confidence < title.ConfidenceHigh {
		return
	}
	s.log.Warn("trending show resembles a tracked series",
		"title", show.FullTitle(),
		"tvdb_id", tvdbID,
		"tracked_title", match.Candidate.Title,
		"tracked_tvdb_id", match.Candidate.Key,
		"score", fmt.Sprintf("%.2f", match.Score),
	)
}
