// Package history records sync runs and the series they added in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmunix/trendarr/internal/migrations"
	"github.com/vmunix/trendarr/internal/trending"

	_ "modernc.org/sqlite"
)

// Event types for history records.
const (
	EventAdded    = "added"
	EventWouldAdd = "would_add"
)

// Entry is one series added (or, in a dry run, not added) by a run.
type Entry struct {
	ID        int64     `json:"id"`
	RunID     int64     `json:"run_id"`
	TVDBID    int       `json:"tvdb_id"`
	Title     string    `json:"title"`
	Year      int       `json:"year,omitempty"`
	SeriesID  *int64    `json:"series_id,omitempty"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

// RunRecord summarizes one sync run.
type RunRecord struct {
	ID             int64      `json:"id"`
	UUID           string     `json:"uuid"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	QualityProfile string     `json:"quality_profile"`
	DryRun         bool       `json:"dry_run"`
	Inspected      int        `json:"inspected"`
	Added          int        `json:"added"`
	Error          string     `json:"error,omitempty"`
}

// Filter specifies criteria for listing history.
type Filter struct {
	RunID  *int64
	TVDBID *int
	Event  *string
	Limit  int
}

// Store persists sync history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A single writer; keeps :memory: databases on one connection.
	db.SetMaxOpenConns(1)

	s, err := NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an open database and applies the schema.
func NewStore(db *sql.DB) (*Store, error) {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// StartRun inserts a run row and returns a handle that records its additions.
// runID is the caller's correlation id for the run and must be unique.
func (s *Store) StartRun(ctx context.Context, runID, profile string, dryRun bool) (*Run, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_runs (uuid, started_at, quality_profile, dry_run)
		VALUES (?, ?, ?, ?)`,
		runID, now, profile, dryRun,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	return &Run{ID: id, store: s}, nil
}

// Run records the additions of one sync run. It implements trending.Ledger.
type Run struct {
	ID    int64
	store *Store
}

var _ trending.Ledger = (*Run)(nil)

// RecordAddition inserts a history row for a.
func (r *Run) RecordAddition(ctx context.Context, a trending.Addition) error {
	event := EventAdded
	if a.DryRun {
		event = EventWouldAdd
	}
	var seriesID *int64
	if a.SeriesID != 0 {
		id := int64(a.SeriesID)
		seriesID = &id
	}

	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO sync_history (run_id, tvdb_id, title, year, series_id, event, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, a.TVDBID, a.Title, a.Year, seriesID, event, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// Finish stores the run's totals and its error, if any. res may be nil.
func (r *Run) Finish(ctx context.Context, res *trending.Result, runErr error) error {
	var inspected, added int
	if res != nil {
		inspected = res.Inspected
		added = len(res.Added)
	}
	var errText *string
	if runErr != nil {
		msg := runErr.Error()
		errText = &msg
	}

	_, err := r.store.db.ExecContext(ctx, `
		UPDATE sync_runs SET finished_at = ?, inspected = ?, added = ?, error = ?
		WHERE id = ?`,
		time.Now().UTC(), inspected, added, errText, r.ID,
	)
	if err != nil {
		return fmt.Errorf("finish run %d: %w", r.ID, err)
	}
	return nil
}

// List returns history entries matching the filter, most recent first.
func (s *Store) List(ctx context.Context, f Filter) ([]*Entry, error) {
	var conditions []string
	var args []any

	if f.RunID != nil {
		conditions = append(conditions, "run_id = ?")
		args = append(args, *f.RunID)
	}
	if f.TVDBID != nil {
		conditions = append(conditions, "tvdb_id = ?")
		args = append(args, *f.TVDBID)
	}
	if f.Event != nil {
		conditions = append(conditions, "event = ?")
		args = append(args, *f.Event)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, run_id, tvdb_id, title, year, series_id, event, created_at
		FROM sync_history ` + whereClause + ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Entry
	for rows.Next() {
		e := &Entry{}
		var year sql.NullInt64
		if err := rows.Scan(&e.ID, &e.RunID, &e.TVDBID, &e.Title, &year, &e.SeriesID, &e.Event, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Year = int(year.Int64)
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}

// Runs returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]*RunRecord, error) {
	query := `SELECT id, uuid, started_at, finished_at, quality_profile, dry_run, inspected, added, error
		FROM sync_runs ORDER BY started_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*RunRecord
	for rows.Next() {
		r := &RunRecord{}
		var finished sql.NullTime
		var errText sql.NullString
		if err := rows.Scan(&r.ID, &r.UUID, &r.StartedAt, &finished, &r.QualityProfile, &r.DryRun,
			&r.Inspected, &r.Added, &errText); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = &finished.Time
		}
		r.Error = errText.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return results, nil
}
