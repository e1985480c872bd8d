package history

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/trendarr/internal/trending"
	_ "modernc.org/sqlite"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "open db")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewStore(db)
	require.NoError(t, err, "apply schema")
	return store
}

func TestNewStore_SchemaIsReapplicable(t *testing.T) {
	store := setupTestStore(t)
	_, err := NewStore(store.db)
	assert.NoError(t, err)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.StartRun(context.Background(), uuid.NewString(), "HD-1080p", false)
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

func TestRun_RecordAddition(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	run, err := store.StartRun(ctx, uuid.NewString(), "HD-1080p", false)
	require.NoError(t, err)
	assert.NotZero(t, run.ID)

	require.NoError(t, run.RecordAddition(ctx, trending.Addition{TVDBID: 200, Title: "Show B", Year: 2024, SeriesID: 42}))
	require.NoError(t, run.RecordAddition(ctx, trending.Addition{TVDBID: 300, Title: "Show C", DryRun: true}))

	entries, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first
	assert.Equal(t, 300, entries[0].TVDBID)
	assert.Equal(t, EventWouldAdd, entries[0].Event)
	assert.Nil(t, entries[0].SeriesID)
	assert.Zero(t, entries[0].Year)

	assert.Equal(t, 200, entries[1].TVDBID)
	assert.Equal(t, EventAdded, entries[1].Event)
	require.NotNil(t, entries[1].SeriesID)
	assert.Equal(t, int64(42), *entries[1].SeriesID)
	assert.Equal(t, 2024, entries[1].Year)
	assert.Equal(t, run.ID, entries[1].RunID)
	assert.False(t, entries[1].CreatedAt.IsZero())
}

func TestStore_ListFilters(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	first, err := store.StartRun(ctx, uuid.NewString(), "HD-1080p", false)
	require.NoError(t, err)
	require.NoError(t, first.RecordAddition(ctx, trending.Addition{TVDBID: 1, Title: "One"}))
	require.NoError(t, first.RecordAddition(ctx, trending.Addition{TVDBID: 2, Title: "Two"}))

	second, err := store.StartRun(ctx, uuid.NewString(), "HD-1080p", true)
	require.NoError(t, err)
	require.NoError(t, second.RecordAddition(ctx, trending.Addition{TVDBID: 1, Title: "One", DryRun: true}))

	entries, err := store.List(ctx, Filter{RunID: &first.ID})
	require.NoError(t, err, "List by run")
	assert.Len(t, entries, 2)

	tvdbID := 1
	entries, err = store.List(ctx, Filter{TVDBID: &tvdbID})
	require.NoError(t, err, "List by tvdb id")
	assert.Len(t, entries, 2)

	event := EventWouldAdd
	entries, err = store.List(ctx, Filter{Event: &event})
	require.NoError(t, err, "List by event")
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].RunID)

	entries, err = store.List(ctx, Filter{Limit: 2})
	require.NoError(t, err, "List with limit")
	assert.Len(t, entries, 2)
}

func TestRun_Finish(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	ok, err := store.StartRun(ctx, uuid.NewString(), "HD-1080p", false)
	require.NoError(t, err)
	res := &trending.Result{Inspected: 10, Added: []trending.Addition{{TVDBID: 1}, {TVDBID: 2}}}
	require.NoError(t, ok.Finish(ctx, res, nil))

	failed, err := store.StartRun(ctx, uuid.NewString(), "Ultra-HD", false)
	require.NoError(t, err)
	require.NoError(t, failed.Finish(ctx, nil, errors.New("no suitable quality profile")))

	unfinished, err := store.StartRun(ctx, uuid.NewString(), "HD-1080p", true)
	require.NoError(t, err)

	runs, err := store.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	byID := make(map[int64]*RunRecord, len(runs))
	for _, r := range runs {
		byID[r.ID] = r
	}

	got := byID[ok.ID]
	assert.NotEmpty(t, got.UUID)
	assert.Equal(t, "HD-1080p", got.QualityProfile)
	assert.Equal(t, 10, got.Inspected)
	assert.Equal(t, 2, got.Added)
	assert.Empty(t, got.Error)
	assert.NotNil(t, got.FinishedAt)

	got = byID[failed.ID]
	assert.Equal(t, "no suitable quality profile", got.Error)
	assert.Zero(t, got.Added)

	got = byID[unfinished.ID]
	assert.True(t, got.DryRun)
	assert.Nil(t, got.FinishedAt)

	limited, err := store.Runs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestStore_StartRunDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	id := uuid.NewString()
	_, err := store.StartRun(ctx, id, "HD-1080p", false)
	require.NoError(t, err)
	_, err = store.StartRun(ctx, id, "HD-1080p", false)
	assert.Error(t, err)
}

func TestRun_RejectsUnknownRun(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	orphan := &Run{ID: 999, store: store}
	err := orphan.RecordAddition(ctx, trending.Addition{TVDBID: 1, Title: "One"})
	assert.Error(t, err, "foreign key should reject unknown run")
}
