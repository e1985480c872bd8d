package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/trendarr/internal/history"
	"github.com/vmunix/trendarr/pkg/sonarr"
	"github.com/vmunix/trendarr/pkg/trakt"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"added": 1}))
	assert.Equal(t, "{\n  \"added\": 1\n}\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"ID", "NAME"}, [][]string{{"5", "HD-1080p"}, {"7"}}, []columnAlignment{alignRight})
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "HD-1080p")
	assert.Len(t, strings.Split(out, "\n"), 6, "top, header, separator, two rows, bottom")

	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestPrintProfiles(t *testing.T) {
	var buf bytes.Buffer
	printProfiles(&buf, []sonarr.QualityProfile{
		{ID: 1, Name: "Any"},
		{ID: 5, Name: "HD-1080p"},
		{ID: 6, Name: "HD-1080p"},
	}, "HD-1080p")

	out := buf.String()
	assert.Contains(t, out, "Quality Profiles (3)")
	assert.Equal(t, 1, strings.Count(out, "*"), "only the first match is marked")
	assert.NotContains(t, out, "sync will fail")

	buf.Reset()
	printProfiles(&buf, []sonarr.QualityProfile{{ID: 1, Name: "Any"}}, "HD-1080p")
	assert.Contains(t, buf.String(), `No profile named "HD-1080p"`)

	buf.Reset()
	printProfiles(&buf, nil, "HD-1080p")
	assert.Contains(t, buf.String(), "No quality profiles configured")
}

func TestPrintTrending(t *testing.T) {
	var buf bytes.Buffer
	printTrending(&buf, []trakt.TrendingShow{
		{Show: trakt.Show{Title: "Show B", Year: 2024, IDs: trakt.IDs{{Namespace: "tvdb", Value: "200"}}}, Watchers: 42},
		{Show: trakt.Show{Title: "Show C", IDs: trakt.IDs{{Namespace: "imdb", Value: "tt999"}}}},
	})

	out := buf.String()
	assert.Contains(t, out, "Show B")
	assert.Contains(t, out, "200")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "-")

	buf.Reset()
	printTrending(&buf, nil)
	assert.Contains(t, buf.String(), "No trending shows")
}

func TestPrintHistory(t *testing.T) {
	seriesID := int64(42)
	var buf bytes.Buffer
	printHistory(&buf, []*history.Entry{
		{TVDBID: 200, Title: "Show B", Event: history.EventAdded, SeriesID: &seriesID, CreatedAt: time.Now()},
		{TVDBID: 300, Title: "Show C", Event: history.EventWouldAdd, CreatedAt: time.Now()},
	})
	out := buf.String()
	assert.Contains(t, out, "Show B")
	assert.Contains(t, out, "would_add")
	assert.Contains(t, out, "42")

	buf.Reset()
	printHistory(&buf, nil)
	assert.Contains(t, buf.String(), "No history")
}

func TestPrintRuns(t *testing.T) {
	finished := time.Now()
	var buf bytes.Buffer
	printRuns(&buf, []*history.RunRecord{
		{StartedAt: time.Now(), FinishedAt: &finished, QualityProfile: "HD-1080p", Inspected: 3, Added: 1},
		{StartedAt: time.Now(), FinishedAt: &finished, QualityProfile: "SD", Error: "no suitable quality profile"},
		{StartedAt: time.Now(), QualityProfile: "HD-1080p"},
		{StartedAt: time.Now(), FinishedAt: &finished, QualityProfile: "HD-1080p", DryRun: true},
	})
	out := buf.String()
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "failed: no suitable quality profile")
	assert.Contains(t, out, "unfinished")
	assert.Contains(t, out, "dry run")
}
