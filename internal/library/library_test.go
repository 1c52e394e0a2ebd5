package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearsay/internal/domain"
)

func sample(id, title string, created time.Time) *domain.Transcript {
	return &domain.Transcript{
		ID:        id,
		Title:     title,
		Source:    "/inbox/" + title + ".wav",
		Language:  "en",
		Duration:  90 * time.Second,
		Words:     3,
		CreatedAt: created,
	}
}

func TestAddAndGet(t *testing.T) {
	t.Parallel()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	in := sample("t1", "standup", time.Now())
	require.NoError(t, store.Add(in, "one two three"))

	got, ok := store.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "standup", got.Title)
	assert.Equal(t, 90*time.Second, got.Duration)

	body, err := store.Body("t1")
	require.NoError(t, err)
	assert.Equal(t, "one two three", body)
}

func TestAddWritesBothFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Add(sample("t1", "interview", time.Now()), "body"))

	assert.FileExists(t, filepath.Join(dir, "t1.txt"))
	assert.FileExists(t, filepath.Join(dir, "t1.toml"))
}

func TestListNewestFirst(t *testing.T) {
	t.Parallel()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Add(sample("old", "monday", base), "a"))
	require.NoError(t, store.Add(sample("new", "friday", base.Add(time.Hour)), "b"))

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestReloadFromDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, first.Add(sample("t1", "standup", created), "one two three"))

	second, err := NewStore(dir)
	require.NoError(t, err)

	got, ok := second.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "standup", got.Title)
	assert.Equal(t, "/inbox/standup.wav", got.Source)
	assert.Equal(t, 90*time.Second, got.Duration)
	assert.True(t, got.CreatedAt.Equal(created))

	body, err := second.Body("t1")
	require.NoError(t, err)
	assert.Equal(t, "one two three", body)
}

func TestLoadSkipsMalformedSidecars(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.toml"), []byte("not = [valid"), 0644))

	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Empty(t, store.List())
}

func TestRemoveDeletesFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Add(sample("t1", "standup", time.Now()), "body"))
	require.NoError(t, store.Remove("t1"))

	_, ok := store.Get("t1")
	assert.False(t, ok)
	assert.NoFileExists(t, filepath.Join(dir, "t1.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "t1.toml"))

	assert.Error(t, store.Remove("t1"))
}

func TestSearch(t *testing.T) {
	t.Parallel()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.Add(sample("t1", "Weekly Standup", now), "a"))
	require.NoError(t, store.Add(sample("t2", "interview", now.Add(time.Second)), "b"))

	hits := store.Search("STANDUP")
	require.Len(t, hits, 1)
	assert.Equal(t, "t1", hits[0].ID)

	// Source paths match too.
	hits = store.Search("inbox")
	assert.Len(t, hits, 2)

	assert.Len(t, store.Search(""), 2)
	assert.Empty(t, store.Search("nothing"))
}

func TestBodyMissingTranscript(t *testing.T) {
	t.Parallel()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Body("ghost")
	assert.Error(t, err)
}
