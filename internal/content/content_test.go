package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pcof-site-backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLookup(t *testing.T) {
	dir := t.TempDir()
	events := `[
		{"id":"evt_1","title":"Easter Service","startsAt":"2025-04-20T09:00:00Z"},
		{"id":"evt_2","title":"Youth Camp"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.json"), []byte(events), 0o644))

	repo := NewRepository(dir)

	all := repo.Events()
	require.Len(t, all, 2)
	assert.Equal(t, "Easter Service", all[0].Title)

	ev, err := repo.EventByID("evt_2")
	require.NoError(t, err)
	assert.Equal(t, "Youth Camp", ev.Title)

	_, err = repo.EventByID("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestChurchBySlugFallsBackToID(t *testing.T) {
	dir := t.TempDir()
	churches := `[{"id":"c1","slug":"first-church","name":"First Church"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "churches.json"), []byte(churches), 0o644))

	repo := NewRepository(dir)

	bySlug, err := repo.ChurchBySlug("first-church")
	require.NoError(t, err)
	assert.Equal(t, "First Church", bySlug.Name)

	byID, err := repo.ChurchBySlug("c1")
	require.NoError(t, err)
	assert.Equal(t, bySlug, byID)
}

func TestMissingFilesReadAsEmpty(t *testing.T) {
	repo := NewRepository(t.TempDir())

	assert.Empty(t, repo.Events())
	assert.Empty(t, repo.Churches())
	assert.Empty(t, repo.Sermons())
	assert.Empty(t, repo.Leaders())
}

func TestCorruptFileReadAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sermons.json"), []byte("{oops"), 0o644))

	repo := NewRepository(dir)
	assert.Empty(t, repo.Sermons())
}
