package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizzomafizzo/tidy/internal/testutil"
)

// newTestStore opens a store on a temp path. Callers must close it
// before any deferred leak check runs.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "history.db")
	store, err := New(context.Background(), dsn)
	require.NoError(t, err)
	return store
}

func TestRecordAndRecent(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	store := newTestStore(t)
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	require.NoError(t, store.RecordMove(ctx, "/src/photo.jpg", "/src/Images/photo.jpg", "Images"))
	require.NoError(t, store.RecordMove(ctx, "/src/report.pdf", "/src/Documents/report.pdf", "Documents"))

	moves, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, moves, 2)

	// Newest first.
	assert.Equal(t, "/src/report.pdf", moves[0].Source)
	assert.Equal(t, "Documents", moves[0].Category)
	assert.Equal(t, "/src/photo.jpg", moves[1].Source)
	assert.False(t, moves[0].MovedAt.IsZero())
}

func TestRecentHonorsLimit(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	store := newTestStore(t)
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordMove(ctx, "/src/a.txt", "/src/Documents/a.txt", "Documents"))
	}

	moves, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, moves, 3)
}

func TestRecentEmptyJournal(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	store := newTestStore(t)
	defer func() { _ = store.Close() }()

	moves, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestJournalSurvivesReopen(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	dsn := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, store.RecordMove(ctx, "/src/a.zip", "/src/Archives/a.zip", "Archives"))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dsn)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	moves, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "/src/Archives/a.zip", moves[0].Dest)
}
