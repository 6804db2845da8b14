package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodStore_AppendAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSQLiteMoodStore(db)
	ctx := context.Background()

	happy := testutil.NewTestMoodEntry("Happy")
	sad := testutil.NewTestMoodEntry("Sad", testutil.AtTime("08:15 PM"))
	require.NoError(t, store.Append(ctx, happy))
	require.NoError(t, store.Append(ctx, sad))

	raws, err := store.ListEncoded(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{happy.Encode(), sad.Encode()}, raws)
}

func TestMoodStore_IdenticalEntriesCollapse(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSQLiteMoodStore(db)
	ctx := context.Background()

	e := testutil.NewTestMoodEntry("Happy")
	require.NoError(t, store.Append(ctx, e))
	require.NoError(t, store.Append(ctx, e))

	raws, err := store.ListEncoded(ctx)
	require.NoError(t, err)
	assert.Len(t, raws, 1)
}

func TestMoodStore_AppendRejectsSeparatorInField(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSQLiteMoodStore(db)

	e := testutil.NewTestMoodEntry("Happy|Sad")
	err := store.Append(context.Background(), e)
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
}

func TestMoodStore_RemoveByExactValue(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSQLiteMoodStore(db)
	ctx := context.Background()

	morning := testutil.NewTestMoodEntry("Happy")
	evening := testutil.NewTestMoodEntry("Happy", testutil.AtTime("09:00 PM"))
	require.NoError(t, store.Append(ctx, morning))
	require.NoError(t, store.Append(ctx, evening))

	require.NoError(t, store.Remove(ctx, morning))

	raws, err := store.ListEncoded(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{evening.Encode()}, raws)

	err = store.Remove(ctx, morning)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoodStore_ListKeepsMalformedRecords(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSQLiteMoodStore(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO mood_entries (entry, created_at) VALUES ('broken|record', 'x')`)
	require.NoError(t, err)

	raws, err := store.ListEncoded(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"broken|record"}, raws)
}

func TestMoodStore_Clear(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSQLiteMoodStore(db)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, testutil.NewTestMoodEntry("Happy")))
	require.NoError(t, store.Clear(ctx))

	raws, err := store.ListEncoded(ctx)
	require.NoError(t, err)
	assert.Empty(t, raws)
}
