package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordplay/assets"
	"github.com/robalobadob/wordplay/internal/database"
)

func newStore(t *testing.T) (*Store, func(id, name string)) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, assets.Migrations()))

	addUser := func(id, name string) {
		_, err := db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
			id, name, "x", time.Now().UTC().Format(time.RFC3339))
		require.NoError(t, err)
	}
	return NewStore(db), addUser
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	anon := Owner{AnonID: "anon-1"}
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	require.NoError(t, st.Record(ctx, Result{GameID: "g1", Mode: "classic", Date: "2026-10-19", Category: "Fruits", Word: "MANGO", Won: true, FinishedAt: base, Owner: anon}))
	require.NoError(t, st.Record(ctx, Result{GameID: "g2", Mode: "classic", Date: "2026-10-19", Category: "Sports", Word: "TENNIS", WrongGuesses: 6, FinishedAt: base.Add(time.Minute), Owner: anon}))
	// duplicate is ignored
	require.NoError(t, st.Record(ctx, Result{GameID: "g1", Mode: "classic", Date: "2026-10-19", Category: "Fruits", Word: "MANGO", Owner: anon}))
	require.NoError(t, st.Record(ctx, Result{GameID: "g3", Mode: "classic", Date: "2026-10-19", Category: "Fruits", Word: "APPLE", Owner: Owner{AnonID: "other"}}))

	got, err := st.Recent(ctx, anon, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "g2", got[0].GameID)
	assert.False(t, got[0].Won)
	assert.Equal(t, 6, got[0].WrongGuesses)
	assert.Equal(t, "g1", got[1].GameID)
	assert.True(t, got[1].Won)
	assert.True(t, base.Equal(got[1].FinishedAt))
}

func TestRecordNeedsID(t *testing.T) {
	st, _ := newStore(t)
	assert.Error(t, st.Record(context.Background(), Result{}))
}

func TestDailyPlayedAndLeaderboard(t *testing.T) {
	ctx := context.Background()
	st, addUser := newStore(t)
	addUser("u1", "alice")
	addUser("u2", "bob")
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	date := "2026-10-19"

	played, err := st.AlreadyPlayedDaily(ctx, Owner{UserID: "u1"}, date)
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, st.Record(ctx, Result{GameID: "d1", Mode: "daily", Date: date, Word: "MANGO", Won: true, WrongGuesses: 2, FinishedAt: base, Owner: Owner{UserID: "u1"}}))
	require.NoError(t, st.Record(ctx, Result{GameID: "d2", Mode: "daily", Date: date, Word: "MANGO", Won: true, WrongGuesses: 1, HintsUsed: 1, FinishedAt: base.Add(time.Second), Owner: Owner{UserID: "u2"}}))
	require.NoError(t, st.Record(ctx, Result{GameID: "d3", Mode: "daily", Date: date, Word: "MANGO", Won: true, WrongGuesses: 1, FinishedAt: base.Add(2 * time.Second), Owner: Owner{AnonID: "a1"}}))
	require.NoError(t, st.Record(ctx, Result{GameID: "d4", Mode: "daily", Date: date, Word: "MANGO", Won: false, WrongGuesses: 6, FinishedAt: base, Owner: Owner{AnonID: "a2"}}))
	require.NoError(t, st.Record(ctx, Result{GameID: "c1", Mode: "classic", Date: date, Word: "APPLE", Won: true, FinishedAt: base, Owner: Owner{AnonID: "a3"}}))

	played, err = st.AlreadyPlayedDaily(ctx, Owner{UserID: "u1"}, date)
	require.NoError(t, err)
	assert.True(t, played)
	played, err = st.AlreadyPlayedDaily(ctx, Owner{AnonID: "a3"}, date)
	require.NoError(t, err)
	assert.False(t, played, "classic games do not count")

	top, err := st.DailyLeaderboard(ctx, date, 0)
	require.NoError(t, err)
	assert.Equal(t, []LBRow{
		{Player: "guest", WrongGuesses: 1, HintsUsed: 0},
		{Player: "bob", WrongGuesses: 1, HintsUsed: 1},
		{Player: "alice", WrongGuesses: 2, HintsUsed: 0},
	}, top)

	empty, err := st.DailyLeaderboard(ctx, "2000-01-01", 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestClaimAnonymous(t *testing.T) {
	ctx := context.Background()
	st, addUser := newStore(t)
	addUser("u1", "alice")

	require.NoError(t, st.Record(ctx, Result{GameID: "g1", Mode: "classic", Date: "2026-10-19", Word: "MANGO", Owner: Owner{AnonID: "anon"}}))
	require.NoError(t, st.ClaimAnonymous(ctx, "anon", "u1"))
	require.NoError(t, st.ClaimAnonymous(ctx, "", "u1"))

	mine, err := st.Recent(ctx, Owner{UserID: "u1"}, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	left, err := st.Recent(ctx, Owner{AnonID: "anon"}, 0)
	require.NoError(t, err)
	assert.Empty(t, left)
}
