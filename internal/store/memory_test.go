package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordplay/internal/game"
)

func TestMemorySaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	s := game.Session{Word: "MANGO", Score: 2}
	require.NoError(t, st.Save(ctx, "a", s))

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	require.NoError(t, st.Delete(ctx, "a"))
	_, err = st.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, st.Delete(ctx, "a"))
}

func TestMemorySessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Save(ctx, "a", game.Session{Score: 1}))
	require.NoError(t, st.Save(ctx, "b", game.Session{Score: 7}))

	a, err := st.Get(ctx, "a")
	require.NoError(t, err)
	a.Score = 100

	again, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Score)

	b, err := st.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 7, b.Score)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i%4)
			_ = st.Save(ctx, id, game.Session{GamesPlayed: i})
			_, _ = st.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		_, err := st.Get(ctx, fmt.Sprintf("s%d", i))
		assert.NoError(t, err)
	}
}
