package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordplay/internal/game"
)

func TestLocksSerializeReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	locks := NewLocks()
	require.NoError(t, st.Save(ctx, "a", game.Session{}))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("a")
			defer unlock()
			s, err := st.Get(ctx, "a")
			if err != nil {
				return
			}
			s.Score++
			_ = st.Save(ctx, "a", s)
		}()
	}
	wg.Wait()

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Score)
	assert.Zero(t, locks.Len())
}

func TestLocksAreIndependentPerKey(t *testing.T) {
	locks := NewLocks()
	unlockA := locks.Lock("a")
	// b must not wait on a
	unlockB := locks.Lock("b")
	assert.Equal(t, 2, locks.Len())
	unlockB()
	unlockA()
	assert.Zero(t, locks.Len())
}
