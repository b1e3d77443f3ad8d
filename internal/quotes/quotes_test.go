package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordplay/internal/rng"
)

func TestDefaultBookHasSevenQuotes(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, b.Len())
	assert.Equal(t, "🎯 Dream it. Wish it. Do it.", b.All()[4])
}

func TestInspireReturnsMember(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	all := b.All()
	for i := 0; i < 100; i++ {
		assert.Contains(t, all, b.Inspire())
	}
}

func TestInspireMayRepeat(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)

	b = b.WithRand(rng.Fixed(1))
	assert.Equal(t, b.Inspire(), b.Inspire())
}

func TestParseDropsBlankAndRejectsEmpty(t *testing.T) {
	b, err := Parse([]byte("quotes: [' ', 'Keep going.']\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Keep going."}, b.All())

	_, err = Parse([]byte("quotes: []\n"))
	assert.ErrorIs(t, err, ErrNoQuotes)
}
