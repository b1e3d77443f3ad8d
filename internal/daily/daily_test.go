package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordplay/internal/words"
)

func catalog(t *testing.T) *words.Catalog {
	t.Helper()
	c, err := words.Load("")
	require.NoError(t, err)
	return c
}

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(ts))
}

func TestScheduleStableWithinDay(t *testing.T) {
	c := catalog(t)
	s := NewSchedule("salt", c)
	day := time.Date(2026, 10, 19, 0, 30, 0, 0, time.UTC)

	p := s.For(day)
	assert.Equal(t, "2026-10-19", p.Date)
	assert.Equal(t, p, s.For(day.Add(23*time.Hour)))
	assert.True(t, c.Contains(p.Word))
	assert.NotEmpty(t, p.Category)

	// a fresh schedule over the same list agrees
	assert.Equal(t, p, NewSchedule("salt", c).For(day))
}

func TestScheduleVariesAcrossDays(t *testing.T) {
	s := NewSchedule("salt", catalog(t))
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for d := 0; d < 60; d++ {
		seen[s.For(start.AddDate(0, 0, d)).Word] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestScheduleDependsOnSalt(t *testing.T) {
	c := catalog(t)
	a, b := NewSchedule("one", c), NewSchedule("two", c)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differ := false
	for d := 0; d < 30 && !differ; d++ {
		day := start.AddDate(0, 0, d)
		differ = a.For(day).Word != b.For(day).Word
	}
	assert.True(t, differ)
}

func TestScheduleSingleWord(t *testing.T) {
	c, err := words.Parse([]byte("categories:\n  - name: Fruits\n    words: [mango]\n"))
	require.NoError(t, err)
	s := NewSchedule("salt", c)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, Puzzle{Date: "2026-10-19", Category: "Fruits", Word: "MANGO"},
		s.For(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))
}
