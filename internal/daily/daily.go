// Package daily schedules the hangman word of the day.
//
// Every player sees the same word on a given UTC date. The word is chosen by
// keying HMAC-SHA256 with a server salt over the date, so the schedule cannot
// be predicted from the word list alone.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordplay/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Puzzle is the word of the day for one date.
type Puzzle struct {
	Date     string
	Category string
	Word     string
}

// Schedule maps dates onto a fixed, ordered word list.
type Schedule struct {
	salt    []byte
	entries []words.Entry
}

// NewSchedule flattens c in file order. Editing the word file changes the
// schedule.
func NewSchedule(salt string, c *words.Catalog) Schedule {
	return Schedule{salt: []byte(salt), entries: c.All()}
}

// Len is the number of candidate words.
func (s Schedule) Len() int { return len(s.entries) }

// For returns the puzzle for the UTC date of t.
func (s Schedule) For(t time.Time) Puzzle {
	date := DateKey(t)
	if len(s.entries) == 0 {
		return Puzzle{Date: date}
	}
	e := s.entries[s.slot(date)]
	return Puzzle{Date: date, Category: e.Category, Word: e.Word}
}

func (s Schedule) slot(date string) int {
	mac := hmac.New(sha256.New, s.salt)
	mac.Write([]byte(date))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(len(s.entries)))
}
