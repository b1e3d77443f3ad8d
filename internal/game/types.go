// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - Letters: the set of guessed letters (A–Z bitset, copied by value).
//   - Session: everything one browser session knows about its games.
//   - State:   playing / won / lost.

package game

import "strings"

// MaxWrong is the number of wrong guesses that loses a game.
const MaxWrong = 6

// Placeholder masks letters that have not been revealed.
const Placeholder = "_"

// State is the coarse status of the current game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Mode tells classic games apart from the word of the day.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeDaily   Mode = "daily"
)

// Letters is a set of upper-case ASCII letters, one bit per letter.
type Letters uint32

// Has reports whether c is in the set. Non-letters are never members.
func (l Letters) Has(c byte) bool {
	if c < 'A' || c > 'Z' {
		return false
	}
	return l&(1<<(c-'A')) != 0
}

// With returns the set plus c.
func (l Letters) With(c byte) Letters {
	if c < 'A' || c > 'Z' {
		return l
	}
	return l | 1<<(c-'A')
}

// Len is the number of letters in the set.
func (l Letters) Len() int {
	n := 0
	for x := l; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// Slice lists the letters in alphabetical order.
func (l Letters) Slice() []string {
	out := make([]string, 0, l.Len())
	for c := byte('A'); c <= 'Z'; c++ {
		if l.Has(c) {
			out = append(out, string(c))
		}
	}
	return out
}

// String renders the set as "AEP".
func (l Letters) String() string { return strings.Join(l.Slice(), "") }

// Session holds the state of one player session.
// It contains only values, so a copy is independent of the original;
// every transition returns a new Session.
type Session struct {
	GameID   string // uuid of the current game
	Mode     Mode
	Date     string // YYYY-MM-DD, daily games only
	Word     string // secret word, upper case
	Category string

	Guessed      Letters
	WrongGuesses int
	HintsUsed    int

	Score       int // carried across games
	GamesPlayed int

	Credited bool // score already awarded for the current win
	Recorded bool // finished game written to history
}
