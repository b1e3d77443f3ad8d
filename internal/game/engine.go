// internal/game/engine.go
//
// Hangman rules for a single session.
// Responsibilities:
//   - Start new games (random category/word, or the daily word).
//   - Apply letter guesses and keep the wrong-guess counter in step.
//   - Mask the word for display.
//   - Detect win/loss and award the win point once per game.
//   - Trade a point for a revealed letter (hint).
//
// All transitions take a Session by value and return the next one.

package game

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/wordplay/internal/rng"
)

var (
	ErrNoGame        = errors.New("no game in progress")
	ErrGameOver      = errors.New("game finished")
	ErrInvalidLetter = errors.New("invalid letter")
	ErrNoCredit      = errors.New("hint costs 1 point")
)

// Picker chooses a category and a word from it.
type Picker interface {
	Pick() (category, word string)
}

// NewSession returns an empty session with no game started.
func NewSession() Session {
	return Session{}
}

// StartNewGame picks a fresh word and resets per-game state.
// Score carries over; GamesPlayed increments.
func (s Session) StartNewGame(p Picker) Session {
	category, word := p.Pick()
	return s.start(ModeClassic, "", category, word)
}

// StartDaily begins the word of the day for date.
func (s Session) StartDaily(date, category, word string) Session {
	return s.start(ModeDaily, date, category, word)
}

func (s Session) start(mode Mode, date, category, word string) Session {
	return Session{
		GameID:      uuid.NewString(),
		Mode:        mode,
		Date:        date,
		Word:        strings.ToUpper(word),
		Category:    category,
		Score:       s.Score,
		GamesPlayed: s.GamesPlayed + 1,
	}
}

// Guess records letter. Guessing a letter twice changes nothing.
// A letter absent from the word costs one wrong guess.
func (s Session) Guess(letter string) (Session, error) {
	c, err := normalizeLetter(letter)
	if err != nil {
		return s, err
	}
	if s.Word == "" {
		return s, ErrNoGame
	}
	if s.Guessed.Has(c) {
		return s, nil
	}
	if s.State() != StatePlaying {
		return s, ErrGameOver
	}

	s.Guessed = s.Guessed.With(c)
	if strings.IndexByte(s.Word, c) < 0 {
		s.WrongGuesses++
	}
	return s.settle(), nil
}

// Hint reveals one unguessed letter of the word at the cost of one point.
// Each unrevealed position is equally likely, so repeated letters weigh more.
// When nothing is left to reveal the session is returned unchanged and
// letter is 0.
func (s Session) Hint(intn rng.Intn) (next Session, letter byte, err error) {
	if s.Word == "" {
		return s, 0, ErrNoGame
	}
	if s.Score < 1 {
		return s, 0, ErrNoCredit
	}
	var hidden []byte
	for i := 0; i < len(s.Word); i++ {
		if !s.Guessed.Has(s.Word[i]) {
			hidden = append(hidden, s.Word[i])
		}
	}
	if len(hidden) == 0 {
		return s, 0, nil
	}
	if s.State() != StatePlaying {
		return s, 0, ErrGameOver
	}

	letter = hidden[intn(len(hidden))]
	s.Guessed = s.Guessed.With(letter)
	s.Score--
	s.HintsUsed++
	return s.settle(), letter, nil
}

// settle awards the win point the first time a game is seen won.
func (s Session) settle() Session {
	if s.Won() && !s.Credited {
		s.Score++
		s.Credited = true
	}
	return s
}

// Won reports whether every character of the word has been guessed.
func (s Session) Won() bool {
	if s.Word == "" {
		return false
	}
	for i := 0; i < len(s.Word); i++ {
		if !s.Guessed.Has(s.Word[i]) {
			return false
		}
	}
	return true
}

// Lost reports whether the wrong-guess limit has been reached.
func (s Session) Lost() bool { return s.WrongGuesses >= MaxWrong }

// State reports playing/won/lost. A completed word wins even on the last life.
func (s Session) State() State {
	switch {
	case s.Won():
		return StateWon
	case s.Lost():
		return StateLost
	default:
		return StatePlaying
	}
}

// Finished is true once the game is won or lost.
func (s Session) Finished() bool { return s.State() != StatePlaying }

// Mask shows guessed characters and a placeholder for the rest,
// separated by single spaces: Mask("APPLE", {A,P,E}) == "A P P _ E".
func Mask(word string, guessed Letters) string {
	if word == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(2 * len(word))
	for i := 0; i < len(word); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if guessed.Has(word[i]) {
			b.WriteByte(word[i])
		} else {
			b.WriteString(Placeholder)
		}
	}
	return b.String()
}

// normalizeLetter accepts exactly one ASCII letter in either case.
func normalizeLetter(s string) (byte, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidLetter
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0, ErrInvalidLetter
	}
	return c, nil
}
