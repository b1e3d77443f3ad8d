// internal/game/view.go
//
// Render payload for a session: what a client needs to draw the screen
// (masked word, gallows stage, keyboard, status line). No markup here.

package game

import "fmt"

// keyboardRows is the on-screen layout: 9, 9 and 8 keys.
var keyboardRows = []string{"ABCDEFGHI", "JKLMNOPQR", "STUVWXYZ"}

// gallows holds one drawing per wrong-guess count, 0..MaxWrong.
var gallows = [MaxWrong + 1]string{
	`
   --------
   |      |
   |
   |
   |
   |
`,
	`
   --------
   |      |
   |      O
   |
   |
   |
`,
	`
   --------
   |      |
   |      O
   |      |
   |
   |
`,
	`
   --------
   |      |
   |      O
   |     /|
   |
   |
`,
	`
   --------
   |      |
   |      O
   |     /|\
   |
   |
`,
	`
   --------
   |      |
   |      O
   |     /|\
   |     /
   |
`,
	`
   --------
   |      |
   |      O
   |     /|\
   |     / \
   |
`,
}

// Gallows returns the drawing for wrong wrong guesses, clamped to 0..MaxWrong.
func Gallows(wrong int) string {
	if wrong < 0 {
		wrong = 0
	}
	if wrong > MaxWrong {
		wrong = MaxWrong
	}
	return gallows[wrong]
}

// Key is one keyboard button.
type Key struct {
	Letter   string `json:"letter"`
	Disabled bool   `json:"disabled"`
}

// View is the render payload returned to clients.
type View struct {
	GameID        string   `json:"gameId"`
	Mode          Mode     `json:"mode"`
	Date          string   `json:"date,omitempty"`
	Category      string   `json:"category"`
	Display       string   `json:"display"`
	Length        int      `json:"length"`
	Gallows       string   `json:"gallows"`
	WrongGuesses  int      `json:"wrongGuesses"`
	MaxWrong      int      `json:"maxWrong"`
	Guessed       []string `json:"guessed"`
	Keyboard      [][]Key  `json:"keyboard"`
	Score         int      `json:"score"`
	GamesPlayed   int      `json:"gamesPlayed"`
	State         State    `json:"state"`
	HintAvailable bool     `json:"hintAvailable"`
	Answer        string   `json:"answer,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// View builds the render payload for s.
func (s Session) View() View {
	state := s.State()
	v := View{
		GameID:        s.GameID,
		Mode:          s.Mode,
		Date:          s.Date,
		Category:      s.Category,
		Display:       Mask(s.Word, s.Guessed),
		Length:        len(s.Word),
		Gallows:       Gallows(s.WrongGuesses),
		WrongGuesses:  s.WrongGuesses,
		MaxWrong:      MaxWrong,
		Guessed:       s.Guessed.Slice(),
		Keyboard:      keyboard(s.Guessed, state != StatePlaying),
		Score:         s.Score,
		GamesPlayed:   s.GamesPlayed,
		State:         state,
		HintAvailable: state == StatePlaying && s.Word != "" && s.Score >= 1,
	}
	switch state {
	case StateWon:
		v.Message = "Congratulations! You won!"
	case StateLost:
		v.Answer = s.Word
		v.Message = fmt.Sprintf("Game Over! The word was: %s", s.Word)
	}
	return v
}

// keyboard lays out the 26 letter keys. Guessed keys are disabled, and all
// keys are disabled once the game is over.
func keyboard(guessed Letters, locked bool) [][]Key {
	rows := make([][]Key, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]Key, len(row))
		for j := 0; j < len(row); j++ {
			keys[j] = Key{Letter: string(row[j]), Disabled: locked || guessed.Has(row[j])}
		}
		rows[i] = keys
	}
	return rows
}
