// Package history records finished hangman games in SQLite and answers the
// questions built on top of them: a player's recent games, whether the daily
// word was already played, and the daily leaderboard.
package history

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// timeLayout is fixed width so finished_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Owner identifies who played: a signed-in user or an anonymous session.
// UserID wins when both are set.
type Owner struct {
	UserID string
	AnonID string
}

func (o Owner) clause() (string, any) {
	if o.UserID != "" {
		return `user_id=?`, o.UserID
	}
	return `anonymous_id=?`, o.AnonID
}

// Result is one finished game.
type Result struct {
	GameID       string    `json:"id"`
	Mode         string    `json:"mode"`
	Date         string    `json:"date"`
	Category     string    `json:"category"`
	Word         string    `json:"word"`
	WrongGuesses int       `json:"wrongGuesses"`
	HintsUsed    int       `json:"hintsUsed"`
	Won          bool      `json:"won"`
	FinishedAt   time.Time `json:"finishedAt"`
	Owner        Owner     `json:"-"`
}

// LBRow is one daily leaderboard line.
type LBRow struct {
	Player       string `json:"player"`
	WrongGuesses int    `json:"wrongGuesses"`
	HintsUsed    int    `json:"hintsUsed"`
}

// Store wraps the games table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts r. Recording the same game twice is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	if r.GameID == "" {
		return errors.New("history: missing game id")
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO games
            (id, user_id, anonymous_id, mode, date, category, word, wrong_guesses, hints_used, won, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, nullable(r.Owner.UserID), nullable(r.Owner.AnonID), r.Mode, r.Date, r.Category, r.Word,
		r.WrongGuesses, r.HintsUsed, r.Won, r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Recent lists the owner's games, newest first.
func (s *Store) Recent(ctx context.Context, o Owner, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 50
	}
	where, arg := o.clause()
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, mode, date, category, word, wrong_guesses, hints_used, won, finished_at
        FROM games WHERE `+where+`
        ORDER BY finished_at DESC
        LIMIT ?`, arg, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var r Result
		var finished string
		if err := rows.Scan(&r.GameID, &r.Mode, &r.Date, &r.Category, &r.Word,
			&r.WrongGuesses, &r.HintsUsed, &r.Won, &finished); err != nil {
			return nil, err
		}
		r.FinishedAt, _ = time.Parse(timeLayout, finished)
		r.Owner = o
		out = append(out, r)
	}
	return out, rows.Err()
}

// AlreadyPlayedDaily reports whether the owner finished the daily word for date.
func (s *Store) AlreadyPlayedDaily(ctx context.Context, o Owner, date string) (bool, error) {
	where, arg := o.clause()
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM games WHERE mode='daily' AND date=? AND `+where,
		date, arg,
	).Scan(&cnt)
	return cnt > 0, err
}

// DailyLeaderboard returns the best daily wins for date: fewest wrong
// guesses, then fewest hints, then earliest finish.
func (s *Store) DailyLeaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT COALESCE(u.username, 'guest'), g.wrong_guesses, g.hints_used
        FROM games g
        LEFT JOIN users u ON u.id = g.user_id
        WHERE g.mode='daily' AND g.date=? AND g.won=1
        ORDER BY g.wrong_guesses ASC, g.hints_used ASC, g.finished_at ASC
        LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Player, &r.WrongGuesses, &r.HintsUsed); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonymous moves an anonymous session's games onto a user account.
func (s *Store) ClaimAnonymous(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
