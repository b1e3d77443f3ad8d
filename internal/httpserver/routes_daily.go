// internal/httpserver/routes_daily.go
//
// HTTP routes for the word of the day.
// Exposes two endpoints under /daily:
//   - POST /daily/new         → start (or resume) today's word in the caller's session
//   - GET  /daily/leaderboard → best wins for today (or ?date=YYYY-MM-DD)
//
// Each player finishes the daily word at most once per UTC day; the check
// runs against recorded history, so it survives session loss.
// Guesses and hints go through the regular /hangman endpoints.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/internal/daily"
	"github.com/robalobadob/wordplay/internal/game"
	"github.com/robalobadob/wordplay/internal/history"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/leaderboard", s.handleDailyLeaderboard)
	})
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	Date   string     `json:"date"`
	Played bool       `json:"played"`
	Game   *game.View `json:"game,omitempty"`
}

// handleDailyNew starts today's word unless it was already finished.
// An unfinished daily game for today is resumed as is; one left over from an
// earlier date is recorded as lost first.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	id, sess, unlock, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	defer unlock()
	today := s.daily.For(s.now())
	date := today.Date

	played, err := s.history.AlreadyPlayedDaily(r.Context(), s.owner(r, id), date)
	if err != nil {
		log.Error().Err(err).Msg("daily played check")
		jsonError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
		return
	}

	if !(sess.Mode == game.ModeDaily && sess.Date == date && sess.Word != "") {
		s.forfeitDaily(r, id, sess)
		sess = sess.StartDaily(date, today.Category, today.Word)
	}
	if err := s.store.Save(r.Context(), id, sess); err != nil {
		log.Error().Err(err).Msg("save session")
		jsonError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	v := sess.View()
	writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Game: &v})
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string          `json:"date"`
	Top  []history.LBRow `json:"top"`
}

// handleDailyLeaderboard returns the top 20 for the given date (default today).
func (s *Server) handleDailyLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now())
	}
	rows, err := s.history.DailyLeaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		jsonError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
