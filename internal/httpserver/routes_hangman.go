// internal/httpserver/routes_hangman.go
//
// Hangman endpoints. Each request loads the caller's session, applies one
// transition and answers with the render payload (game.View):
//   - GET  /hangman        → current game; starts one if the session has none
//   - POST /hangman/new    → new random word (score carries over)
//   - POST /hangman/guess  → {"letter":"A"}
//   - POST /hangman/hint   → reveal a letter for 1 point

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/internal/daily"
	"github.com/robalobadob/wordplay/internal/game"
	"github.com/robalobadob/wordplay/internal/history"
	"github.com/robalobadob/wordplay/internal/store"
)

func (s *Server) mountHangman(r chi.Router) {
	r.Route("/hangman", func(r chi.Router) {
		r.Get("/", s.handleCurrent)
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Post("/hint", s.handleHint)
	})
}

// handleCurrent returns the session's game, starting one on first visit.
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	id, sess, unlock, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	defer unlock()
	if sess.Word == "" {
		sess = sess.StartNewGame(s.catalog)
	}
	s.respond(w, r, id, sess, "")
}

// handleNewGame starts a classic game. An unfinished daily game it replaces
// is recorded as lost, so today's word cannot be restarted.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	id, sess, unlock, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	defer unlock()
	s.forfeitDaily(r, id, sess)
	s.respond(w, r, id, sess.StartNewGame(s.catalog), "")
}

type guessReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_json")
		return
	}
	id, sess, unlock, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	defer unlock()
	next, err := sess.Guess(req.Letter)
	if err != nil {
		gameError(w, err)
		return
	}
	s.respond(w, r, id, next, "")
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	id, sess, unlock, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	defer unlock()
	next, letter, err := sess.Hint(s.hintIntn)
	if err != nil {
		gameError(w, err)
		return
	}
	msg := ""
	if letter != 0 {
		msg = fmt.Sprintf("Hint: The word contains the letter '%c'", letter)
	}
	s.respond(w, r, id, next, msg)
}

// ------------------------------ session glue --------------------------------

// loadSession locks the caller's session and returns its ID and state. A
// missing session is a fresh one. The caller must call unlock once the next
// state is saved. On store failure the error is written, the lock released
// and ok is false.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (string, game.Session, func(), bool) {
	id := s.ensureSessionID(w, r)
	unlock := s.locks.Lock(id)
	sess, err := s.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return id, game.NewSession(), unlock, true
	case err != nil:
		unlock()
		log.Error().Err(err).Msg("load session")
		jsonError(w, http.StatusInternalServerError, "load_failed")
		return "", game.Session{}, nil, false
	}
	return id, sess, unlock, true
}

// respond records a newly finished game, saves the session and writes its view.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, id string, sess game.Session, msg string) {
	if sess.Finished() && !sess.Recorded {
		s.recordFinished(r, id, sess, sess.State() == game.StateWon)
		sess.Recorded = true
	}
	if err := s.store.Save(r.Context(), id, sess); err != nil {
		log.Error().Err(err).Msg("save session")
		jsonError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	v := sess.View()
	if msg != "" {
		v.Message = msg
	}
	writeJSON(w, http.StatusOK, v)
}

// forfeitDaily records an unfinished daily game as lost before it is replaced.
func (s *Server) forfeitDaily(r *http.Request, sessionID string, sess game.Session) {
	if sess.Mode != game.ModeDaily || sess.Word == "" || sess.Finished() || sess.Recorded {
		return
	}
	log.Info().Str("gameId", sess.GameID).Str("date", sess.Date).Msg("daily game abandoned")
	s.recordFinished(r, sessionID, sess, false)
}

// recordFinished writes the game to history and bumps user stats.
// Failures are logged; the player still gets their result.
func (s *Server) recordFinished(r *http.Request, sessionID string, sess game.Session, won bool) {
	owner := s.owner(r, sessionID)
	date := sess.Date
	if date == "" {
		date = daily.DateKey(s.now())
	}
	res := history.Result{
		GameID:       sess.GameID,
		Mode:         string(sess.Mode),
		Date:         date,
		Category:     sess.Category,
		Word:         sess.Word,
		WrongGuesses: sess.WrongGuesses,
		HintsUsed:    sess.HintsUsed,
		Won:          won,
		FinishedAt:   s.now(),
		Owner:        owner,
	}
	if err := s.history.Record(r.Context(), res); err != nil {
		log.Warn().Err(err).Str("gameId", sess.GameID).Msg("record game")
		return
	}
	if owner.UserID != "" {
		if err := s.bumpStats(r.Context(), owner.UserID, res.Won); err != nil {
			log.Warn().Err(err).Str("user", owner.UserID).Msg("bump stats")
		}
	}
}

// owner is the signed-in user if any, else the anonymous session.
func (s *Server) owner(r *http.Request, sessionID string) history.Owner {
	if me := currentUser(r); me != nil {
		return history.Owner{UserID: me.ID}
	}
	return history.Owner{AnonID: sessionID}
}

// gameError maps engine errors onto HTTP statuses.
func gameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidLetter):
		jsonError(w, http.StatusBadRequest, "invalid_letter")
	case errors.Is(err, game.ErrNoGame):
		jsonError(w, http.StatusConflict, "no_game")
	case errors.Is(err, game.ErrGameOver):
		jsonError(w, http.StatusConflict, "game_over")
	case errors.Is(err, game.ErrNoCredit):
		jsonError(w, http.StatusPaymentRequired, "insufficient_score")
	default:
		log.Error().Err(err).Msg("game transition")
		jsonError(w, http.StatusInternalServerError, "internal")
	}
}
