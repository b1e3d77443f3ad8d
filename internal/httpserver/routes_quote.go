// internal/httpserver/routes_quote.go
//
// Quote picker endpoints:
//   - GET  /quote         → the placeholder prompt (no pick requested yet)
//   - POST /quote/inspire → one quote drawn uniformly at random

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordplay/internal/quotes"
)

type quoteRes struct {
	Quote    string `json:"quote"`
	Inspired bool   `json:"inspired"`
}

func (s *Server) mountQuotes(r chi.Router) {
	r.Get("/quote", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, quoteRes{Quote: quotes.Prompt})
	})
	r.Post("/quote/inspire", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, quoteRes{Quote: s.quotes.Inspire(), Inspired: true})
	})
}
