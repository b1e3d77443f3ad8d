// internal/httpserver/server.go
//
// HTTP server wiring for the hangman + quote backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Quote endpoints: GET /quote, POST /quote/inspire.
//   - Hangman endpoints (optional auth): GET /hangman, POST /hangman/{new,guess,hint}.
//   - Daily word endpoints (optional auth): mounted under /daily.
//   - Auth + profile endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - Every browser gets an anonymous session cookie; hangman state is kept in
//     the session store under that ID and never written to disk. Requests on
//     the same session are serialized by a per-session lock.
//   - Finished games are recorded to SQLite for history, stats and the daily board.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordplay/internal/config"
	"github.com/robalobadob/wordplay/internal/daily"
	"github.com/robalobadob/wordplay/internal/history"
	"github.com/robalobadob/wordplay/internal/quotes"
	"github.com/robalobadob/wordplay/internal/rng"
	"github.com/robalobadob/wordplay/internal/store"
	"github.com/robalobadob/wordplay/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Store   store.Store
	DB      *sql.DB
	Catalog *words.Catalog
	Quotes  *quotes.Book
}

// Server bundles router, session store, catalogs and DB handle.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	store   store.Store
	locks   *store.Locks
	daily   daily.Schedule
	db      *sql.DB
	history *history.Store
	catalog *words.Catalog
	quotes  *quotes.Book

	hintIntn rng.Intn
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, d Deps) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		store:    d.Store,
		locks:    store.NewLocks(),
		daily:    daily.NewSchedule(cfg.DailySalt, d.Catalog),
		db:       d.DB,
		history:  history.NewStore(d.DB),
		catalog:  d.Catalog,
		quotes:   d.Quotes,
		hintIntn: rng.Crypto,
		now:      time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordplay-go",
			"endpoints": []string{"/health", "GET /quote", "POST /quote/inspire", "GET /hangman", "POST /hangman/new", "POST /hangman/guess", "POST /hangman/hint", "/daily/*", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		c, n := s.catalog.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"categories": c, "words": n, "quotes": s.quotes.Len()})
	})

	s.mountQuotes(s.r)

	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		s.mountHangman(r)
		s.mountDaily(r)
	})

	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------- responses ---------------------------------

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// jsonError writes {"error": code}.
func jsonError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
