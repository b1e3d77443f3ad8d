package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordplay/assets"
	"github.com/robalobadob/wordplay/internal/database"
	"github.com/robalobadob/wordplay/internal/httpserver"
	"github.com/robalobadob/wordplay/internal/quotes"
	"github.com/robalobadob/wordplay/internal/store"
	"github.com/robalobadob/wordplay/internal/words"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON API for the hangman game and the quote picker.

Word and quote lists are loaded once at startup; a broken list stops the
server before it listens. Migrations run automatically.

Examples:
  hangman serve                 # Listen on $PORT (default 5175)
  hangman serve --port 8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}

	catalog, err := words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	book, err := quotes.Load(cfg.QuotesFile)
	if err != nil {
		return fmt.Errorf("load quotes: %w", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	if err := database.Migrate(cmd.Context(), db, assets.Migrations()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ncat, nwords := catalog.Stats()
	srv := httpserver.New(cfg, httpserver.Deps{
		Store:   store.NewMemoryStore(),
		DB:      db,
		Catalog: catalog,
		Quotes:  book,
	})
	log.Info().
		Str("port", cfg.Port).
		Int("categories", ncat).
		Int("words", nwords).
		Int("quotes", book.Len()).
		Msg("starting hangman server")
	return srv.Start(":" + cfg.Port)
}
