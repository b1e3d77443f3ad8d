// hangman serves the hangman game and quote picker over HTTP.
//
// Usage:
//
//	hangman                 - Same as "hangman serve"
//	hangman serve           - Start the HTTP API
//	hangman quote           - Print one random quote
//	hangman categories      - List word categories
//	hangman migrate         - Apply database migrations and exit
//
// Global flags:
//
//	--db <path>   - Override DB_PATH
//	--env <file>  - Extra .env file to load before the environment is read
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordplay/internal/config"
)

var (
	flagDBPath  string
	flagEnvFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman and quote picker backend",
	Long: `A small word-game backend: a hangman game with score and hints,
a word of the day, and a random inspirational quote.

Examples:
  hangman serve --port 8080
  hangman quote
  hangman categories
  hangman migrate --db ./data/hangman.db`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the SQLite database (overrides DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", "", "Additional .env file to load")
	rootCmd.Flags().StringVar(&flagPort, "port", "", "Port to listen on (overrides PORT)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig reads the environment, applies global flags and sets up logging.
func loadConfig() (config.Config, error) {
	if flagEnvFile != "" {
		if err := godotenv.Load(flagEnvFile); err != nil {
			return config.Config{}, fmt.Errorf("load %s: %w", flagEnvFile, err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	setupLogging(cfg)
	return cfg, nil
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.Production() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
