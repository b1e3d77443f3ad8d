// internal/config/config.go
//
// Runtime configuration for the server and CLI.
// Values come from the process environment; a local .env file is loaded first
// in development so the same variables can live next to the binary.
//
// Environment variables:
//   PORT, LOG_LEVEL, APP_ENV
//   DB_PATH
//   JWT_SECRET, JWT_EXPIRES_DAYS, COOKIE_NAME, SESSION_COOKIE, CLIENT_ORIGIN
//   WORDS_FILE, QUOTES_FILE, DAILY_SALT

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	Port     string `env:"PORT"      envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV"   envDefault:"development"`

	DBPath string `env:"DB_PATH" envDefault:"./data/hangman.db"`

	JWTSecret      string `env:"JWT_SECRET"       envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME"      envDefault:"hangman_token"`
	SessionCookie  string `env:"SESSION_COOKIE"   envDefault:"hangman_session"`
	ClientOrigin   string `env:"CLIENT_ORIGIN"    envDefault:"http://localhost:5173"`

	WordsFile  string `env:"WORDS_FILE"`
	QuotesFile string `env:"QUOTES_FILE"`
	DailySalt  string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTExpiresDays <= 0 {
		cfg.JWTExpiresDays = 14
	}
	return cfg, nil
}

// Production reports whether cookies must be Secure / SameSite=None.
func (c Config) Production() bool { return c.AppEnv == "production" }

// TokenTTL is the lifetime of an issued auth token.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
