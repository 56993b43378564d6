package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Store backends accepted by Settings.Store.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Settings are process-wide options read from the environment. Command-line
// flags override them.
type Settings struct {
	Store    string `env:"COMPOUND_STORE" envDefault:"sqlite"`
	DBPath   string `env:"COMPOUND_DB_PATH" envDefault:"compound_scenarios.db"`
	Format   string `env:"COMPOUND_FORMAT" envDefault:"console"`
	Locale   string `env:"COMPOUND_LOCALE" envDefault:"en-US"`
	Currency string `env:"COMPOUND_CURRENCY" envDefault:"$"`
	Debug    bool   `env:"COMPOUND_DEBUG" envDefault:"false"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

// LoadSettingsFrom parses Settings from an explicit environment map.
func LoadSettingsFrom(environ map[string]string) (Settings, error) {
	return parseSettings(env.Options{Environment: environ})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	s.Store = strings.ToLower(strings.TrimSpace(s.Store))
	if s.Store != StoreSQLite && s.Store != StoreMemory {
		return Settings{}, fmt.Errorf("COMPOUND_STORE must be %q or %q, got %q", StoreSQLite, StoreMemory, s.Store)
	}
	if s.Store == StoreSQLite && strings.TrimSpace(s.DBPath) == "" {
		return Settings{}, fmt.Errorf("COMPOUND_DB_PATH is required for the sqlite store")
	}
	return s, nil
}
