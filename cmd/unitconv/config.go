package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// config holds the environment defaults of unitconv. Flags override them.
type config struct {
	Locale    string     `env:"UNITCONV_LOCALE" envDefault:"en"`
	LogLevel  slog.Level `env:"UNITCONV_LOG_LEVEL" envDefault:"WARN"`
	CacheSize int        `env:"UNITCONV_CACHE_SIZE" envDefault:"256"`
}

// loadConfig parses environ, a KEY=value list as returned by os.Environ.
func loadConfig(environ []string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// parseLocale resolves a BCP 47 tag such as "de" or "en-US".
func parseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", s, err)
	}
	return tag, nil
}
