package config

import (
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Settings holds the container runtime configuration.
type Settings struct {
	// DeepClone controls the copy semantics for non-shared object-valued
	// services: true → deep copies, false → shallow top-level copies.
	DeepClone bool

	// Debug enables debug logging of registrations and resolutions.
	Debug bool

	// LogLevel is a zerolog level name: trace | debug | info | warn | error.
	LogLevel string
}

// Load reads .env (if present) and populates Settings from environment
// variables. Call once at bootstrap: settings := config.Load()
func Load(envFiles ...string) *Settings {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist outside local development
	_ = godotenv.Load(files...)

	return &Settings{
		DeepClone: envBool("CANISTER_DEEP_CLONE", true),
		Debug:     envBool("CANISTER_DEBUG", false),
		LogLevel:  env("CANISTER_LOG_LEVEL", "info"),
	}
}

// Logger builds a zerolog.Logger writing to w at the configured level.
// Unknown level names fall back to info.
func (s *Settings) Logger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if s.Debug && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
