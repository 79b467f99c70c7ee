package providers_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-canister/framework/config"
	"github.com/km-arc/go-canister/framework/container"
	"github.com/km-arc/go-canister/framework/providers"
)

func newBooted(t *testing.T, out *bytes.Buffer) *container.Container {
	t.Helper()
	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Register(&providers.ConfigServiceProvider{EnvFiles: []string{"testdata/absent.env"}})
	reg.Register(&providers.LoggingServiceProvider{Out: out})
	reg.Boot()
	return c
}

func TestConfigProvider_BindsSharedSettings(t *testing.T) {
	t.Setenv("CANISTER_LOG_LEVEL", "warn")
	c := newBooted(t, &bytes.Buffer{})

	a := container.ResolveAs[*config.Settings](c, "config")
	b := container.ResolveAs[*config.Settings](c, "config")

	if a != b {
		t.Error("config should be a shared service")
	}
	if a.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q, want 'warn'", a.LogLevel)
	}
}

func TestLoggingProvider_HonorsConfiguredLevel(t *testing.T) {
	t.Setenv("CANISTER_LOG_LEVEL", "warn")
	t.Setenv("CANISTER_DEBUG", "")
	var buf bytes.Buffer
	c := newBooted(t, &buf)

	log := container.ResolveAs[zerolog.Logger](c, "logger")
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info output should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn output should pass at warn level")
	}
}
