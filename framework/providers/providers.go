// Package providers ships the built-in service providers: environment-backed
// settings and a logger derived from them.
package providers

import (
	"io"
	"os"

	"github.com/km-arc/go-canister/framework/config"
	"github.com/km-arc/go-canister/framework/container"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads container settings from .env / the environment
// and binds them as the shared "config" service.
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *container.Container) {
	envFiles := p.EnvFiles
	c.SetShared("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider binds a zerolog.Logger as the shared "logger"
// service, honoring the level from "config". Out defaults to stderr.
type LoggingServiceProvider struct {
	container.BaseProvider
	Out io.Writer
}

func (p *LoggingServiceProvider) Register(c *container.Container) {
	out := p.Out
	if out == nil {
		out = os.Stderr
	}
	c.SetShared("logger", func(c *container.Container) any {
		settings := container.ResolveAs[*config.Settings](c, "config")
		return settings.Logger(out)
	})
}
