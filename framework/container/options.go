package container

import (
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-canister/framework/config"
)

// Option configures a Container at construction time.
type Option func(*Container)

// WithDefinitions registers initial definitions through the same path as
// Set. Ids are registered in sorted order so construction is deterministic.
func WithDefinitions(defs map[string]any) Option {
	return func(c *Container) {
		ids := make([]string, 0, len(defs))
		for id := range defs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			c.Set(id, defs[id])
		}
	}
}

// WithSharedDefinitions is WithDefinitions with every entry marked shared.
func WithSharedDefinitions(defs map[string]any) Option {
	return func(c *Container) {
		ids := make([]string, 0, len(defs))
		for id := range defs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			c.SetShared(id, defs[id])
		}
	}
}

// WithShallowClone switches non-shared object-valued definitions from deep
// to shallow copy-on-resolve semantics.
func WithShallowClone() Option {
	return func(c *Container) {
		c.deepClone = false
	}
}

// WithLogger installs a logger for container debug events. The default is a
// no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Container) {
		c.log = log
	}
}

// FromEnv loads container settings from the environment (and optional .env
// files): copy semantics from CANISTER_DEEP_CLONE, debug logging to stderr
// per CANISTER_DEBUG / CANISTER_LOG_LEVEL.
func FromEnv(envFiles ...string) Option {
	return func(c *Container) {
		s := config.Load(envFiles...)
		c.deepClone = s.DeepClone
		if s.Debug {
			c.log = s.Logger(os.Stderr)
		}
	}
}
