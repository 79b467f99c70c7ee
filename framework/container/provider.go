package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider bundles related registrations behind a two-phase lifecycle.
//
// Register runs first for every provider; Boot runs after ALL providers have
// registered, making it safe to resolve other services inside Boot.
//
//	type CacheProvider struct{ container.BaseProvider }
//
//	func (p *CacheProvider) Register(c *container.Container) {
//	    c.SetShared("cache", func(c *container.Container) any {
//	        settings := container.ResolveAs[*config.Settings](c, "config")
//	        return newCache(settings)
//	    })
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other services here — use Boot for that.
	Register(c *Container)

	// Boot is called after all providers are registered.
	Boot(c *Container)

	// Provides returns the service ids this provider registers. Used for
	// deferred (lazy) provider loading; nil means always eager.
	Provides() []string

	// IsDeferred reports whether the provider should load lazily, on the
	// first Get of one of its Provides() ids.
	IsDeferred() bool
}

// BaseProvider is an embeddable struct with no-op implementations of Boot,
// Provides, and IsDeferred. Embed it and override what you need.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container)  {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred ones.
type ProviderRegistry struct {
	c      *Container
	eager  []ServiceProvider
	booted bool
	seen   map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		c:    c,
		seen: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and runs its Register phase, unless the provider
// is deferred — then a lazy stand-in definition is installed for each id it
// provides, and the real registration happens on first Get.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.seen[provider] {
		return
	}
	r.seen[provider] = true

	if provider.IsDeferred() {
		r.interceptDeferred(provider)
		return
	}

	provider.Register(r.c)
	r.eager = append(r.eager, provider)

	if r.booted {
		provider.Boot(r.c)
	}
}

// interceptDeferred installs a stand-in for each deferred id. The first
// resolution triggers the provider's real Register (which replaces the
// stand-ins), an immediate Boot when the registry is already booted, and
// then resolves through the replacement definition.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	loaded := false
	for _, id := range provider.Provides() {
		id := id
		r.c.Set(id, func(c *Container) any {
			if !loaded {
				loaded = true
				provider.Register(c)
				if r.booted {
					provider.Boot(c)
				}
			}
			return c.Get(id)
		})
	}
}

// Boot runs the Boot phase on all eager providers. Call it after ALL
// providers have been registered; later calls are no-ops.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.c)
	}
}

// Booted reports whether Boot has run.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }
