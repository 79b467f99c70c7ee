package container

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/rs/zerolog"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the service registry. It owns the id → Definition mapping,
// drives compilation, and owns the tag store and label registry.
//
// A Container is created once per application composition root. It provides
// no internal locking: all state is safe only under single-goroutine or
// externally-synchronized access. Definitions live for the container's
// lifetime; tag and label entries are never removed.
type Container struct {
	definitions map[string]*Definition
	tags        map[string]*tagBucket
	labels      map[string]Label

	// fixed set of the container's own exported method names, computed once
	// at construction
	reserved map[string]struct{}

	// copy semantics for non-shared object-valued definitions
	deepClone bool

	log zerolog.Logger
}

// New creates a container. Options register initial definitions, switch the
// copy semantics, or install a logger.
func New(opts ...Option) *Container {
	c := &Container{
		definitions: make(map[string]*Definition),
		tags:        make(map[string]*tagBucket),
		labels:      make(map[string]Label),
		deepClone:   true,
		log:         zerolog.Nop(),
	}
	c.reserved = reservedNames(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Set wraps rawSpec in a new transient Definition, compiles it, and stores it
// under id, replacing any prior entry. Configurators run after compilation,
// before Set returns — this is the injection point used by WithTag and
// WithLabel.
func (c *Container) Set(id string, rawSpec any, cfgs ...Configurator) *Definition {
	return c.install(id, c.Create(rawSpec), cfgs)
}

// SetShared is Set with the Definition marked shared before compiling: the
// resolver runs at most once and every subsequent Get returns the identical
// instance.
func (c *Container) SetShared(id string, rawSpec any, cfgs ...Configurator) *Definition {
	d := c.Create(rawSpec)
	d.shared = true
	return c.install(id, d, cfgs)
}

// SetRaw registers a pre-built Definition (from Create) directly.
func (c *Container) SetRaw(id string, d *Definition, cfgs ...Configurator) *Definition {
	if d == nil {
		panic(&NotADefinitionError{})
	}
	if d.owner != c {
		panic(&ForeignDefinitionError{ID: id})
	}
	return c.install(id, d, cfgs)
}

// Create builds a Definition without registering it, for advanced
// composition (override context/args, then SetRaw).
func (c *Container) Create(rawSpec any) *Definition {
	d := &Definition{owner: c}
	d.configure(rawSpec)
	return d
}

// Register invokes provider(container) — the convention for bundling related
// Set calls — and returns whatever the provider returns.
func (c *Container) Register(provider func(*Container) any) any {
	return provider(c)
}

func (c *Container) install(id string, d *Definition, cfgs []Configurator) *Definition {
	if id == "" {
		panic(ErrEmptyID)
	}
	d.Compile(id)
	c.definitions[id] = d
	c.log.Debug().Str("service", id).Bool("shared", d.shared).Msg("service registered")
	for _, cfg := range cfgs {
		if cfg != nil {
			cfg(d, c)
		}
	}
	return d
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves a service by id. Unknown ids panic with *UndefinedServiceError.
func (c *Container) Get(id string) any {
	return c.mustDefinition(id).resolver()
}

// TryGet is the non-panicking variant of Get: any failure during resolution
// (unknown service, undefined label, detected cycle) comes back as an error.
func (c *Container) TryGet(id string) (v any, err error) {
	d, ok := c.definitions[id]
	if !ok {
		return nil, &UndefinedServiceError{ID: id}
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			v, err = nil, e
		}
	}()
	return d.resolver(), nil
}

// GetResolver returns the bare resolver function without invoking it,
// useful for deferred calls.
func (c *Container) GetResolver(id string) Resolver {
	return c.mustDefinition(id).resolver
}

// GetDefinition returns the Definition registered under id.
func (c *Container) GetDefinition(id string) *Definition {
	return c.mustDefinition(id)
}

// Has reports whether id is registered.
func (c *Container) Has(id string) bool {
	_, ok := c.definitions[id]
	return ok
}

// Definitions returns the registered service ids, sorted.
func (c *Container) Definitions() []string {
	out := make([]string, 0, len(c.definitions))
	for id := range c.definitions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsReserved reports whether id collides with one of the container's own
// method names. Reserved ids are perfectly resolvable through Get; the check
// exists for callers generating accessor shims around the container.
func (c *Container) IsReserved(id string) bool {
	_, ok := c.reserved[id]
	return ok
}

func (c *Container) mustDefinition(id string) *Definition {
	d, ok := c.definitions[id]
	if !ok {
		panic(&UndefinedServiceError{ID: id})
	}
	return d
}

// reservedNames collects the container's exported method set once, at
// construction.
func reservedNames(c *Container) map[string]struct{} {
	t := reflect.TypeOf(c)
	set := make(map[string]struct{}, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		set[t.Method(i).Name] = struct{}{}
	}
	return set
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// ResolveAs resolves a service and type-asserts the result.
//
//	// Instead of: log := c.Get("logger").(zerolog.Logger)
//	// Write:      log := container.ResolveAs[zerolog.Logger](c, "logger")
func ResolveAs[T any](c *Container, id string) T {
	v := c.Get(id)
	typed, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("container: ResolveAs[%T]: service [%s] resolved to %T", *new(T), id, v))
	}
	return typed
}

// TryResolveAs is like ResolveAs but returns (T, bool) without panicking on
// a type mismatch.
func TryResolveAs[T any](c *Container, id string) (T, bool) {
	v, err := c.TryGet(id)
	if err != nil {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
