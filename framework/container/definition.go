package container

import (
	"slices"

	"github.com/km-arc/go-canister/framework/clone"
)

// ── Resolver & factory types ──────────────────────────────────────────────────

// Resolver is a zero-argument callable produced by compiling a Definition.
// Invoking it yields the service value, runs attached label callbacks, and —
// for shared definitions — consults the memoized result.
type Resolver func() any

// Factory is the full factory form: invoked with the definition's context
// (the owning container unless overridden via SetContext) and its bound
// arguments, resolved once at compile time.
type Factory func(ctx any, args ...any) any

// memoization state for shared definitions — transitioned exactly once
type memoState int

const (
	uncomputed memoState = iota
	computed
)

// ── Definition ────────────────────────────────────────────────────────────────

// Definition wraps one service's raw specification — a value, a factory
// function, or another Definition — together with its construction context,
// bound arguments, attached labels and shared/transient mode. Compiling a
// Definition installs its Resolver; a Definition belongs to exactly one
// Container and is compiled exactly once, at registration time.
type Definition struct {
	owner    *Container
	id       string
	compiled bool

	raw     any
	context any
	args    []any
	shared  bool
	labels  []string

	resolver Resolver

	// shared-mode memoization, label side effects included in the first run
	state memoState
	value any

	// re-entrancy marker for cycle detection
	resolving bool
}

// configure adopts the raw specification. A Definition-of-a-Definition
// collapses: the nested definition's context and arguments are adopted, and
// its resolver (when already compiled) or raw value becomes the new raw.
func (d *Definition) configure(raw any) {
	for {
		nested, ok := raw.(*Definition)
		if !ok {
			break
		}
		d.context = nested.context
		d.args = nested.args
		if nested.resolver != nil {
			raw = nested.resolver
			continue
		}
		raw = nested.raw
	}
	d.raw = raw
}

// Compile assigns the definition's id and builds the resolver pipeline:
// the inner resolver for the raw specification, wrapped with label
// invocation, wrapped with memoization for shared definitions. It is called
// once, by the registry, at registration time.
func (d *Definition) Compile(id string) {
	if d.compiled {
		panic(&AlreadyCompiledError{ID: d.id})
	}
	if id == "" {
		panic(ErrEmptyID)
	}
	d.id = id
	d.compiled = true
	d.resolver = d.memoize(d.wrap(d.createResolver()))
}

// createResolver builds the inner resolver for the raw specification.
//
// Function forms are bound to the definition's context with the arguments
// resolved once, here, at bind time — nested Definition arguments are invoked
// exactly once, not per call. Non-function object values yield the same
// reference when shared, or a per-call copy (deep or shallow per container
// configuration) when transient. Anything else is a constant.
func (d *Definition) createResolver() Resolver {
	switch raw := d.raw.(type) {
	case Factory:
		return d.bindFactory(raw)
	case func(ctx any, args ...any) any:
		return d.bindFactory(raw)
	case func(c *Container) any:
		return func() any { return raw(d.owner) }
	case Resolver:
		return raw
	case func() any:
		return raw
	default:
		if clone.IsObject(raw) {
			if d.shared {
				return func() any { return raw }
			}
			deep := d.owner.deepClone
			return func() any {
				if deep {
					return clone.Deep(raw)
				}
				return clone.Shallow(raw)
			}
		}
		return func() any { return raw }
	}
}

// bindFactory fixes the factory's receiver and arguments at bind time.
func (d *Definition) bindFactory(fn Factory) Resolver {
	ctx := d.context
	if ctx == nil {
		ctx = d.owner
	}
	args := d.Arguments()
	return func() any { return fn(ctx, args...) }
}

// wrap composes label invocation around the inner resolver. Labels run on
// every invocation of the wrapped resolver, in attachment order; callback
// lookup is lazy, so a label may be defined any time before the first
// resolution that needs it.
func (d *Definition) wrap(inner Resolver) Resolver {
	return func() any {
		instance := inner()
		for _, name := range d.labels {
			cb := d.owner.mustLabel(name)
			cb(instance, d.owner, d.id)
		}
		return instance
	}
}

// memoize applies the run-once cache for shared definitions and guards
// against re-entrant resolution. For transient definitions nothing is
// cached: every call re-derives the instance and re-runs every label.
func (d *Definition) memoize(inner Resolver) Resolver {
	return func() any {
		if d.shared && d.state == computed {
			return d.value
		}
		if d.resolving {
			panic(&CycleError{ID: d.id})
		}
		d.resolving = true
		defer func() { d.resolving = false }()

		v := inner()
		if d.shared {
			d.value = v
			d.state = computed
		}
		return v
	}
}

// ── Accessors & mutators ──────────────────────────────────────────────────────

// ID returns the identifier assigned at compile time. Accessing it before
// compilation is an error.
func (d *Definition) ID() string {
	if !d.compiled {
		panic(&NotCompiledError{})
	}
	return d.id
}

// Compiled reports whether Compile has run.
func (d *Definition) Compiled() bool { return d.compiled }

// Raw returns the (unwrapped) raw specification.
func (d *Definition) Raw() any { return d.raw }

// Context returns the factory receiver; nil means the owning container.
func (d *Definition) Context() any { return d.context }

// SetContext overrides the receiver passed to Factory-form raw values.
// Context binds at compile time, so set it before registration (via Create +
// SetRaw or a nested Definition).
func (d *Definition) SetContext(ctx any) *Definition {
	d.context = ctx
	return d
}

// Args returns the bound argument list as registered.
func (d *Definition) Args() []any { return d.args }

// SetArgs replaces the bound argument list. Arguments bind at compile time,
// so set them before registration.
func (d *Definition) SetArgs(args ...any) *Definition {
	d.args = args
	return d
}

// Shared reports whether the definition is memoized.
func (d *Definition) Shared() bool { return d.shared }

// SetShared switches between shared (memoized) and transient mode. Switching
// after the first resolution of a shared definition does not discard an
// already-memoized value.
func (d *Definition) SetShared(shared bool) *Definition {
	d.shared = shared
	return d
}

// Labels returns the attached label names in attachment order.
func (d *Definition) Labels() []string {
	return slices.Clone(d.labels)
}

// AddLabels attaches label names in call order. Attaching a name already
// present is a no-op, so a label never runs twice for one resolution.
func (d *Definition) AddLabels(names ...string) *Definition {
	for _, n := range names {
		if !slices.Contains(d.labels, n) {
			d.labels = append(d.labels, n)
		}
	}
	return d
}

// Resolver returns the compiled resolver without invoking it.
func (d *Definition) Resolver() Resolver {
	if !d.compiled {
		panic(&NotCompiledError{})
	}
	return d.resolver
}

// Arguments resolves the bound arguments eagerly: each element that is a
// *Definition is resolved now, through its own compiled resolver;
// everything else passes through unchanged.
func (d *Definition) Arguments() []any {
	if len(d.args) == 0 {
		return nil
	}
	out := make([]any, len(d.args))
	for i, a := range d.args {
		if dep, ok := a.(*Definition); ok {
			out[i] = dep.Resolver()()
			continue
		}
		out[i] = a
	}
	return out
}
