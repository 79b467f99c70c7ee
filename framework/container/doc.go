// Package container provides a lazy service-locator: a registry of service
// definitions — plain values, factory functions, or nested definitions —
// whose construction is deferred until first use, with tagging, sorted
// iteration over tagged groups, and post-construction hooks ("labels")
// layered over resolution.
//
// # Definitions
//
//	c := container.New()
//
//	// Constant
//	c.Set("greeting", "hello")
//
//	// Factory — transient: the factory re-runs on every Get
//	c.Set("conn", func(c *container.Container) any { return dial() })
//
//	// Factory — shared: the factory runs once, the result is memoized
//	c.SetShared("db", func(c *container.Container) any { return openDB() })
//
//	// Object value — transient object values are copied on every Get
//	// (deep by default, shallow with container.WithShallowClone())
//	c.Set("defaults", map[string]any{"retries": 3})
//
// The full factory form binds a context and arguments at registration time;
// arguments that are themselves definitions are resolved once, when the
// definition compiles:
//
//	dsn := c.GetDefinition("dsn")
//	d := c.Create(container.Factory(func(ctx any, args ...any) any {
//	    return open(args[0].(string))
//	})).SetArgs(dsn)
//	c.SetRaw("db", d)
//
// Function values in other signatures are not treated as factories; they are
// stored and returned as plain values.
//
// # Resolution
//
//	v := c.Get("db")                               // panics if undefined
//	db := container.ResolveAs[*DB](c, "db")        // typed
//	v, err := c.TryGet("db")                       // error instead of panic
//	later := c.GetResolver("db")                   // deferred call
//
// # Tags
//
//	c.Set("csv", newCSV, container.WithTag(container.Tag{"name": "exporters", "order": 20}))
//	c.Set("pdf", newPDF, container.WithTag(container.Tag{"name": "exporters", "order": 10}))
//
//	// ascending by "order": pdf first, then csv
//	c.OverTags("exporters", &container.SortOptions{Field: "order", Order: -1},
//	    func(id string, t container.Tag) { mount(c.Get(id)) })
//
// # Labels
//
//	c.DefineLabel("audit", func(v any, c *container.Container, id string) {
//	    log.Printf("built %s", id)
//	})
//	c.Set("report", newReport, container.WithLabel("audit"))
//
// Labels run after every resolution of a transient service and exactly once,
// ever, for a shared service.
//
// # Concurrency
//
// The container performs no locking. Use it from a single goroutine or
// synchronize externally.
package container
