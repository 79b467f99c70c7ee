package container

// Configurator further configures a just-registered Definition in place.
// Configurators are passed as trailing arguments to Set / SetShared / SetRaw
// and run after compilation, before the call returns.
type Configurator func(d *Definition, c *Container)

// WithLabel attaches a label name to the definition being registered. When a
// callback is supplied it is also registered as the label's container-wide
// callback in the same call:
//
//	c.SetShared("db", newDB, container.WithLabel("ping", func(v any, c *container.Container, id string) {
//	    v.(*DB).Ping()
//	}))
func WithLabel(name string, callback ...Label) Configurator {
	return func(d *Definition, c *Container) {
		if len(callback) > 0 && callback[0] != nil {
			c.DefineLabel(name, callback[0])
		}
		d.AddLabels(name)
	}
}

// WithTag tags the service being registered:
//
//	c.Set("csv-export", newCSVExporter, container.WithTag(container.Tag{"name": "exporters", "order": 10}))
func WithTag(tagSpecs ...any) Configurator {
	return func(d *Definition, c *Container) {
		c.Tag(d.ID(), tagSpecs...)
	}
}
