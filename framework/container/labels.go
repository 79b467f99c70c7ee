package container

// Label is a post-construction hook. After a service instance is produced,
// each label attached to its definition invokes the callback registered under
// that label name with the instance, the owning container, and the service
// id.
type Label func(instance any, c *Container, serviceID string)

// DefineLabel registers (or overwrites) the callback for a label name.
// Labels are container-wide: one callback serves every service the label is
// attached to.
func (c *Container) DefineLabel(name string, callback Label) {
	c.labels[name] = callback
	c.log.Debug().Str("label", name).Msg("label defined")
}

// AddLabel attaches label names to the identified service's definition, in
// call order. The service must be registered. Labels attached after the
// first resolution still apply to subsequent transient resolutions, but
// never retroactively to an already-memoized shared result.
func (c *Container) AddLabel(serviceID string, names ...string) {
	c.mustDefinition(serviceID).AddLabels(names...)
}

// GetLabel returns the callback registered under name, panicking with
// *UndefinedLabelError when absent.
func (c *Container) GetLabel(name string) Label {
	return c.mustLabel(name)
}

func (c *Container) mustLabel(name string) Label {
	cb, ok := c.labels[name]
	if !ok {
		panic(&UndefinedLabelError{Name: name})
	}
	return cb
}
