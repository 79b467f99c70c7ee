package container

import (
	"errors"
	"strconv"
)

// ErrEmptyID is raised when a service is registered under an empty identifier.
var ErrEmptyID = errors.New("container: service id must not be empty")

// UndefinedServiceError is raised when Get / GetResolver / GetDefinition /
// AddLabel name a service id that was never registered.
type UndefinedServiceError struct{ ID string }

// Error implements the error interface.
func (e *UndefinedServiceError) Error() string {
	// Example: container: service "db" is not defined
	return "container: service " + strconv.Quote(e.ID) + " is not defined"
}

// UndefinedLabelError is raised when a label name has no registered callback.
// For label names attached to a definition the lookup is lazy, so this
// surfaces at resolution time, not at AddLabel time.
type UndefinedLabelError struct{ Name string }

// Error implements the error interface.
func (e *UndefinedLabelError) Error() string {
	return "container: label " + strconv.Quote(e.Name) + " is not defined"
}

// InvalidTagError is raised when a tag spec is neither a string nor a
// map-shaped payload carrying a non-empty "name" field.
type InvalidTagError struct{ Spec any }

// Error implements the error interface.
func (e *InvalidTagError) Error() string {
	return "container: tags must be strings or objects with a name field"
}

// NotADefinitionError is raised when SetRaw receives something that is not a
// *Definition.
type NotADefinitionError struct{}

// Error implements the error interface.
func (e *NotADefinitionError) Error() string {
	return "container: raw definition must be a *Definition"
}

// ForeignDefinitionError is raised when a Definition created by one container
// is registered into another. Definitions have exactly one owner.
type ForeignDefinitionError struct{ ID string }

// Error implements the error interface.
func (e *ForeignDefinitionError) Error() string {
	return "container: definition belongs to a different container"
}

// NotCompiledError is raised when a Definition's id or resolver is accessed
// before the definition has been compiled.
type NotCompiledError struct{}

// Error implements the error interface.
func (e *NotCompiledError) Error() string {
	return "container: definition is not compiled"
}

// AlreadyCompiledError is raised when Compile is called twice on the same
// Definition. Re-registering an id creates a fresh Definition instead.
type AlreadyCompiledError struct{ ID string }

// Error implements the error interface.
func (e *AlreadyCompiledError) Error() string {
	return "container: definition " + strconv.Quote(e.ID) + " is already compiled"
}

// CycleError is raised when resolving a definition re-enters itself, directly
// or through its bound arguments or a label callback calling Get on the same
// id.
type CycleError struct{ ID string }

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "container: circular resolution detected for service " + strconv.Quote(e.ID)
}

// InvalidSortError wraps the validation failure for malformed sort options
// passed to OverTags. It is raised before any iteration occurs.
type InvalidSortError struct{ Err error }

// Error implements the error interface.
func (e *InvalidSortError) Error() string {
	return "container: invalid sort options: " + e.Err.Error()
}

// Unwrap exposes the underlying validation error.
func (e *InvalidSortError) Unwrap() error { return e.Err }
