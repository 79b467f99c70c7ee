// Package validation wraps go-playground/validator behind the two helpers the
// rest of the framework needs. Rule tags live on the structs being validated.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// Var validates a single value against a rule string, e.g. "required,min=1".
func Var(v any, rules string) error {
	return validate.Var(v, rules)
}
