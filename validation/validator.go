package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skillsenselab/authd/fault"
)

// FieldError is a validation error for one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates field errors. Checks are chainable and every check
// runs, so a single fault can name all offending fields at once.
type Validator struct {
	errors []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// Required checks that a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Pattern checks a non-empty string against a compiled pattern.
func (v *Validator) Pattern(field, value string, re *regexp.Regexp) *Validator {
	if value == "" {
		return v
	}
	if !re.MatchString(value) {
		v.AddError(field, fmt.Sprintf("must match %s", re.String()))
	}
	return v
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Fault converts accumulated errors into a single request fault, or nil when
// every check passed.
func (v *Validator) Fault() *fault.Error {
	if !v.HasErrors() {
		return nil
	}
	fields := make([]string, len(v.errors))
	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		fields[i] = e.Field
		messages[i] = fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return &fault.Error{
		State:  fault.StateRequest,
		Reason: strings.Join(messages, "; "),
		Fields: fields,
	}
}
