// Package validation provides the field-level checks backing the identity
// validation pipeline and request decoding.
//
// Two styles are offered: a fluent Validator that accumulates field errors
// and converts them into a single request fault, and struct-tag validation
// (go-playground/validator) for decoded request bodies:
//
//	f := validation.New().
//	    Required("name", spec.Name).
//	    Pattern("name", spec.Name, identity.NamePattern).
//	    Fault()
package validation
