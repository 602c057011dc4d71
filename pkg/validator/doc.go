// Package validator provides struct validation on top of
// go-playground/validator with a flat, template-friendly error shape.
//
// Validation failures are reported as a ValidationErrors slice with one
// entry per failed field, carrying a human-readable message derived from
// the violated rule. System errors (malformed input types, misuse of the
// validation library) are returned as regular errors and must not be shown
// to end users.
package validator
