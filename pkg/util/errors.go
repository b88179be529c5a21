// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration problems. Everything surfaced by the
// validation and detection pipeline unwraps to one of these, so callers can
// classify errors without string matching.
var (
	ErrOutOfRange      = errors.New("value out of range")
	ErrBadGrammar      = errors.New("malformed range specification")
	ErrModeConflict    = errors.New("field conflicts with port mode")
	ErrMissingRequired = errors.New("required field not set")
)

// FieldError describes a problem with a single configuration field.
// It carries the field name for display and unwraps to one of the
// sentinel errors above for classification.
type FieldError struct {
	Field  string // e.g. "data_vlan", "stp_priority"
	Detail string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Detail
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

func (e *FieldError) Unwrap() error { return e.Err }

// RangeError reports a value outside its field's valid domain.
func RangeError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Detail: fmt.Sprintf(format, args...), Err: ErrOutOfRange}
}

// GrammarError reports a malformed range or list specification.
func GrammarError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Detail: fmt.Sprintf(format, args...), Err: ErrBadGrammar}
}

// ModeConflictError reports a field that does not apply to the port's mode.
func ModeConflictError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Detail: fmt.Sprintf(format, args...), Err: ErrModeConflict}
}

// MissingRequiredError reports an absent field the current mode requires.
func MissingRequiredError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Detail: fmt.Sprintf(format, args...), Err: ErrMissingRequired}
}
