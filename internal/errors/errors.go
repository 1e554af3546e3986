// Package errors is the single import point for error construction and inspection.
// Wrapping helpers come from pkg/errors so every wrapped error carries a stack trace,
// inspection helpers come from the standard library so wrapped chains stay compatible.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection helpers.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join
)

// New returns an error that formats as the given text and records a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats according to a format specifier and records a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with a stack trace and message. Wrap(nil, ...) returns nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a stack trace and formatted message.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace only.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage annotates err with a message and no additional stack.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Cause walks pkg/errors wrappers down to the root error.
//
//nolint:wrapcheck // passthrough
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
