// Package common defines shared sentinel errors used across the
// application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors.
	ErrUnsupportedType = errors.New("unsupported file type")

	// Flow-control errors. ErrCancelled marks a user-initiated abort and is
	// never rendered as an error message.
	ErrCancelled = errors.New("operation cancelled")
)
