// Copyright 2024-2026 Aiku AI

package format

import "errors"

var (
	// ErrHeadingLevel is returned when a heading level falls outside [1,6].
	ErrHeadingLevel = errors.New("heading level out of range")
	// ErrColumnCount is returned when a table row's cell count differs
	// from the header's (or the first row's, when headers are absent).
	ErrColumnCount = errors.New("mismatched table column count")
	// ErrUnknownBackend is returned for a backend name with no entry in
	// the backend format table.
	ErrUnknownBackend = errors.New("unknown backend")
)
