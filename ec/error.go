// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ec

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNotInitialized is returned when a derivation is attempted on a
	// context that has not been initialized or has been shut down.
	ErrNotInitialized = ErrorKind("ErrNotInitialized")

	// ErrInvalidSecret is returned when a secret is zero or not less than
	// the group order.
	ErrInvalidSecret = ErrorKind("ErrInvalidSecret")

	// ErrInvalidPoint is returned when serialized bytes do not decode to a
	// valid curve point.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrDegeneratePoint is returned when point arithmetic produces the
	// point at infinity.  The caller must reject the derivation and retry
	// with fresh inputs.
	ErrDegeneratePoint = ErrorKind("ErrDegeneratePoint")

	// ErrDegenerateSecret is returned when scalar arithmetic produces the
	// zero scalar.  The caller must reject the derivation and retry with
	// fresh inputs.
	ErrDegenerateSecret = ErrorKind("ErrDegenerateSecret")

	// ErrEntropy is returned when the random source fails to provide
	// entropy for secret generation.
	ErrEntropy = ErrorKind("ErrEntropy")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an elliptic curve operation error.  It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
