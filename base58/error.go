// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidCharacter is returned when decoding text that contains a
	// character outside of the base58 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrMalformed is returned when a checksummed payload is too short to
	// contain a version byte and a checksum.
	ErrMalformed = ErrorKind("ErrMalformed")

	// ErrChecksum is returned when the checksum of a checksummed payload
	// does not match the expected value.
	ErrChecksum = ErrorKind("ErrChecksum")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a base58 decoding error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
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
