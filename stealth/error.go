// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealth

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidVersion is returned when a decoded stealth address does not
	// carry the stealth version byte.
	ErrInvalidVersion = ErrorKind("ErrInvalidVersion")

	// ErrMalformedAddress is returned when a stealth address payload is
	// truncated, carries trailing bytes, or declares a spend pubkey count
	// that does not match the serialized list.
	ErrMalformedAddress = ErrorKind("ErrMalformedAddress")

	// ErrInvalidScanPubKey is returned when the scan pubkey is not a valid
	// compressed curve point.
	ErrInvalidScanPubKey = ErrorKind("ErrInvalidScanPubKey")

	// ErrInvalidSpendPubKey is returned when a spend pubkey is not a valid
	// compressed curve point.
	ErrInvalidSpendPubKey = ErrorKind("ErrInvalidSpendPubKey")

	// ErrInvalidThreshold is returned when the signature threshold is zero
	// or exceeds the number of spend pubkeys.
	ErrInvalidThreshold = ErrorKind("ErrInvalidThreshold")

	// ErrInvalidOptions is returned when the reuse-key option is combined
	// with explicitly listed spend pubkeys.
	ErrInvalidOptions = ErrorKind("ErrInvalidOptions")

	// ErrInvalidPrefix is returned when a prefix declares more than 32
	// significant bits or sets bits outside its significant range.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a stealth address or derivation error.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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
