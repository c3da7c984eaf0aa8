// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58check

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrChecksum indicates the checksum embedded in the encoded text does not
	// match the checksum calculated over the decoded payload.
	ErrChecksum = ErrorKind("ErrChecksum")

	// ErrInvalidFormat indicates the text either contains characters outside
	// of the base58 alphabet or decodes to fewer bytes than the version and
	// checksum require.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrPayloadTooShort indicates a payload handed to an encoder is shorter
	// than the version prefix the encoding requires.
	ErrPayloadTooShort = ErrorKind("ErrPayloadTooShort")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a checksum encoding related error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
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
