// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidArgument indicates a required input is missing or is not
	// valid, such as a nil network, a blinding key that is not a compressed
	// secp256k1 public key, or a destination hash of the wrong length.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrMalformedEncoding indicates the text of an address failed the
	// checksum or contains characters outside of the encoding alphabet.  No
	// network is consulted when this error is returned.
	ErrMalformedEncoding = ErrorKind("ErrMalformedEncoding")

	// ErrUnrecognizedAddress indicates the text of an address is well formed,
	// but no candidate network accepts it under any destination kind.
	ErrUnrecognizedAddress = ErrorKind("ErrUnrecognizedAddress")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a blinded address related error.
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
