// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidArgument, "ErrInvalidArgument"},
		{ErrMalformedEncoding, "ErrMalformedEncoding"},
		{ErrUnrecognizedAddress, "ErrUnrecognizedAddress"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrMalformedEncoding == ErrMalformedEncoding",
		err:       ErrMalformedEncoding,
		target:    ErrMalformedEncoding,
		wantMatch: true,
		wantAs:    ErrMalformedEncoding,
	}, {
		name:      "Error.ErrUnrecognizedAddress == ErrUnrecognizedAddress",
		err:       makeError(ErrUnrecognizedAddress, ""),
		target:    ErrUnrecognizedAddress,
		wantMatch: true,
		wantAs:    ErrUnrecognizedAddress,
	}, {
		name:      "Error.ErrInvalidArgument != ErrMalformedEncoding",
		err:       makeError(ErrInvalidArgument, ""),
		target:    ErrMalformedEncoding,
		wantMatch: false,
		wantAs:    ErrInvalidArgument,
	}, {
		name:      "Error.ErrMalformedEncoding != io.EOF",
		err:       makeError(ErrMalformedEncoding, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrMalformedEncoding,
	}}

	for _, test := range tests {
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
