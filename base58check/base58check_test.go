// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58check

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected. It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestKnownEncodings ensures both encodings produce and accept well-known
// address strings.
func TestKnownEncodings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		armor   Armor
		text    string
		payload string
	}{{
		name:    "bitcoin mainnet p2pkh",
		armor:   DoubleSHA256,
		text:    "1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gX",
		payload: "00e34cce70c86373273efcc54ce7d2a491bb4a0e84",
	}, {
		name:    "bitcoin mainnet p2sh",
		armor:   DoubleSHA256,
		text:    "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC",
		payload: "05f815b036d9bbbce5e9f2a00abd1bf3dc91e95510",
	}, {
		name:    "decred mainnet p2pkh",
		armor:   DoubleBLAKE256,
		text:    "DsUZxxoHJSty8DCfwfartwTYbuhmVct7tJu",
		payload: "073f2789d58cfa0957d206f025c2af056fc8a77cebb0",
	}}

	for _, test := range tests {
		payload := hexToBytes(test.payload)
		text, err := test.armor.Encode(payload)
		if err != nil {
			t.Errorf("%s: unexpected encode error: %v", test.name, err)
			continue
		}
		if text != test.text {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				text, test.text)
			continue
		}

		decoded, err := test.armor.Decode(test.text)
		if err != nil {
			t.Errorf("%s: unexpected decode error: %v", test.name, err)
			continue
		}
		if !bytes.Equal(decoded, payload) {
			t.Errorf("%s: mismatched payload -- got %x, want %x", test.name,
				decoded, payload)
			continue
		}
	}
}

// TestDecodeErrors ensures decoding malformed text returns the expected error
// kinds.
func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		armor Armor
		text  string
		err   error
	}{{
		name:  "sha256d bad checksum",
		armor: DoubleSHA256,
		text:  "1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gY",
		err:   ErrChecksum,
	}, {
		name:  "sha256d invalid character",
		armor: DoubleSHA256,
		text:  "1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey40X",
		err:   ErrInvalidFormat,
	}, {
		name:  "sha256d too short",
		armor: DoubleSHA256,
		text:  "1111",
		err:   ErrInvalidFormat,
	}, {
		name:  "blake256d bad checksum",
		armor: DoubleBLAKE256,
		text:  "DsUZxxoHJSty8DCfwfartwTYbuhmVct7tJv",
		err:   ErrChecksum,
	}, {
		name:  "blake256d invalid character",
		armor: DoubleBLAKE256,
		text:  "DsUZxxoHJSty8DCfwfartwTYbuhmVct7tJI",
		err:   ErrInvalidFormat,
	}, {
		name:  "blake256d checksum of a different encoding",
		armor: DoubleBLAKE256,
		text:  "1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gX",
		err:   ErrChecksum,
	}}

	for _, test := range tests {
		_, err := test.armor.Decode(test.text)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}
}

// TestEncodeShortPayload ensures payloads that can't carry the version bytes
// required by an encoding are rejected.
func TestEncodeShortPayload(t *testing.T) {
	t.Parallel()

	if _, err := DoubleSHA256.Encode(nil); !errors.Is(err, ErrPayloadTooShort) {
		t.Fatalf("unexpected error for empty sha256d payload: %v", err)
	}
	if _, err := DoubleBLAKE256.Encode([]byte{0x01}); !errors.Is(err, ErrPayloadTooShort) {
		t.Fatalf("unexpected error for short blake256d payload: %v", err)
	}
}

// TestByName ensures the encodings can be looked up by their names.
func TestByName(t *testing.T) {
	t.Parallel()

	for _, want := range []Armor{DoubleSHA256, DoubleBLAKE256} {
		got, ok := ByName(want.Name())
		if !ok || got != want {
			t.Fatalf("ByName(%q): got %v, %v", want.Name(), got, ok)
		}
	}
	if _, ok := ByName("base64"); ok {
		t.Fatal("ByName returned an encoding for an unknown name")
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
		name:      "ErrChecksum == ErrChecksum",
		err:       ErrChecksum,
		target:    ErrChecksum,
		wantMatch: true,
		wantAs:    ErrChecksum,
	}, {
		name:      "Error.ErrChecksum == ErrChecksum",
		err:       makeError(ErrChecksum, ""),
		target:    ErrChecksum,
		wantMatch: true,
		wantAs:    ErrChecksum,
	}, {
		name:      "Error.ErrChecksum != ErrInvalidFormat",
		err:       makeError(ErrChecksum, ""),
		target:    ErrInvalidFormat,
		wantMatch: false,
		wantAs:    ErrChecksum,
	}, {
		name:      "Error.ErrInvalidFormat != io.EOF",
		err:       makeError(ErrInvalidFormat, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrInvalidFormat,
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
