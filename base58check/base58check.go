// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58check

import (
	"errors"
	"fmt"

	btcbase58 "github.com/btcsuite/btcutil/base58"
	"github.com/decred/base58"
)

// Armor defines the checksum-armored text encoding used to wrap address
// payloads.  Implementations append an integrity checksum to the payload and
// encode the result with a restricted alphabet.  Decode must reject text that
// contains foreign characters or whose checksum does not match before any
// structural parsing of the payload takes place.
//
// The payload passed to Encode and returned by Decode is the complete byte
// string including any leading version bytes.
type Armor interface {
	// Encode returns the armored text for the provided payload.
	Encode(payload []byte) (string, error)

	// Decode returns the payload carried by the provided armored text.
	Decode(text string) ([]byte, error)

	// Name returns a short identifier for the encoding.
	Name() string
}

// doubleSHA256 implements Armor using base58 with a four byte checksum taken
// from the double SHA-256 of the payload.  This is the encoding used by
// Bitcoin and Elements based networks.
type doubleSHA256 struct{}

// doubleBLAKE256 implements Armor using base58 with a four byte checksum taken
// from the double BLAKE-256 of the payload.  This is the encoding used by
// Decred based networks.
type doubleBLAKE256 struct{}

var (
	// DoubleSHA256 is the base58 encoding with a double SHA-256 checksum.
	DoubleSHA256 Armor = doubleSHA256{}

	// DoubleBLAKE256 is the base58 encoding with a double BLAKE-256 checksum.
	DoubleBLAKE256 Armor = doubleBLAKE256{}
)

// Ensure the encodings implement the Armor interface.
var _ Armor = doubleSHA256{}
var _ Armor = doubleBLAKE256{}

// Encode returns the base58 check encoding of the payload.  The payload must be
// at least one byte since the underlying encoder treats the first byte as the
// version.
//
// This is part of the Armor interface implementation.
func (doubleSHA256) Encode(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", makeError(ErrPayloadTooShort, "payload is empty")
	}

	// The encoder splits off a version byte and prepends it again, so the
	// resulting checksum covers the full payload:
	//   payload || sha256d(payload)[:4]
	return btcbase58.CheckEncode(payload[1:], payload[0]), nil
}

// Decode returns the payload of the base58 check encoded text.
//
// This is part of the Armor interface implementation.
func (doubleSHA256) Decode(text string) ([]byte, error) {
	decoded, version, err := btcbase58.CheckDecode(text)
	if err != nil {
		return nil, convertErr(text, err, btcbase58.ErrChecksum)
	}
	payload := make([]byte, 0, len(decoded)+1)
	payload = append(payload, version)
	return append(payload, decoded...), nil
}

// Name returns the identifier of the encoding.
//
// This is part of the Armor interface implementation.
func (doubleSHA256) Name() string {
	return "sha256d"
}

// Encode returns the base58 check encoding of the payload.  The payload must be
// at least two bytes since the underlying encoder treats the first two bytes as
// the network and address type identifier.
//
// This is part of the Armor interface implementation.
func (doubleBLAKE256) Encode(payload []byte) (string, error) {
	if len(payload) < 2 {
		str := fmt.Sprintf("payload is %d bytes vs minimum 2 bytes",
			len(payload))
		return "", makeError(ErrPayloadTooShort, str)
	}

	// The overall format is:
	//   payload || blake256d(payload)[:4]
	return base58.CheckEncode(payload[2:], [2]byte{payload[0], payload[1]}), nil
}

// Decode returns the payload of the base58 check encoded text.
//
// This is part of the Armor interface implementation.
func (doubleBLAKE256) Decode(text string) ([]byte, error) {
	decoded, version, err := base58.CheckDecode(text)
	if err != nil {
		return nil, convertErr(text, err, base58.ErrChecksum)
	}
	payload := make([]byte, 0, len(decoded)+2)
	payload = append(payload, version[:]...)
	return append(payload, decoded...), nil
}

// Name returns the identifier of the encoding.
//
// This is part of the Armor interface implementation.
func (doubleBLAKE256) Name() string {
	return "blake256d"
}

// convertErr maps an error returned by one of the underlying base58 packages
// to the error kinds defined by this package.
func convertErr(text string, err, checksumErr error) error {
	if errors.Is(err, checksumErr) {
		str := fmt.Sprintf("checksum mismatch for %q", text)
		return makeError(ErrChecksum, str)
	}
	str := fmt.Sprintf("malformed base58 check encoding %q: %v", text, err)
	return makeError(ErrInvalidFormat, str)
}

// ByName returns the encoding registered under the provided name as reported
// by Name.
func ByName(name string) (Armor, bool) {
	for _, armor := range []Armor{DoubleSHA256, DoubleBLAKE256} {
		if armor.Name() == name {
			return armor, true
		}
	}
	return nil, false
}
