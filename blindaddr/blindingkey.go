// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// BlindingKeyLen is the length of a serialized blinding key.
const BlindingKeyLen = secp256k1.PubKeyBytesLenCompressed

// BlindingKey is the public key embedded in a blinded address.  It is always a
// valid secp256k1 public key and is always serialized in the 33-byte
// compressed format.
type BlindingKey struct {
	pubKey     *secp256k1.PublicKey
	serialized [BlindingKeyLen]byte
}

// ParseBlindingKey parses a blinding key from its 33-byte compressed
// serialization.  An ErrInvalidArgument error is returned when the bytes are
// not a compressed secp256k1 public key that lies on the curve.
func ParseBlindingKey(serialized []byte) (*BlindingKey, error) {
	if len(serialized) != BlindingKeyLen {
		str := fmt.Sprintf("blinding key is %d bytes vs required %d bytes",
			len(serialized), BlindingKeyLen)
		return nil, makeError(ErrInvalidArgument, str)
	}

	// Uncompressed and hybrid keys have a different length, so only the
	// compressed format bytes need to be allowed here.
	switch serialized[0] {
	case secp256k1.PubKeyFormatCompressedEven,
		secp256k1.PubKeyFormatCompressedOdd:
	default:
		str := fmt.Sprintf("blinding key has format byte %#02x which is not "+
			"a compressed public key", serialized[0])
		return nil, makeError(ErrInvalidArgument, str)
	}

	pubKey, err := secp256k1.ParsePubKey(serialized)
	if err != nil {
		str := fmt.Sprintf("malformed blinding key: %v", err)
		return nil, makeError(ErrInvalidArgument, str)
	}

	key := &BlindingKey{pubKey: pubKey}
	copy(key.serialized[:], serialized)
	return key, nil
}

// NewBlindingKey returns a blinding key for the provided public key.
func NewBlindingKey(pubKey *secp256k1.PublicKey) (*BlindingKey, error) {
	if pubKey == nil {
		return nil, makeError(ErrInvalidArgument, "nil blinding public key")
	}
	key := &BlindingKey{pubKey: pubKey}
	copy(key.serialized[:], pubKey.SerializeCompressed())
	return key, nil
}

// Serialize returns the 33-byte compressed serialization of the key.
func (k *BlindingKey) Serialize() []byte {
	serialized := k.serialized
	return serialized[:]
}

// PubKey returns the underlying secp256k1 public key.
func (k *BlindingKey) PubKey() *secp256k1.PublicKey {
	return k.pubKey
}

// IsEqual returns whether or not the two keys are the same.
func (k *BlindingKey) IsEqual(other *BlindingKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.serialized == other.serialized
}

// String returns the hex encoding of the serialized key.
func (k *BlindingKey) String() string {
	return hex.EncodeToString(k.serialized[:])
}
