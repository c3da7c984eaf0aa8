// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// TestParseBlindingKey ensures only compressed secp256k1 public keys that are
// on the curve are accepted as blinding keys.
func TestParseBlindingKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		err  error
	}{{
		name: "generator point",
		key:  "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		err:  nil,
	}, {
		name: "odd y coordinate",
		key:  "03" + "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		err:  nil,
	}, {
		name: "all zero",
		key:  "000000000000000000000000000000000000000000000000000000000000000000",
		err:  ErrInvalidArgument,
	}, {
		name: "x coordinate not less than field prime",
		key:  "02ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		err:  ErrInvalidArgument,
	}, {
		name: "uncompressed format byte",
		key:  "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		err:  ErrInvalidArgument,
	}, {
		name: "short",
		key:  "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f817",
		err:  ErrInvalidArgument,
	}, {
		name: "uncompressed serialization",
		key: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		err: ErrInvalidArgument,
	}}

	for _, test := range tests {
		serialized := hexToBytes(test.key)
		key, err := ParseBlindingKey(serialized)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err != nil {
			continue
		}
		if !bytes.Equal(key.Serialize(), serialized) {
			t.Errorf("%s: mismatched serialization -- got %x, want %x",
				test.name, key.Serialize(), serialized)
			continue
		}
		if got := key.String(); got != test.key {
			t.Errorf("%s: mismatched string -- got %s, want %s", test.name,
				got, test.key)
			continue
		}
	}
}

// TestNewBlindingKey ensures keys created from public keys match their parsed
// serialization.
func TestNewBlindingKey(t *testing.T) {
	t.Parallel()

	privKey := secp256k1.PrivKeyFromBytes(hexToBytes(
		"eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca22694"))
	key, err := NewBlindingKey(privKey.PubKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, err := ParseBlindingKey(privKey.PubKey().SerializeCompressed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !key.IsEqual(parsed) || !parsed.IsEqual(key) {
		t.Fatalf("keys are not equal: %s vs %s", key, parsed)
	}
	if !key.PubKey().IsEqual(parsed.PubKey()) {
		t.Fatal("underlying public keys are not equal")
	}

	// Modifying a returned serialization must not alter the key.
	serialized := key.Serialize()
	serialized[1] ^= 0xff
	if !key.IsEqual(parsed) {
		t.Fatal("modifying the serialization altered the key")
	}

	if _, err := NewBlindingKey(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrInvalidArgument)
	}

	var nilKey *BlindingKey
	if nilKey.IsEqual(key) || key.IsEqual(nil) || !nilKey.IsEqual(nil) {
		t.Fatal("unexpected nil key equality")
	}
}
