// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/AkioNak/NElements/chaincfg"
)

// TestDestinationHash ensures destinations are created with the expected kind
// and hash and resolve to the expected payment scripts.
func TestDestinationHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		make      func() (DestinationHash, error)
		err       error
		kind      DestinationKind
		str       string
		payScript string
	}{{
		name: "key hash",
		make: func() (DestinationHash, error) {
			return NewKeyHash(hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6"))
		},
		kind:      KeyHash,
		str:       "keyhash:751e76e8199196d454941c45d1b3a323f1433bd6",
		payScript: "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac",
	}, {
		name: "key hash from public key",
		make: func() (DestinationHash, error) {
			pubKey := hexToBytes("0279be667ef9dcbbac55a06295ce870b07029bfcdb2d" +
				"ce28d959f2815b16f81798")
			return KeyHashFromPubKey(pubKey), nil
		},
		kind:      KeyHash,
		str:       "keyhash:751e76e8199196d454941c45d1b3a323f1433bd6",
		payScript: "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac",
	}, {
		name: "script hash",
		make: func() (DestinationHash, error) {
			return NewScriptHash(hexToBytes("f815b036d9bbbce5e9f2a00abd1bf3dc91e95510"))
		},
		kind:      ScriptHash,
		str:       "scripthash:f815b036d9bbbce5e9f2a00abd1bf3dc91e95510",
		payScript: "a914f815b036d9bbbce5e9f2a00abd1bf3dc91e9551087",
	}, {
		name: "key hash too short",
		make: func() (DestinationHash, error) {
			return NewKeyHash(hexToBytes("751e76e8199196d454941c45d1b3a323f1433b"))
		},
		err: ErrInvalidArgument,
	}, {
		name: "script hash too long",
		make: func() (DestinationHash, error) {
			return NewScriptHash(hexToBytes("f815b036d9bbbce5e9f2a00abd1bf3dc91e9551000"))
		},
		err: ErrInvalidArgument,
	}}

	for _, test := range tests {
		dest, err := test.make()
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err != nil {
			if dest.IsValid() {
				t.Errorf("%s: valid destination returned with error",
					test.name)
			}
			continue
		}
		if !dest.IsValid() || dest.Kind() != test.kind {
			t.Errorf("%s: mismatched kind -- got %s, want %s", test.name,
				dest.Kind(), test.kind)
			continue
		}
		if got := dest.String(); got != test.str {
			t.Errorf("%s: mismatched string -- got %s, want %s", test.name,
				got, test.str)
			continue
		}
		if got := hex.EncodeToString(dest.PaymentScript()); got != test.payScript {
			t.Errorf("%s: mismatched script -- got %s, want %s", test.name,
				got, test.payScript)
			continue
		}
	}
}

// TestScriptHashFromScript ensures script hash destinations commit to the
// Hash160 of the redeem script.
func TestScriptHashFromScript(t *testing.T) {
	t.Parallel()

	// A 1-of-1 multisig redeem script with the secp256k1 generator point.
	script := hexToBytes("51210279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28" +
		"d959f2815b16f8179851ae")
	dest := ScriptHashFromScript(script)
	if dest.Kind() != ScriptHash {
		t.Fatalf("mismatched kind -- got %s, want %s", dest.Kind(), ScriptHash)
	}

	addr, err := dest.Address(chaincfg.BitcoinMainNetParams(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash := dest.Hash()
	want := "a914" + hex.EncodeToString(hash[:]) + "87"
	if got := hex.EncodeToString(addr.PaymentScript()); got != want {
		t.Fatalf("mismatched script -- got %s, want %s", got, want)
	}
}

// TestInvalidDestination ensures the zero value is not a usable destination.
func TestInvalidDestination(t *testing.T) {
	t.Parallel()

	var dest DestinationHash
	if dest.IsValid() {
		t.Fatal("zero destination is valid")
	}
	if script := dest.PaymentScript(); script != nil {
		t.Fatalf("unexpected payment script %x", script)
	}
	_, err := dest.Address(chaincfg.LiquidParams(), nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrInvalidArgument)
	}
	if got, want := DestinationKind(0).String(), "unknown destination kind (0)"; got != want {
		t.Fatalf("mismatched string -- got %s, want %s", got, want)
	}
}

// TestDestinationEquality ensures destinations compare by kind and hash.
func TestDestinationEquality(t *testing.T) {
	t.Parallel()

	hash := hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")
	pkh1, _ := NewKeyHash(hash)
	pkh2, _ := NewKeyHash(hash)
	sh, _ := NewScriptHash(hash)
	if pkh1 != pkh2 {
		t.Fatal("identical key hashes are not equal")
	}
	if pkh1 == sh {
		t.Fatal("key hash and script hash over the same bytes are equal")
	}
}
