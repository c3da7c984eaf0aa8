// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

import (
	"encoding/hex"
	"fmt"

	"github.com/AkioNak/NElements/base58check"
	"github.com/AkioNak/NElements/stdaddr"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// DestinationHashLen is the length of the hash carried by a destination.
const DestinationHashLen = ripemd160.Size

// DestinationKind identifies the kind of spending condition a destination
// hash commits to.
type DestinationKind uint8

// These constants define the supported destination kinds.  The zero value is
// not a valid kind.
const (
	// KeyHash identifies the hash of a compressed public key.
	KeyHash DestinationKind = iota + 1

	// ScriptHash identifies the hash of a redeem script.
	ScriptHash
)

// destinationKinds lists the destination kinds in the order decoding tries
// them.
var destinationKinds = [...]DestinationKind{KeyHash, ScriptHash}

// String returns the kind as a human-readable string.
func (k DestinationKind) String() string {
	switch k {
	case KeyHash:
		return "keyhash"
	case ScriptHash:
		return "scripthash"
	}
	return fmt.Sprintf("unknown destination kind (%d)", uint8(k))
}

// addrID returns the prefix the network defines for plain addresses of the
// kind.
func (k DestinationKind) addrID(params stdaddr.AddressParams) []byte {
	switch k {
	case KeyHash:
		return params.AddrIDPubKeyHash()
	case ScriptHash:
		return params.AddrIDScriptHash()
	}
	return nil
}

// DestinationHash identifies the spending condition of a blinded address.  It
// is either a KeyHash or a ScriptHash over a 20-byte payload.  The zero value
// is not a valid destination.
//
// DestinationHash values are comparable with ==.
type DestinationHash struct {
	kind DestinationKind
	hash [DestinationHashLen]byte
}

// newDestinationHash returns a destination of the provided kind.
func newDestinationHash(kind DestinationKind, hash []byte) (DestinationHash, error) {
	if len(hash) != DestinationHashLen {
		str := fmt.Sprintf("%s destination is %d bytes vs required %d bytes",
			kind, len(hash), DestinationHashLen)
		return DestinationHash{}, makeError(ErrInvalidArgument, str)
	}
	dest := DestinationHash{kind: kind}
	copy(dest.hash[:], hash)
	return dest, nil
}

// NewKeyHash returns a destination for the 20-byte hash of a public key.
func NewKeyHash(pkHash []byte) (DestinationHash, error) {
	return newDestinationHash(KeyHash, pkHash)
}

// NewScriptHash returns a destination for the 20-byte hash of a script.
func NewScriptHash(scriptHash []byte) (DestinationHash, error) {
	return newDestinationHash(ScriptHash, scriptHash)
}

// KeyHashFromPubKey returns the key hash destination of the provided
// serialized public key.
func KeyHashFromPubKey(serializedPubKey []byte) DestinationHash {
	dest := DestinationHash{kind: KeyHash}
	copy(dest.hash[:], stdaddr.Hash160(serializedPubKey))
	return dest
}

// ScriptHashFromScript returns the script hash destination of the provided
// redeem script.
func ScriptHashFromScript(redeemScript []byte) DestinationHash {
	dest := DestinationHash{kind: ScriptHash}
	copy(dest.hash[:], stdaddr.Hash160(redeemScript))
	return dest
}

// Kind returns the kind of the destination.
func (d DestinationHash) Kind() DestinationKind {
	return d.kind
}

// Hash returns the 20-byte hash of the destination.
func (d DestinationHash) Hash() [DestinationHashLen]byte {
	return d.hash
}

// IsValid returns whether or not the destination has a supported kind.
func (d DestinationHash) IsValid() bool {
	return d.kind == KeyHash || d.kind == ScriptHash
}

// Address returns the plain address the destination resolves to on the
// network identified by the provided parameters.  A nil armor selects the
// double SHA-256 base58 check encoding.
func (d DestinationHash) Address(params stdaddr.AddressParams,
	armor base58check.Armor) (stdaddr.Address, error) {

	switch d.kind {
	case KeyHash:
		return stdaddr.NewAddressPubKeyHash(d.hash[:], params, armor)
	case ScriptHash:
		return stdaddr.NewAddressScriptHashFromHash(d.hash[:], params, armor)
	}
	str := fmt.Sprintf("can't resolve %s", d.kind)
	return nil, makeError(ErrInvalidArgument, str)
}

// PaymentScript returns the script that pays to the destination.  It returns
// nil for an invalid destination.
func (d DestinationHash) PaymentScript() []byte {
	// Scripts don't depend on the network.
	addr, err := d.Address(noNetParams{}, nil)
	if err != nil {
		return nil
	}
	return addr.PaymentScript()
}

// String returns the kind and hex encoded hash of the destination.
func (d DestinationHash) String() string {
	return d.kind.String() + ":" + hex.EncodeToString(d.hash[:])
}

// noNetParams satisfies stdaddr.AddressParams for callers that only need
// network independent data from an address.
type noNetParams struct{}

func (noNetParams) AddrIDPubKeyHash() []byte { return nil }
func (noNetParams) AddrIDScriptHash() []byte { return nil }
