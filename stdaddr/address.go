// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stdaddr provides facilities for working with plain (non-blinded)
// pay-to-pubkey-hash and pay-to-script-hash payment addresses.
package stdaddr

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/AkioNak/NElements/base58check"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/txscript/v4"
)

const (
	// p2pkhPaymentScriptLen is the length of a standard P2PKH script.
	p2pkhPaymentScriptLen = 25

	// p2shPaymentScriptLen is the length of a standard P2SH script.
	p2shPaymentScriptLen = 23
)

// AddressParams defines an interface that is used to provide the parameters
// required when encoding and decoding addresses.  These values are typically
// well-defined and unique per network.
type AddressParams interface {
	// AddrIDPubKeyHash returns the magic prefix bytes for pay-to-pubkey-hash
	// addresses.
	AddrIDPubKeyHash() []byte

	// AddrIDScriptHash returns the magic prefix bytes for pay-to-script-hash
	// addresses.
	AddrIDScriptHash() []byte
}

// Address represents any type of destination a transaction output may spend to.
type Address interface {
	// String returns the string encoding of the payment address.
	String() string

	// PaymentScript returns a script to pay a transaction output to the
	// address.
	PaymentScript() []byte
}

// Hash160er is an interface that allows the RIPEMD-160 hash to be obtained from
// addresses that involve them.
type Hash160er interface {
	Hash160() *[ripemd160.Size]byte
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sha256Hash := sha256.Sum256(buf)
	hasher := ripemd160.New()
	hasher.Write(sha256Hash[:])
	return hasher.Sum(nil)
}

// encodeAddress returns a human-readable payment address for the data and
// netID which encodes the network and address type.  An empty string is
// returned when the armor can't represent the resulting payload.
func encodeAddress(data, netID []byte, armor base58check.Armor) string {
	// The overall format for an address is the checksum-armored encoding of:
	//
	//   network and address type || data
	payload := make([]byte, 0, len(netID)+len(data))
	payload = append(payload, netID...)
	payload = append(payload, data...)
	encoded, err := armor.Encode(payload)
	if err != nil {
		return ""
	}
	return encoded
}

// armorOrDefault returns the provided armor or the double SHA-256 encoding
// when it is nil.
func armorOrDefault(armor base58check.Armor) base58check.Armor {
	if armor == nil {
		return base58check.DoubleSHA256
	}
	return armor
}

// AddressPubKeyHash specifies an address that represents a payment destination
// which imposes an encumbrance that requires a secp256k1 public key that
// hashes to the given public key hash along with a valid signature for that
// public key.
//
// This is commonly referred to as pay-to-pubkey-hash (P2PKH).
type AddressPubKeyHash struct {
	netID []byte
	hash  [ripemd160.Size]byte
	armor base58check.Armor
}

// Ensure AddressPubKeyHash implements the Address and Hash160er interfaces.
var _ Address = (*AddressPubKeyHash)(nil)
var _ Hash160er = (*AddressPubKeyHash)(nil)

// NewAddressPubKeyHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a secp256k1 public
// key that hashes to the provided public key hash along with a valid signature
// for that public key.
//
// The provided public key hash must be 20 bytes and is expected to be the
// Hash160 of the associated secp256k1 public key serialized in the _compressed_
// format.  A nil armor selects the double SHA-256 base58 check encoding.
func NewAddressPubKeyHash(pkHash []byte, params AddressParams,
	armor base58check.Armor) (*AddressPubKeyHash, error) {

	// Check for a valid pubkey hash length.
	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("public key hash is %d bytes vs required %d bytes",
			len(pkHash), ripemd160.Size)
		return nil, makeError(ErrInvalidHashLen, str)
	}

	addr := &AddressPubKeyHash{
		netID: params.AddrIDPubKeyHash(),
		armor: armorOrDefault(armor),
	}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// String returns the string encoding of the payment address.
//
// This is part of the Address interface implementation.
func (addr *AddressPubKeyHash) String() string {
	return encodeAddress(addr.hash[:], addr.netID, addr.armor)
}

// putPaymentScript serializes the payment script associated with the address
// directly into the passed byte slice which must be at least
// p2pkhPaymentScriptLen bytes in length or it will panic.
func (addr *AddressPubKeyHash) putPaymentScript(script []byte) {
	// A pay-to-pubkey-hash script is of the form:
	//  DUP HASH160 <20-byte hash> EQUALVERIFY CHECKSIG
	script[0] = txscript.OP_DUP
	script[1] = txscript.OP_HASH160
	script[2] = txscript.OP_DATA_20
	copy(script[3:23], addr.hash[:])
	script[23] = txscript.OP_EQUALVERIFY
	script[24] = txscript.OP_CHECKSIG
}

// PaymentScript returns a script to pay a transaction output to the address.
//
// This is part of the Address interface implementation.
func (addr *AddressPubKeyHash) PaymentScript() []byte {
	var script [p2pkhPaymentScriptLen]byte
	addr.putPaymentScript(script[:])
	return script[:]
}

// Hash160 returns the underlying array of the pubkey hash.  This can be useful
// when an array is more appropriate than a slice (for example, when used as map
// keys).
//
// This is part of the Hash160er interface implementation.
func (addr *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// AddressScriptHash specifies an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the provided script hash along with all of the encumbrances that script
// itself imposes.  The script is commonly referred to as a redeem script.
//
// This is commonly referred to as pay-to-script-hash (P2SH).
type AddressScriptHash struct {
	netID []byte
	hash  [ripemd160.Size]byte
	armor base58check.Armor
}

// Ensure AddressScriptHash implements the Address and Hash160er interfaces.
var _ Address = (*AddressScriptHash)(nil)
var _ Hash160er = (*AddressScriptHash)(nil)

// NewAddressScriptHashFromHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the provided script hash along with all of the encumbrances that script
// itself imposes.
//
// The provided script hash must be 20 bytes and is expected to be the Hash160
// of the associated redeem script.
//
// See NewAddressScriptHash for a variant that accepts the redeem script instead
// of its hash.
func NewAddressScriptHashFromHash(scriptHash []byte, params AddressParams,
	armor base58check.Armor) (*AddressScriptHash, error) {

	// Check for a valid script hash length.
	if len(scriptHash) != ripemd160.Size {
		str := fmt.Sprintf("script hash is %d bytes vs required %d bytes",
			len(scriptHash), ripemd160.Size)
		return nil, makeError(ErrInvalidHashLen, str)
	}

	addr := &AddressScriptHash{
		netID: params.AddrIDScriptHash(),
		armor: armorOrDefault(armor),
	}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// NewAddressScriptHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the same value as the provided script along with all of the encumbrances
// that script itself imposes.
func NewAddressScriptHash(redeemScript []byte, params AddressParams,
	armor base58check.Armor) (*AddressScriptHash, error) {

	return NewAddressScriptHashFromHash(Hash160(redeemScript), params, armor)
}

// String returns the string encoding of the payment address.
//
// This is part of the Address interface implementation.
func (addr *AddressScriptHash) String() string {
	return encodeAddress(addr.hash[:], addr.netID, addr.armor)
}

// PaymentScript returns a script to pay a transaction output to the address.
//
// This is part of the Address interface implementation.
func (addr *AddressScriptHash) PaymentScript() []byte {
	// A pay-to-script-hash script is of the form:
	//  HASH160 <20-byte hash> EQUAL
	var script [p2shPaymentScriptLen]byte
	script[0] = txscript.OP_HASH160
	script[1] = txscript.OP_DATA_20
	copy(script[2:22], addr.hash[:])
	script[22] = txscript.OP_EQUAL
	return script[:]
}

// Hash160 returns the underlying array of the script hash.  This can be useful
// when an array is more appropriate than a slice (for example, when used as map
// keys).
//
// This is part of the Hash160er interface implementation.
func (addr *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// DecodeAddress decodes the string encoding of an address and returns the
// relevant Address if it is a valid encoding for a known address type and is
// for the network identified by the provided parameters.  A nil armor selects
// the double SHA-256 base58 check encoding.
func DecodeAddress(addr string, params AddressParams,
	armor base58check.Armor) (Address, error) {

	armor = armorOrDefault(armor)
	decoded, err := armor.Decode(addr)
	if err != nil {
		kind := ErrMalformedAddress
		if errors.Is(err, base58check.ErrChecksum) {
			kind = ErrBadAddressChecksum
		}
		str := fmt.Sprintf("failed to decode address %q: %v", addr, err)
		return nil, makeError(kind, str)
	}

	// The prefix alone is not enough to identify the type when one prefix is
	// a leading portion of the other, so the remaining length must match too.
	matches := func(netID []byte) bool {
		return bytes.HasPrefix(decoded, netID) &&
			len(decoded) == len(netID)+ripemd160.Size
	}
	switch pkhID, shID := params.AddrIDPubKeyHash(), params.AddrIDScriptHash(); {
	case matches(pkhID):
		return NewAddressPubKeyHash(decoded[len(pkhID):], params, armor)

	case matches(shID):
		return NewAddressScriptHashFromHash(decoded[len(shID):], params, armor)
	}

	str := fmt.Sprintf("address %q is not a supported type", addr)
	return nil, makeError(ErrUnsupportedAddress, str)
}
