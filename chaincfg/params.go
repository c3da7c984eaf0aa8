// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"fmt"
)

// Params defines the address encoding parameters of a network.  These
// parameters may be used by applications to differentiate networks as well as
// addresses intended for use on one network from those intended for use on
// another network.
//
// Params values handed to a Registry must not be modified afterwards.  The
// accessor methods return copies of the version bytes so callers can't
// accidentally alter a registered network through them.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Address encoding magics.  Prefixes may be of any length, though all
	// of the standard networks use a single byte.  A nil BlindedAddrID
	// means the network has no blinded address kind.
	BlindedAddrID    []byte // Leading bytes of a blinded address
	PubKeyHashAddrID []byte // Leading bytes of a P2PKH address
	ScriptHashAddrID []byte // Leading bytes of a P2SH address
}

// AddrIDBlinded returns the magic prefix bytes for blinded addresses or nil
// when the network does not define them.
func (p *Params) AddrIDBlinded() []byte {
	return cloneBytes(p.BlindedAddrID)
}

// AddrIDPubKeyHash returns the magic prefix bytes for pay-to-pubkey-hash
// addresses.
//
// This is part of the stdaddr.AddressParams interface.
func (p *Params) AddrIDPubKeyHash() []byte {
	return cloneBytes(p.PubKeyHashAddrID)
}

// AddrIDScriptHash returns the magic prefix bytes for pay-to-script-hash
// addresses.
//
// This is part of the stdaddr.AddressParams interface.
func (p *Params) AddrIDScriptHash() []byte {
	return cloneBytes(p.ScriptHashAddrID)
}

// HasBlindedAddrs returns whether or not the network defines a blinded address
// kind.
func (p *Params) HasBlindedAddrs() bool {
	return len(p.BlindedAddrID) != 0
}

// String returns the name of the network.
func (p *Params) String() string {
	return p.Name
}

// cloneBytes returns a copy of b that preserves nil.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// validate ensures the parameters carry everything required to encode and
// decode addresses for the network.
func (p *Params) validate() error {
	if p == nil {
		return makeError(ErrInvalidParams, "nil network parameters")
	}
	if p.Name == "" {
		return makeError(ErrInvalidParams, "network parameters have no name")
	}
	if len(p.PubKeyHashAddrID) == 0 {
		str := fmt.Sprintf("network %q has no pay-to-pubkey-hash prefix",
			p.Name)
		return makeError(ErrInvalidParams, str)
	}
	if len(p.ScriptHashAddrID) == 0 {
		str := fmt.Sprintf("network %q has no pay-to-script-hash prefix",
			p.Name)
		return makeError(ErrInvalidParams, str)
	}
	if p.BlindedAddrID != nil && len(p.BlindedAddrID) == 0 {
		str := fmt.Sprintf("network %q has an empty blinded address prefix",
			p.Name)
		return makeError(ErrInvalidParams, str)
	}

	// Identical prefixes make the two destination kinds indistinguishable.
	if bytes.Equal(p.PubKeyHashAddrID, p.ScriptHashAddrID) {
		str := fmt.Sprintf("network %q uses the same prefix for "+
			"pay-to-pubkey-hash and pay-to-script-hash addresses", p.Name)
		return makeError(ErrInvalidParams, str)
	}
	return nil
}
