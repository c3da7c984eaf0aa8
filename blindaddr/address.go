// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

import (
	"github.com/AkioNak/NElements/base58check"
	"github.com/AkioNak/NElements/chaincfg"
	"github.com/AkioNak/NElements/stdaddr"
)

// BlindedAddress is a decoded or newly created blinded address.  It is an
// immutable value: the blinding key, destination and network always encode to
// the text returned by String.
type BlindedAddress struct {
	blindingKey *BlindingKey
	destination DestinationHash
	net         *chaincfg.Params
	armor       base58check.Armor
	encoded     string
}

// BlindingKey returns the blinding key carried by the address.
func (a *BlindedAddress) BlindingKey() *BlindingKey {
	return a.blindingKey
}

// Destination returns the destination hash carried by the address.
func (a *BlindedAddress) Destination() DestinationHash {
	return a.destination
}

// Net returns the network the address belongs to.
func (a *BlindedAddress) Net() *chaincfg.Params {
	return a.net
}

// String returns the canonical text encoding of the address.
func (a *BlindedAddress) String() string {
	return a.encoded
}

// UnblindedAddress returns the plain address the destination of the blinded
// address resolves to on its network.  It is encoded with the same armor as
// the blinded address.
func (a *BlindedAddress) UnblindedAddress() (stdaddr.Address, error) {
	return a.destination.Address(a.net, a.armor)
}

// PaymentScript returns the script that pays to the destination of the
// address.
func (a *BlindedAddress) PaymentScript() []byte {
	return a.destination.PaymentScript()
}
