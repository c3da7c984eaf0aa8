// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// BitcoinMainNetParams returns the network parameters for the main Bitcoin
// network.  It has no blinded address kind and is registered so that plain
// Bitcoin addresses can be resolved and so searches skip it cleanly.
func BitcoinMainNetParams() *Params {
	return &Params{
		Name:             "mainnet",
		BlindedAddrID:    nil,
		PubKeyHashAddrID: []byte{0x00}, // starts with 1
		ScriptHashAddrID: []byte{0x05}, // starts with 3
	}
}

// LiquidParams returns the network parameters for the main Liquid network.
func LiquidParams() *Params {
	return &Params{
		Name:             "liquid",
		BlindedAddrID:    []byte{0x0c}, // starts with VT or VJ
		PubKeyHashAddrID: []byte{0x39}, // starts with Q
		ScriptHashAddrID: []byte{0x27}, // starts with G or H
	}
}
