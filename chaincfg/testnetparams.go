// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// LiquidTestNetParams returns the network parameters for the Liquid test
// network.
func LiquidTestNetParams() *Params {
	return &Params{
		Name:             "liquidtestnet",
		BlindedAddrID:    []byte{0x17},
		PubKeyHashAddrID: []byte{0x24},
		ScriptHashAddrID: []byte{0x13},
	}
}
