// Copyright (c) 2018-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// ElementsRegTestParams returns the network parameters for the Elements
// regression test network.  This should not be confused with a public test
// network.  It is intended for private use within a group of individuals doing
// development and testing.
func ElementsRegTestParams() *Params {
	return &Params{
		Name:             "elementsregtest",
		BlindedAddrID:    []byte{0x04},
		PubKeyHashAddrID: []byte{0xeb},
		ScriptHashAddrID: []byte{0x4b},
	}
}
