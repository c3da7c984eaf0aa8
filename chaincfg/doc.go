// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the address encoding parameters of the networks
// blinded addresses can be created for.
//
// Every network is described by a Params value which carries the version
// bytes that prefix the three address kinds the package is concerned with:
// blinded (confidential) addresses, pay-to-pubkey-hash addresses and
// pay-to-script-hash addresses.  A network that has no blinded address kind,
// such as the Bitcoin main network, leaves the blinded prefix unset.
//
// Networks are grouped into a Registry which keeps them in registration order.
// The order matters to callers that search every registered network for one
// that accepts a given encoding, since the first network that matches wins.
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"os"
//
//		"github.com/AkioNak/NElements/blindaddr"
//		"github.com/AkioNak/NElements/chaincfg"
//	)
//
//	func main() {
//		codec := blindaddr.NewCodec(chaincfg.DefaultRegistry(), nil)
//		addr, err := codec.DecodeAny(os.Args[1])
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(addr.Net().Name)
//	}
//
// If an application does not use one of the standard networks, a new Params
// struct may be created and registered with a Registry.  As a general rule of
// thumb, all network parameters should be unique to the network, but parameter
// collisions can still occur, in which case the earlier registration wins
// during a search.
package chaincfg
