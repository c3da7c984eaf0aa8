// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58check provides the checksum-armored base58 text encodings used
// to wrap address payloads.
//
// Two encodings are available.  DoubleSHA256 appends the first four bytes of
// the double SHA-256 of the payload and is used by Bitcoin and Elements based
// networks.  DoubleBLAKE256 appends the first four bytes of the double
// BLAKE-256 of the payload and is used by Decred based networks.  Both reject
// text containing characters outside of the base58 alphabet with
// ErrInvalidFormat and text whose checksum does not match with ErrChecksum.
package base58check
