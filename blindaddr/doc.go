// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blindaddr implements blinded (confidential) payment addresses.

A blinded address carries two payloads: a one-time blinding public key which
senders use to derive confidential transaction outputs, and the hash of the
destination that ultimately controls the funds, which is either a public key
hash or a script hash.  The text form is the checksum-armored encoding of:

	blinded prefix || destination prefix || 33-byte blinding key || 20-byte hash

where the blinded prefix and the destination prefix are the version bytes the
network defines for blinded addresses and for the kind of destination
respectively.

# Decoding

The text of an address does not say which network produced it.  A Codec
decodes text by first removing the checksum armor and then trying each
candidate network in order.  A network accepts the payload when it starts with
the network's blinded prefix followed by one of its destination prefixes, the
remaining length is exactly that of a blinding key and a hash, and the key
bytes form a valid compressed secp256k1 public key.  Destination kinds are
tried key hash first.  The first network that accepts the payload is bound to
the resulting BlindedAddress.

Checksum failures are reported immediately as ErrMalformedEncoding since they
do not depend on the network.  Payloads no network accepts are reported as
ErrUnrecognizedAddress.

# Encoding

Encoding composes the payload above for a blinding key, a destination hash and
a network and armors it.  It never fails for valid inputs.

The blinding key is only parsed and carried by this package.  Deriving the
shared secrets used to blind outputs is left to callers.
*/
package blindaddr
