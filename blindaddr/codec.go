// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blindaddr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AkioNak/NElements/base58check"
	"github.com/AkioNak/NElements/chaincfg"
	"github.com/AkioNak/NElements/stdaddr"
)

// blindedDataLen is the length of the data following the destination prefix
// of a blinded address.
const blindedDataLen = BlindingKeyLen + DestinationHashLen

// ProfileSource provides the networks a Codec searches when decoding an
// address without an expected network.
type ProfileSource interface {
	// Params returns the networks to search in the order they are to be
	// tried.  Implementations must return a slice the caller may iterate
	// while the source is modified.
	Params() []*chaincfg.Params
}

// Ensure chaincfg.Registry implements the ProfileSource interface.
var _ ProfileSource = (*chaincfg.Registry)(nil)

// Codec encodes and decodes blinded addresses.  It holds no mutable state and
// is safe for concurrent use.
type Codec struct {
	profiles ProfileSource
	armor    base58check.Armor
}

// NewCodec returns a codec that searches the networks provided by profiles
// and wraps payloads with armor.  A nil armor selects the double SHA-256 base58
// check encoding.  A nil profiles restricts decoding to callers that supply
// an expected network.
func NewCodec(profiles ProfileSource, armor base58check.Armor) *Codec {
	if armor == nil {
		armor = base58check.DoubleSHA256
	}
	return &Codec{profiles: profiles, armor: armor}
}

// Armor returns the checksum encoding used by the codec.
func (c *Codec) Armor() base58check.Armor {
	return c.armor
}

// parsedAddress houses the fields of a blinded address payload that was
// accepted by a network.
type parsedAddress struct {
	blindingKey *BlindingKey
	destination DestinationHash
}

// parseBlinded attempts to parse the payload of a blinded address for the
// network identified by the provided parameters.  The returned error describes
// why the network rejected the payload.
func parseBlinded(data []byte, params *chaincfg.Params) (*parsedAddress, error) {
	blindedID := params.AddrIDBlinded()
	if len(blindedID) == 0 {
		return nil, errors.New("network has no blinded address kind")
	}
	if !bytes.HasPrefix(data, blindedID) {
		return nil, fmt.Errorf("payload does not start with blinded prefix %x",
			blindedID)
	}
	inner := data[len(blindedID):]

	// Key hashes take precedence over script hashes.  The next kind is only
	// tried when the current one is rejected, so a script hash whose prefix
	// begins with the key hash prefix is still recognized by its length.
	rejectErr := errors.New("payload does not start with a destination prefix")
	for _, kind := range destinationKinds {
		destID := kind.addrID(params)
		if len(destID) == 0 || !bytes.HasPrefix(inner, destID) {
			continue
		}
		if len(inner) != len(destID)+blindedDataLen {
			rejectErr = fmt.Errorf("%s payload is %d bytes vs required %d "+
				"bytes", kind, len(inner), len(destID)+blindedDataLen)
			continue
		}

		keyStart := len(destID)
		hashStart := keyStart + BlindingKeyLen
		blindingKey, err := ParseBlindingKey(inner[keyStart:hashStart])
		if err != nil {
			rejectErr = err
			continue
		}
		destination, err := newDestinationHash(kind, inner[hashStart:])
		if err != nil {
			rejectErr = err
			continue
		}
		return &parsedAddress{
			blindingKey: blindingKey,
			destination: destination,
		}, nil
	}
	return nil, rejectErr
}

// Decode decodes the text of a blinded address.
//
// When expected is not nil, only that network is tried.  Otherwise every
// network of the codec's profile source is tried in order and the first one
// that accepts the payload is bound to the returned address.
//
// ErrMalformedEncoding is returned when the armor rejects the text and
// ErrUnrecognizedAddress when no candidate network accepts the payload.
func (c *Codec) Decode(addr string, expected *chaincfg.Params) (*BlindedAddress, error) {
	if addr == "" {
		return nil, makeError(ErrInvalidArgument, "empty blinded address")
	}

	data, err := c.armor.Decode(addr)
	if err != nil {
		str := fmt.Sprintf("failed to decode blinded address %q: %v", addr, err)
		return nil, makeError(ErrMalformedEncoding, str)
	}

	var candidates []*chaincfg.Params
	switch {
	case expected != nil:
		candidates = []*chaincfg.Params{expected}
	case c.profiles != nil:
		candidates = c.profiles.Params()
	}

	for _, params := range candidates {
		if params == nil {
			continue
		}
		parsed, err := parseBlinded(data, params)
		if err != nil {
			log.Tracef("Network %s rejected %q: %v", params.Name, addr, err)
			continue
		}

		// Checksum encodings are bijective, so reencoding the payload
		// yields the canonical text of the address.
		encoded, err := c.armor.Encode(data)
		if err != nil {
			return nil, makeError(ErrMalformedEncoding, err.Error())
		}
		log.Debugf("Decoded %s blinded address %s for network %s",
			parsed.destination.Kind(), encoded, params.Name)
		return &BlindedAddress{
			blindingKey: parsed.blindingKey,
			destination: parsed.destination,
			net:         params,
			armor:       c.armor,
			encoded:     encoded,
		}, nil
	}

	str := fmt.Sprintf("no registered network profile matches the encoding "+
		"of %q", addr)
	return nil, makeError(ErrUnrecognizedAddress, str)
}

// DecodeAny decodes the text of a blinded address by searching every network
// of the codec's profile source.
func (c *Codec) DecodeAny(addr string) (*BlindedAddress, error) {
	return c.Decode(addr, nil)
}

// Encode returns the text of the blinded address for the provided blinding
// key, destination and network.
//
// The payload is the blinded prefix of the network, followed by the network's
// prefix for the kind of destination, the serialized blinding key, and the
// destination hash.
func (c *Codec) Encode(blindingKey *BlindingKey, destination DestinationHash,
	net *chaincfg.Params) (string, error) {

	if blindingKey == nil {
		return "", makeError(ErrInvalidArgument, "nil blinding key")
	}
	if !destination.IsValid() {
		str := fmt.Sprintf("invalid destination: %s", destination.Kind())
		return "", makeError(ErrInvalidArgument, str)
	}
	if net == nil {
		return "", makeError(ErrInvalidArgument, "nil network")
	}
	blindedID := net.AddrIDBlinded()
	if len(blindedID) == 0 {
		str := fmt.Sprintf("network %s has no blinded address kind", net.Name)
		return "", makeError(ErrInvalidArgument, str)
	}
	destID := destination.Kind().addrID(net)

	payload := make([]byte, 0, len(blindedID)+len(destID)+blindedDataLen)
	payload = append(payload, blindedID...)
	payload = append(payload, destID...)
	payload = append(payload, blindingKey.serialized[:]...)
	payload = append(payload, destination.hash[:]...)
	encoded, err := c.armor.Encode(payload)
	if err != nil {
		str := fmt.Sprintf("failed to encode blinded address: %v", err)
		return "", makeError(ErrInvalidArgument, str)
	}
	return encoded, nil
}

// NewBlindedAddress returns the blinded address for the provided blinding key,
// destination and network.
func (c *Codec) NewBlindedAddress(blindingKey *BlindingKey,
	destination DestinationHash, net *chaincfg.Params) (*BlindedAddress, error) {

	encoded, err := c.Encode(blindingKey, destination, net)
	if err != nil {
		return nil, err
	}
	return &BlindedAddress{
		blindingKey: blindingKey,
		destination: destination,
		net:         net,
		armor:       c.armor,
		encoded:     encoded,
	}, nil
}

// Blind returns the blinded form of a plain pay-to-pubkey-hash or
// pay-to-script-hash address on the provided network.
func (c *Codec) Blind(addr stdaddr.Address, blindingKey *BlindingKey,
	net *chaincfg.Params) (*BlindedAddress, error) {

	var destination DestinationHash
	switch addr := addr.(type) {
	case *stdaddr.AddressPubKeyHash:
		destination = DestinationHash{kind: KeyHash, hash: *addr.Hash160()}
	case *stdaddr.AddressScriptHash:
		destination = DestinationHash{kind: ScriptHash, hash: *addr.Hash160()}
	default:
		str := fmt.Sprintf("address type %T can't be blinded", addr)
		return nil, makeError(ErrInvalidArgument, str)
	}
	return c.NewBlindedAddress(blindingKey, destination, net)
}
