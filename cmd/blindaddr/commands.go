// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/AkioNak/NElements/blindaddr"
	"github.com/AkioNak/NElements/chaincfg"
	"github.com/AkioNak/NElements/stdaddr"
)

// errUsage indicates a command was invoked with the wrong arguments.
var errUsage = errors.New("invalid command usage")

// app houses the state shared by all commands.
type app struct {
	cfg   *config
	codec *blindaddr.Codec
}

// newApp returns the command state for the provided configuration.
func newApp(cfg *config) *app {
	return &app{
		cfg:   cfg,
		codec: blindaddr.NewCodec(cfg.registry, cfg.armor),
	}
}

// commandHandler is the signature of the function that implements a command.
type commandHandler func(a *app, w io.Writer, args []string) error

// command describes a command along with the number of arguments it requires.
type command struct {
	numArgs int
	handler commandHandler
}

// commands maps each command name to its implementation.
var commands = map[string]command{
	"decode":   {1, handleDecode},
	"encode":   {3, handleEncode},
	"blind":    {2, handleBlind},
	"unblind":  {1, handleUnblind},
	"listnets": {0, handleListNets},
}

// run executes the command named by the first argument.
func (a *app) run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	if len(args)-1 != cmd.numArgs {
		return fmt.Errorf("%w: %s takes %d arguments", errUsage, args[0],
			cmd.numArgs)
	}
	log.Debugf("Running command %s", args[0])
	return cmd.handler(a, w, args[1:])
}

// parseBlindingKeyHex parses a hex encoded compressed blinding key.
func parseBlindingKeyHex(s string) (*blindaddr.BlindingKey, error) {
	serialized, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("malformed blinding key hex: %w", err)
	}
	return blindaddr.ParseBlindingKey(serialized)
}

// writeAddress writes the details of a blinded address.
func writeAddress(w io.Writer, addr *blindaddr.BlindedAddress) error {
	unblinded, err := addr.UnblindedAddress()
	if err != nil {
		return err
	}
	hash := addr.Destination().Hash()

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "address:\t%s\n", addr)
	fmt.Fprintf(tw, "network:\t%s\n", addr.Net())
	fmt.Fprintf(tw, "kind:\t%s\n", addr.Destination().Kind())
	fmt.Fprintf(tw, "blinding key:\t%s\n", addr.BlindingKey())
	fmt.Fprintf(tw, "hash:\t%x\n", hash[:])
	fmt.Fprintf(tw, "unblinded:\t%s\n", unblinded)
	fmt.Fprintf(tw, "payment script:\t%x\n", addr.PaymentScript())
	return tw.Flush()
}

// handleDecode decodes a blinded address with the configured network or by
// searching every known network.
func handleDecode(a *app, w io.Writer, args []string) error {
	addr, err := a.codec.Decode(args[0], a.cfg.net)
	if err != nil {
		return err
	}
	return writeAddress(w, addr)
}

// handleEncode encodes a blinded address from a blinding key, a destination
// kind and a destination hash.
func handleEncode(a *app, w io.Writer, args []string) error {
	if a.cfg.net == nil {
		return fmt.Errorf("%w: encode requires --net", errUsage)
	}
	key, err := parseBlindingKeyHex(args[0])
	if err != nil {
		return err
	}
	hash, err := hex.DecodeString(args[2])
	if err != nil {
		return fmt.Errorf("malformed destination hash hex: %w", err)
	}

	var dest blindaddr.DestinationHash
	switch args[1] {
	case "p2pkh":
		dest, err = blindaddr.NewKeyHash(hash)
	case "p2sh":
		dest, err = blindaddr.NewScriptHash(hash)
	default:
		return fmt.Errorf("%w: unknown destination kind %q", errUsage, args[1])
	}
	if err != nil {
		return err
	}

	encoded, err := a.codec.Encode(key, dest, a.cfg.net)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, encoded)
	return err
}

// decodePlain decodes a plain address for the configured network or the first
// known network with blinded addresses that accepts it.
func (a *app) decodePlain(addr string) (stdaddr.Address, *chaincfg.Params, error) {
	if a.cfg.net != nil {
		plain, err := stdaddr.DecodeAddress(addr, a.cfg.net, a.cfg.armor)
		return plain, a.cfg.net, err
	}

	var lastErr error
	for _, net := range a.cfg.registry.Params() {
		if !net.HasBlindedAddrs() {
			continue
		}
		plain, err := stdaddr.DecodeAddress(addr, net, a.cfg.armor)
		if err != nil {
			lastErr = err
			continue
		}
		return plain, net, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no network with blinded addresses is known")
	}
	return nil, nil, lastErr
}

// handleBlind blinds a plain address with the provided blinding key.
func handleBlind(a *app, w io.Writer, args []string) error {
	plain, net, err := a.decodePlain(args[0])
	if err != nil {
		return err
	}
	key, err := parseBlindingKeyHex(args[1])
	if err != nil {
		return err
	}
	addr, err := a.codec.Blind(plain, key, net)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, addr)
	return err
}

// handleUnblind prints the plain address of a blinded address.
func handleUnblind(a *app, w io.Writer, args []string) error {
	addr, err := a.codec.Decode(args[0], a.cfg.net)
	if err != nil {
		return err
	}
	unblinded, err := addr.UnblindedAddress()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, unblinded)
	return err
}

// handleListNets lists the known networks and their address prefixes.
func handleListNets(a *app, w io.Writer, _ []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBLINDED\tP2PKH\tP2SH")
	for _, net := range a.cfg.registry.Params() {
		blinded := "-"
		if net.HasBlindedAddrs() {
			blinded = hex.EncodeToString(net.AddrIDBlinded())
		}
		fmt.Fprintf(tw, "%s\t%s\t%x\t%x\n", net.Name, blinded,
			net.AddrIDPubKeyHash(), net.AddrIDScriptHash())
	}
	return tw.Flush()
}
