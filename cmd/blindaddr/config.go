// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AkioNak/NElements/base58check"
	"github.com/AkioNak/NElements/chaincfg"
	"github.com/AkioNak/NElements/internal/version"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultChecksum    = "sha256d"
	defaultLogFilename = "blindaddr.log"
)

// usageCommands is appended to the usage line of the help output.
const usageCommands = `[OPTIONS] <command> [args...]

Commands:
  decode <blinded-addr>
  encode <blindingkey-hex> <p2pkh|p2sh> <hash-hex>   (requires --net)
  blind <plain-addr> <blindingkey-hex>
  unblind <blinded-addr>
  listnets`

// errExitEarly is returned by loadConfig when the requested information was
// printed and there is nothing left to do.
var errExitEarly = errors.New("nothing left to do")

// config defines the configuration options for blindaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Net         string `short:"n" long:"net" description:"Network to use; every known network is searched when not set"`
	Checksum    string `short:"c" long:"checksum" description:"Checksum encoding of addresses {sha256d, blake256d}"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir      string `long:"logdir" description:"Directory to log output; logs are only written to stderr when not set"`

	// The following fields are resolved from the options above.
	registry *chaincfg.Registry
	net      *chaincfg.Params
	armor    base58check.Armor
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := slog.LevelFromString(logLevel)
	return ok
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	parser.Usage = usageCommands
	return parser
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and validate them
//  3. Resolve the network and checksum encoding
//  4. Initialize logging
//
// The remaining positional arguments are returned along with the config.
func loadConfig(args []string) (*config, []string, *flags.Parser, error) {
	cfg := config{
		Checksum:   defaultChecksum,
		DebugLevel: defaultLogLevel,
	}

	parser := newConfigParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, parser, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", filepath.Base(os.Args[0]),
			version.String())
		return nil, nil, parser, errExitEarly
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return nil, nil, parser, errExitEarly
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, parser, err
	}

	armor, ok := base58check.ByName(cfg.Checksum)
	if !ok {
		str := "the specified checksum encoding [%v] is invalid -- " +
			"supported encodings [sha256d blake256d]"
		return nil, nil, parser, fmt.Errorf(str, cfg.Checksum)
	}
	cfg.armor = armor

	cfg.registry = chaincfg.DefaultRegistry()
	if cfg.Net != "" {
		net, ok := cfg.registry.ByName(cfg.Net)
		if !ok {
			var names []string
			for _, p := range cfg.registry.Params() {
				names = append(names, p.Name)
			}
			str := "the specified network [%v] is unknown -- supported " +
				"networks %v"
			return nil, nil, parser, fmt.Errorf(str, cfg.Net, names)
		}
		cfg.net = net
	}

	// Initialize the log rotator when a log directory was requested.
	if cfg.LogDir != "" {
		logFile := filepath.Join(cleanAndExpandPath(cfg.LogDir),
			defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, nil, parser, err
		}
	}

	return &cfg, remainingArgs, parser, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the passed
// path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
