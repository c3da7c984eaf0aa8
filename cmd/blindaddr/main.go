// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	closeLogRotator()
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	closeLogRotator()
	os.Exit(2)
}

func main() {
	cfg, args, parser, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		switch {
		case errors.Is(err, errExitEarly):
			os.Exit(0)
		case errors.As(err, &e):
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		fatalf("%v\n", err)
	}

	err = newApp(cfg).run(os.Stdout, args)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		usage(parser)
	}
	if err != nil {
		log.Debugf("Command failed: %v", err)
		fatalf("%v\n", err)
	}
	closeLogRotator()
}
