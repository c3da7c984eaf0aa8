// Copyright (c) 2017-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// standardParams returns the standard networks in the order they are
// registered by DefaultRegistry.
func standardParams() []*Params {
	return []*Params{BitcoinMainNetParams(), LiquidParams(),
		LiquidTestNetParams(), ElementsRegTestParams()}
}

// validateStandardParams panics when any of the standard networks is
// inconsistent since that can only be the result of a programming error.
func validateStandardParams() {
	seen := make(map[string]struct{})
	for _, params := range standardParams() {
		if err := params.validate(); err != nil {
			panic(fmt.Sprintf("invalid standard network: %v", err))
		}
		if _, ok := seen[params.Name]; ok {
			panic(fmt.Sprintf("duplicate standard network %q", params.Name))
		}
		seen[params.Name] = struct{}{}
	}
}

func init() {
	validateStandardParams()
}
