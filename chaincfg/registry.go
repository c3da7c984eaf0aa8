// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync"
)

// Registry houses an ordered set of network parameters keyed by name.  It is
// safe for concurrent access.
//
// The order networks are registered in is preserved and is the order callers
// searching the registry try them in.
type Registry struct {
	mtx    sync.RWMutex
	params []*Params
	byName map[string]*Params
}

// NewRegistry returns a registry populated with the provided network
// parameters in the given order.
func NewRegistry(params ...*Params) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Params, len(params))}
	for _, p := range params {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a new registry populated with all of the standard
// networks: Bitcoin mainnet, Liquid, Liquid testnet and Elements regtest, in
// that order.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(standardParams()...)
	if err != nil {
		// The standard params are validated at init.
		panic(err)
	}
	return r
}

// Register appends the provided network parameters to the registry.  The
// parameters must carry a unique name along with the pay-to-pubkey-hash and
// pay-to-script-hash prefixes.
func (r *Registry) Register(p *Params) error {
	if err := p.validate(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.byName == nil {
		r.byName = make(map[string]*Params)
	}
	if _, ok := r.byName[p.Name]; ok {
		str := fmt.Sprintf("network %q is already registered", p.Name)
		return makeError(ErrDuplicateNet, str)
	}
	r.params = append(r.params, p)
	r.byName[p.Name] = p
	log.Debugf("Registered network %s (%d total)", p.Name, len(r.params))
	return nil
}

// Params returns a snapshot of all registered network parameters in
// registration order.  Networks registered after the call returns do not
// appear in the returned slice.
func (r *Registry) Params() []*Params {
	r.mtx.RLock()
	params := make([]*Params, len(r.params))
	copy(params, r.params)
	r.mtx.RUnlock()
	return params
}

// ByName returns the network parameters registered under the provided name.
func (r *Registry) ByName(name string) (*Params, bool) {
	r.mtx.RLock()
	p, ok := r.byName[name]
	r.mtx.RUnlock()
	return p, ok
}

// Len returns the number of registered networks.
func (r *Registry) Len() int {
	r.mtx.RLock()
	n := len(r.params)
	r.mtx.RUnlock()
	return n
}
