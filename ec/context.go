// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ec

import (
	"sync"
	"sync/atomic"

	"github.com/decred/dcrd/crypto/rand"
)

// Context lifecycle states.
const (
	stateUninitialized uint32 = iota
	stateInitialized
	stateShutdown
)

// Context owns the process-wide state of the curve backend: the seeded
// random source used for secret generation and the initialized/shutdown
// lifecycle flag.  It must be initialized once before the first derivation
// and shut down when the owner is done with it.
//
// All derivation methods are safe for concurrent use once Init has returned.
type Context struct {
	mtx   sync.Mutex // guards state transitions and prng
	state uint32     // atomic reads, writes under mtx
	prng  *rand.PRNG
}

// NewContext returns an uninitialized Context.  Derivations fail with
// ErrNotInitialized until Init is called.
func NewContext() *Context {
	return &Context{}
}

// Init initializes the context by seeding its random source from the
// operating system.  It is idempotent and safe for concurrent use; extra
// calls on an initialized context are no-ops.  Initializing a context that
// has been shut down is an error.
func (c *Context) Init() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	switch c.state {
	case stateInitialized:
		return nil
	case stateShutdown:
		return makeError(ErrNotInitialized, "context has been shut down")
	}

	prng, err := rand.NewPRNG()
	if err != nil {
		return makeError(ErrEntropy, "failed to seed random source: "+
			err.Error())
	}
	c.prng = prng
	atomic.StoreUint32(&c.state, stateInitialized)
	return nil
}

// Shutdown releases the context.  It is idempotent.  Derivations attempted
// after shutdown fail with ErrNotInitialized.
func (c *Context) Shutdown() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.prng = nil
	atomic.StoreUint32(&c.state, stateShutdown)
}

// ready returns an error unless the context is between Init and Shutdown.
func (c *Context) ready() error {
	if atomic.LoadUint32(&c.state) != stateInitialized {
		return makeError(ErrNotInitialized, "context is not initialized")
	}
	return nil
}

// GenerateSecret returns a cryptographically secure random secret that is
// uniform in [1, N-1], where N is the group order.  Out-of-range reads are
// rejected and retried so no bias is introduced by reduction.
func (c *Context) GenerateSecret() (Secret, error) {
	if err := c.ready(); err != nil {
		return Secret{}, err
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.prng == nil {
		return Secret{}, makeError(ErrNotInitialized, "context is not initialized")
	}

	var secret Secret
	for {
		if _, err := c.prng.Read(secret[:]); err != nil {
			return Secret{}, makeError(ErrEntropy, "failed to read "+
				"entropy: "+err.Error())
		}
		if _, err := parseSecret(secret); err == nil {
			return secret, nil
		}
	}
}
