// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealthutil

import (
	"hash"

	"github.com/decred/dcrd/crypto/ripemd160"

	"github.com/stealthpay/stealthkit/chainhash"
)

// calcHash calculates the hash of the passed data using the given hasher.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 calculates the hash ripemd160(sha256(b)).  It is the short hash
// that compresses a serialized public key or script into an address payload.
func Hash160(buf []byte) []byte {
	return calcHash(chainhash.HashB(buf), ripemd160.New())
}
