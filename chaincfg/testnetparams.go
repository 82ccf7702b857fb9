// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name: "testnet",

	// Address encoding magics.
	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xef,
	StealthAddrID:    0x2a,
}
