// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name: "mainnet",

	// Address encoding magics.
	PubKeyHashAddrID: 0x41,
	ScriptHashAddrID: 0xb2,
	PrivateKeyID:     0xc1,
	StealthAddrID:    0x2a,
}
