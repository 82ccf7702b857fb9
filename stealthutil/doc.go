// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package stealthutil provides the payment-side value types of the stealth
core: base58check payment addresses, Wallet Import Format private keys, and
the Hash160 short hash that binds public keys to address payloads.

All encode and decode operations take chaincfg network parameters so the
version bytes of one network never leak into another.
*/
package stealthutil
