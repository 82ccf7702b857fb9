// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines the network parameters that are threaded through
address and key encoding.

Every encode and decode call in the stealthutil and stealth packages takes a
*Params so the caller chooses the network at runtime rather than at build
time.  The package registers the main and test networks at init time and
refuses version byte collisions, which keeps addresses from one network from
ever decoding as another's.
*/
package chaincfg
