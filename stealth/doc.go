// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package stealth implements the stealth address scheme: a recipient publishes
a scan pubkey and one or more spend pubkeys, and any payer can derive a
one-time, unlinkable destination key from them without an interactive
handshake.

The sender side is Initiate, which combines a fresh ephemeral secret with
the recipient's scan pubkey into a Diffie-Hellman shared secret and tweaks
the spend pubkey by it.  The recipient side is Uncover, which rebuilds the
same destination from the published ephemeral pubkey and the private scan
key, and UncoverSecret, which additionally yields the matching one-time
private key from the spend secret.  For all valid inputs

	Initiate(e, dG, mG) == Uncover(eG, d, mG) == UncoverSecret(eG, d, m)*G

where e, d, and m are the ephemeral, scan, and spend secrets.

Address carries the published form, serialized as a base58check envelope
with a protocol-fixed version byte, and Prefix is the filter recipients use
to cheaply skip irrelevant ephemeral keys while scanning.
*/
package stealth
