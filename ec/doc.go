// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ec wraps the secp256k1 backend with the small set of primitives the
stealth protocol composes: deriving public keys, multiplying and tweaking
points, adding scalars, generating random secrets, and computing hashed
Diffie-Hellman shared secrets.

The backend lifecycle is explicit.  A Context must be initialized once before
the first derivation and shut down by its owner at exit; initialization is
idempotent and guarded, so callers never depend on implicit global
construction or destruction order.  Derivations are pure, CPU-bound, and safe
for concurrent use between Init and Shutdown.

Every fallible operation validates its inputs (secrets must be nonzero and
below the group order, points must decode to curve points) and returns an
explicit error rather than a partial result.  Degenerate arithmetic results,
the point at infinity or the zero scalar, are reported as errors the caller
must reject.
*/
package ec
