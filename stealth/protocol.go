// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealth

import (
	"github.com/stealthpay/stealthkit/ec"
)

// Initiate derives the one-time destination pubkey a payer addresses funds
// to: the recipient's spend pubkey tweaked by the hashed Diffie-Hellman
// secret between the payer's ephemeral secret and the recipient's scan
// pubkey.  The payer must separately publish the ephemeral pubkey so the
// recipient can reconstruct the same secret.
//
// A degenerate arithmetic result is returned as an error; the caller must
// discard the ephemeral secret and derive again with a fresh one, never
// reuse it.
func Initiate(ctx *ec.Context, ephemeralSecret ec.Secret, scanPubKey,
	spendPubKey ec.Point) (ec.Point, error) {

	shared, err := ctx.SharedSecret(ephemeralSecret, scanPubKey)
	if err != nil {
		return nil, err
	}
	return ctx.TweakAdd(spendPubKey, shared)
}

// Uncover recovers the one-time destination pubkey on the recipient side
// from the published ephemeral pubkey and the private scan key.  By
// Diffie-Hellman symmetry it produces the identical point as the payer's
// Initiate, which is the correctness law of the whole scheme.
func Uncover(ctx *ec.Context, ephemeralPubKey ec.Point, scanSecret ec.Secret,
	spendPubKey ec.Point) (ec.Point, error) {

	shared, err := ctx.SharedSecret(scanSecret, ephemeralPubKey)
	if err != nil {
		return nil, err
	}
	return ctx.TweakAdd(spendPubKey, shared)
}

// UncoverSecret recovers the one-time private key matching the destination
// pubkey that Uncover recovers, giving the recipient full control of the
// funds: the spend secret plus the shared secret mod the group order.
func UncoverSecret(ctx *ec.Context, ephemeralPubKey ec.Point,
	scanSecret, spendSecret ec.Secret) (ec.Secret, error) {

	shared, err := ctx.SharedSecret(scanSecret, ephemeralPubKey)
	if err != nil {
		return ec.Secret{}, err
	}
	return ec.AddSecrets(spendSecret, shared)
}
