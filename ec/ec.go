// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ec

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/stealthpay/stealthkit/chainhash"
)

// SecretToPubKey derives the public key for a secret and serializes it in
// the requested format.  It errors when the secret is zero or not less than
// the group order.
func (c *Context) SecretToPubKey(secret Secret, compressed bool) (Point, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	k, err := parseSecret(secret)
	if err != nil {
		return nil, err
	}

	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &result)
	result.ToAffine()
	pub := secp256k1.NewPublicKey(&result.X, &result.Y)
	return serializePoint(pub, compressed), nil
}

// Multiply multiplies a point by a secret scalar and returns the product
// serialized in the same format as the input point.  The input point is
// never modified.  It errors when either input is invalid or the product is
// the point at infinity.
func (c *Context) Multiply(point Point, secret Secret) (Point, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	product, err := multiply(point, secret)
	if err != nil {
		return nil, err
	}
	return serializePoint(product, point.IsCompressed()), nil
}

// TweakAdd adds secret*G to a point and returns the sum serialized in the
// same format as the input point.  This shifts a base spend key to a one-time
// destination key.  The input point is never modified.  It errors when either
// input is invalid or the sum is the point at infinity.
func (c *Context) TweakAdd(point Point, secret Secret) (Point, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	k, err := parseSecret(secret)
	if err != nil {
		return nil, err
	}
	pub, err := parsePoint(point)
	if err != nil {
		return nil, err
	}

	var p, tweak, result secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	secp256k1.ScalarBaseMultNonConst(k, &tweak)
	secp256k1.AddNonConst(&p, &tweak, &result)
	if (&result.Z).Normalize().IsZero() {
		str := "tweaked point is the point at infinity"
		return nil, makeError(ErrDegeneratePoint, str)
	}
	result.ToAffine()
	sum := secp256k1.NewPublicKey(&result.X, &result.Y)
	return serializePoint(sum, point.IsCompressed()), nil
}

// AddSecrets returns the sum of two secrets mod the group order.  It errors
// when either input is invalid or the sum is the zero scalar, which the
// caller must treat as a derivation collision and reject.
func AddSecrets(a, b Secret) (Secret, error) {
	ka, err := parseSecret(a)
	if err != nil {
		return Secret{}, err
	}
	kb, err := parseSecret(b)
	if err != nil {
		return Secret{}, err
	}

	sum := new(secp256k1.ModNScalar).Add2(ka, kb)
	if sum.IsZero() {
		str := "sum of secrets is the zero scalar"
		return Secret{}, makeError(ErrDegenerateSecret, str)
	}
	return Secret(sum.Bytes()), nil
}

// SharedSecret computes the Diffie-Hellman shared secret between a secret and
// a point.  The product point is serialized compressed and hashed with
// SHA-256 so the raw shared coordinates never leak into downstream key
// material.
func (c *Context) SharedSecret(secret Secret, point Point) (Secret, error) {
	if err := c.ready(); err != nil {
		return Secret{}, err
	}
	product, err := multiply(point, secret)
	if err != nil {
		return Secret{}, err
	}
	return Secret(chainhash.HashH(product.SerializeCompressed())), nil
}

// multiply validates both inputs and returns secret*point, rejecting a
// product at infinity.
func multiply(point Point, secret Secret) (*secp256k1.PublicKey, error) {
	k, err := parseSecret(secret)
	if err != nil {
		return nil, err
	}
	pub, err := parsePoint(point)
	if err != nil {
		return nil, err
	}

	var p, result secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	secp256k1.ScalarMultNonConst(k, &p, &result)
	if (&result.Z).Normalize().IsZero() {
		str := "product is the point at infinity"
		return nil, makeError(ErrDegeneratePoint, str)
	}
	result.ToAffine()
	return secp256k1.NewPublicKey(&result.X, &result.Y), nil
}
