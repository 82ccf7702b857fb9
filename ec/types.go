// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ec

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// SecretSize is the size in bytes of a serialized secret scalar.
	SecretSize = 32

	// CompressedPointSize is the size in bytes of a compressed serialized
	// curve point.
	CompressedPointSize = 33

	// UncompressedPointSize is the size in bytes of an uncompressed
	// serialized curve point.
	UncompressedPointSize = 65
)

// Secret is a 32-byte big-endian scalar.  It represents a private key or a
// shared-secret intermediate.  A secret is only usable for derivation when
// it is nonzero and less than the group order; every operation that consumes
// a secret validates this.
type Secret [SecretSize]byte

// IsZero returns whether the secret is all zeroes.
func (s *Secret) IsZero() bool {
	var zero Secret
	return *s == zero
}

// Zero manually clears the memory associated with the secret.  This can be
// used to explicitly clear key material from memory for enhanced security
// against memory scraping.
func (s *Secret) Zero() {
	*s = Secret{}
}

// Point is a serialized curve point: 33 bytes with a 0x02/0x03 prefix when
// compressed or 65 bytes with a 0x04 prefix when uncompressed.  It represents
// a public key or an ephemeral key.
type Point []byte

// IsCompressed returns whether the point carries the compressed serialized
// length.
func (p Point) IsCompressed() bool {
	return len(p) == CompressedPointSize
}

// IsOnCurve returns whether the serialized bytes describe a valid point on
// the curve.
func (p Point) IsOnCurve() bool {
	_, err := secp256k1.ParsePubKey(p)
	return err == nil
}

// parseSecret validates and converts a secret to a scalar mod the group
// order.  Zero and out-of-range secrets are rejected rather than reduced.
func parseSecret(secret Secret) (*secp256k1.ModNScalar, error) {
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(secret[:]); overflow || k.IsZero() {
		str := "secret is zero or exceeds the group order"
		return nil, makeError(ErrInvalidSecret, str)
	}
	return &k, nil
}

// parsePoint validates and deserializes a point, rejecting encodings that do
// not describe a point on the curve.
func parsePoint(point Point) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(point)
	if err != nil {
		str := "point does not decode to a valid curve point: " + err.Error()
		return nil, makeError(ErrInvalidPoint, str)
	}
	return pub, nil
}

// serializePoint serializes a public key in the requested format.
func serializePoint(pub *secp256k1.PublicKey, compressed bool) Point {
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}
