// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealthutil

import (
	"errors"

	"github.com/stealthpay/stealthkit/base58"
	"github.com/stealthpay/stealthkit/chaincfg"
	"github.com/stealthpay/stealthkit/ec"
)

// ErrMalformedPrivateKey describes an error where a WIF-encoded private key
// cannot be decoded due to being improperly formatted.  This may occur if
// the byte length is incorrect or an unexpected magic number was
// encountered.
var ErrMalformedPrivateKey = errors.New("malformed private key")

// compressedFlag is the byte appended to the secret before the checksum when
// the key is intended to derive a compressed public key.  Its presence or
// absence is part of the protocol: decoders use it to infer the intended
// public key form.
const compressedFlag = 0x01

// WIF contains the individual components described by the Wallet Import
// Format (WIF).  A WIF string is typically used to represent a private key
// in a way that may be easily copied and imported into or exported from
// wallet software.  WIF strings may be decoded into this structure by
// calling DecodeWIF or created with a user-provided secret by calling
// NewWIF.
type WIF struct {
	// netID is the network identifier byte used when WIF encoding the
	// private key.
	netID byte

	// secret is the private key being imported or exported.
	secret ec.Secret

	// compressed specifies whether the key is intended to derive the
	// compressed serialization of its public key.
	compressed bool
}

// NewWIF creates a new WIF structure to export a private key as a string
// encoded in the Wallet Import Format.  The compressed flag records which
// serialization of the corresponding public key the key is bound to.
func NewWIF(secret ec.Secret, params *chaincfg.Params, compressed bool) *WIF {
	return &WIF{netID: params.PrivateKeyID, secret: secret, compressed: compressed}
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format, which is required to be for the provided network.
//
// The WIF string must be a base58check string of the following byte
// sequence:
//
//   - 1 byte to identify the network
//   - 32 bytes of a binary-encoded, big-endian, zero-padded private key
//   - optionally 1 byte with the value 0x01 when the key is bound to the
//     compressed form of its public key
//   - 4 bytes of checksum over every preceding byte
//
// ErrMalformedPrivateKey is returned when the decoded bytes are of an
// impossible length or the optional trailing byte is not 0x01.
// ErrChecksumMismatch is returned when the checksum does not verify.
// ErrWrongNetwork is returned when the network byte does not match the
// provided network.
func DecodeWIF(wif string, params *chaincfg.Params) (*WIF, error) {
	version, payload, err := base58.CheckDecode(wif)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, ErrChecksumMismatch
		}
		return nil, ErrMalformedPrivateKey
	}

	var compressed bool
	switch len(payload) {
	case ec.SecretSize:
		compressed = false
	case ec.SecretSize + 1:
		if payload[ec.SecretSize] != compressedFlag {
			return nil, ErrMalformedPrivateKey
		}
		compressed = true
	default:
		return nil, ErrMalformedPrivateKey
	}

	if version != params.PrivateKeyID {
		return nil, ErrWrongNetwork
	}

	w := &WIF{netID: version, compressed: compressed}
	copy(w.secret[:], payload[:ec.SecretSize])
	return w, nil
}

// String creates the Wallet Import Format string encoding of a WIF
// structure.  See DecodeWIF for a detailed breakdown of the format.
func (w *WIF) String() string {
	encodeLen := ec.SecretSize
	if w.compressed {
		encodeLen++
	}

	payload := make([]byte, 0, encodeLen)
	payload = append(payload, w.secret[:]...)
	if w.compressed {
		payload = append(payload, compressedFlag)
	}
	return base58.CheckEncode(w.netID, payload)
}

// Secret returns the private key carried by the WIF.
func (w *WIF) Secret() ec.Secret {
	return w.secret
}

// IsCompressed returns whether the key is bound to the compressed form of
// its public key.
func (w *WIF) IsCompressed() bool {
	return w.compressed
}

// SerializePubKey derives the public key of the imported or exported private
// key, serialized in the form the WIF's compressed flag records.
func (w *WIF) SerializePubKey(ctx *ec.Context) (ec.Point, error) {
	return ctx.SecretToPubKey(w.secret, w.compressed)
}
