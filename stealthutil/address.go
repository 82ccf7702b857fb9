// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealthutil

import (
	"errors"

	"github.com/decred/dcrd/crypto/ripemd160"

	"github.com/stealthpay/stealthkit/base58"
	"github.com/stealthpay/stealthkit/chaincfg"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrMalformedAddress describes an error where an address payload is
	// not the expected length.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrWrongNetwork describes an error where an address or key carries a
	// version byte that does not belong to the expected network.
	ErrWrongNetwork = errors.New("wrong network")
)

// PaymentAddress is a versioned 160-bit hash of a public key or script,
// rendered as a base58check string.  It is a self-contained value: decoding
// either succeeds fully or returns an error, never a partially populated
// address.
type PaymentAddress struct {
	netID byte
	hash  [ripemd160.Size]byte
}

// NewPaymentAddress returns a payment address for an already computed
// 160-bit hash.  hash160 must be 20 bytes.
func NewPaymentAddress(netID byte, hash160 []byte) (*PaymentAddress, error) {
	if len(hash160) != ripemd160.Size {
		return nil, ErrMalformedAddress
	}
	addr := &PaymentAddress{netID: netID}
	copy(addr.hash[:], hash160)
	return addr, nil
}

// NewPaymentAddressFromPubKey returns the pay-to-pubkey-hash payment address
// for a serialized public key, using the pubkey hash version byte of the
// provided network.  The key is hashed exactly as serialized, so the
// compressed and uncompressed forms of the same key yield different
// addresses.
func NewPaymentAddressFromPubKey(pubKey []byte, params *chaincfg.Params) *PaymentAddress {
	addr := &PaymentAddress{netID: params.PubKeyHashAddrID}
	copy(addr.hash[:], Hash160(pubKey))
	return addr
}

// DecodePaymentAddress decodes the base58check string encoding of a payment
// address.  The address must carry a 20-byte hash payload, a valid checksum,
// and one of the provided network's address version bytes.
func DecodePaymentAddress(addr string, params *chaincfg.Params) (*PaymentAddress, error) {
	version, payload, err := base58.CheckDecode(addr)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, ErrChecksumMismatch
		}
		return nil, ErrMalformedAddress
	}
	if len(payload) != ripemd160.Size {
		return nil, ErrMalformedAddress
	}
	if version != params.PubKeyHashAddrID && version != params.ScriptHashAddrID {
		return nil, ErrWrongNetwork
	}

	a := &PaymentAddress{netID: version}
	copy(a.hash[:], payload)
	return a, nil
}

// Encode returns the base58check string encoding of the payment address.
func (a *PaymentAddress) Encode() string {
	return base58.CheckEncode(a.netID, a.hash[:])
}

// String returns a human-readable string for the payment address.  This is
// equivalent to calling Encode, but is provided so the type can be used as a
// fmt.Stringer.
func (a *PaymentAddress) String() string {
	return a.Encode()
}

// Version returns the address version byte.
func (a *PaymentAddress) Version() byte {
	return a.netID
}

// Hash160 returns the underlying array of the address hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a *PaymentAddress) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// IsForNet returns whether the payment address is associated with the passed
// network.
func (a *PaymentAddress) IsForNet(params *chaincfg.Params) bool {
	return a.netID == params.PubKeyHashAddrID ||
		a.netID == params.ScriptHashAddrID
}
