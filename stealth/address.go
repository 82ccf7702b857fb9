// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealth

import (
	"encoding/binary"
	"fmt"

	"github.com/stealthpay/stealthkit/base58"
	"github.com/stealthpay/stealthkit/chaincfg"
	"github.com/stealthpay/stealthkit/ec"
)

// ReuseKeyOption is the options flag indicating the scan key doubles as the
// sole spend key.  Addresses with this flag serialize no spend pubkeys; the
// scan pubkey is materialized as the single effective spend pubkey when
// decoding.
const ReuseKeyOption = 0x01

// Address is a published stealth address: the recipient's scan pubkey, one
// or more spend pubkeys with a signature threshold, and an optional prefix
// filter.  Payers use it to derive unlinkable one-time destination keys
// without interacting with the recipient.
//
// An Address is an immutable value once constructed; NewAddress and
// DecodeAddress are the only constructors and both validate internal
// consistency, so a held Address is always well formed.
type Address struct {
	options      byte
	scanPubKey   ec.Point
	spendPubKeys []ec.Point
	sigs         uint8
	prefix       Prefix
}

// NewAddress constructs a stealth address from raw fields and validates
// their internal consistency: the scan pubkey and every spend pubkey must be
// valid compressed curve points, the signature threshold must be between one
// and the spend pubkey count, and an address with the reuse-key option must
// not list explicit spend pubkeys since the scan key covers that role.  The
// prefix bitfield is normalized to its canonical form.
func NewAddress(options byte, scanPubKey ec.Point, spendPubKeys []ec.Point,
	sigs uint8, prefix Prefix) (*Address, error) {

	if !scanPubKey.IsCompressed() || !scanPubKey.IsOnCurve() {
		str := "scan pubkey is not a valid compressed curve point"
		return nil, makeError(ErrInvalidScanPubKey, str)
	}

	if options&ReuseKeyOption != 0 {
		if len(spendPubKeys) != 0 {
			str := "reuse-key addresses must not list explicit spend pubkeys"
			return nil, makeError(ErrInvalidOptions, str)
		}
		spendPubKeys = []ec.Point{scanPubKey}
	}

	if len(spendPubKeys) == 0 || len(spendPubKeys) > 0xff {
		str := fmt.Sprintf("address requires between 1 and 255 spend "+
			"pubkeys, got %d", len(spendPubKeys))
		return nil, makeError(ErrMalformedAddress, str)
	}
	keys := make([]ec.Point, 0, len(spendPubKeys))
	for i, pubKey := range spendPubKeys {
		if !pubKey.IsCompressed() || !pubKey.IsOnCurve() {
			str := fmt.Sprintf("spend pubkey %d is not a valid compressed "+
				"curve point", i)
			return nil, makeError(ErrInvalidSpendPubKey, str)
		}
		key := make(ec.Point, ec.CompressedPointSize)
		copy(key, pubKey)
		keys = append(keys, key)
	}

	if sigs == 0 || int(sigs) > len(keys) {
		str := fmt.Sprintf("signature threshold %d outside [1, %d]", sigs,
			len(keys))
		return nil, makeError(ErrInvalidThreshold, str)
	}

	if prefix.NumBits > MaxPrefixBits {
		str := fmt.Sprintf("prefix declares %d significant bits, max %d",
			prefix.NumBits, MaxPrefixBits)
		return nil, makeError(ErrInvalidPrefix, str)
	}

	scan := make(ec.Point, ec.CompressedPointSize)
	copy(scan, scanPubKey)
	return &Address{
		options:      options,
		scanPubKey:   scan,
		spendPubKeys: keys,
		sigs:         sigs,
		prefix:       prefix.normalize(),
	}, nil
}

// DecodeAddress decodes the base58check string encoding of a stealth
// address for the provided network.  The payload layout is:
//
//	options(1) || scan_pubkey(33) || spend_count(1) || spend_pubkeys(33*n) ||
//	signature_threshold(1) || prefix_bits(1) || prefix_bitfield(4)
//
// Any inconsistency rejects the whole address: a truncated or oversized
// payload, a declared spend count that does not match the remaining bytes, a
// threshold outside [1, count], a reuse-key flag combined with explicit
// spend pubkeys, or a non-canonical prefix.
func DecodeAddress(encoded string, params *chaincfg.Params) (*Address, error) {
	version, payload, err := base58.CheckDecode(encoded)
	if err != nil {
		return nil, err
	}
	if version != params.StealthAddrID {
		str := fmt.Sprintf("version byte %#02x is not the stealth version "+
			"%#02x", version, params.StealthAddrID)
		return nil, makeError(ErrInvalidVersion, str)
	}

	// options || scan pubkey || spend count
	if len(payload) < 1+ec.CompressedPointSize+1 {
		str := fmt.Sprintf("payload of %d bytes is too short", len(payload))
		return nil, makeError(ErrMalformedAddress, str)
	}
	options := payload[0]
	scanPubKey := ec.Point(payload[1 : 1+ec.CompressedPointSize])
	if !scanPubKey.IsOnCurve() {
		str := "scan pubkey is not a valid curve point"
		return nil, makeError(ErrInvalidScanPubKey, str)
	}
	rest := payload[1+ec.CompressedPointSize:]

	spendCount := int(rest[0])
	rest = rest[1:]

	// spend pubkeys || threshold || prefix bits || prefix bitfield
	expect := spendCount*ec.CompressedPointSize + 1 + 1 + 4
	if len(rest) != expect {
		str := fmt.Sprintf("payload declares %d spend pubkeys but carries "+
			"%d trailing bytes, want %d", spendCount, len(rest), expect)
		return nil, makeError(ErrMalformedAddress, str)
	}

	reuse := options&ReuseKeyOption != 0
	if reuse && spendCount != 0 {
		str := "reuse-key addresses must not list explicit spend pubkeys"
		return nil, makeError(ErrInvalidOptions, str)
	}
	if !reuse && spendCount == 0 {
		str := "address lists no spend pubkeys"
		return nil, makeError(ErrMalformedAddress, str)
	}

	spendPubKeys := make([]ec.Point, 0, spendCount)
	for i := 0; i < spendCount; i++ {
		pubKey := ec.Point(rest[:ec.CompressedPointSize])
		if !pubKey.IsOnCurve() {
			str := fmt.Sprintf("spend pubkey %d is not a valid curve point", i)
			return nil, makeError(ErrInvalidSpendPubKey, str)
		}
		spendPubKeys = append(spendPubKeys, pubKey)
		rest = rest[ec.CompressedPointSize:]
	}
	if reuse {
		spendPubKeys = []ec.Point{scanPubKey}
	}

	sigs := rest[0]
	if sigs == 0 || int(sigs) > len(spendPubKeys) {
		str := fmt.Sprintf("signature threshold %d outside [1, %d]", sigs,
			len(spendPubKeys))
		return nil, makeError(ErrInvalidThreshold, str)
	}

	prefix := Prefix{
		NumBits:  rest[1],
		Bitfield: binary.BigEndian.Uint32(rest[2:6]),
	}
	if err := prefix.validate(); err != nil {
		return nil, err
	}

	addr := &Address{
		options:    options,
		scanPubKey: append(ec.Point(nil), scanPubKey...),
		sigs:       sigs,
		prefix:     prefix,
	}
	for _, pubKey := range spendPubKeys {
		addr.spendPubKeys = append(addr.spendPubKeys,
			append(ec.Point(nil), pubKey...))
	}
	return addr, nil
}

// Encode returns the base58check string encoding of the stealth address for
// the provided network.  See DecodeAddress for the payload layout.  An
// address carrying the reuse-key option serializes no spend pubkeys.
func (a *Address) Encode(params *chaincfg.Params) string {
	spendPubKeys := a.spendPubKeys
	if a.options&ReuseKeyOption != 0 {
		spendPubKeys = nil
	}

	payload := make([]byte, 0, 1+ec.CompressedPointSize+1+
		len(spendPubKeys)*ec.CompressedPointSize+1+1+4)
	payload = append(payload, a.options)
	payload = append(payload, a.scanPubKey...)
	payload = append(payload, byte(len(spendPubKeys)))
	for _, pubKey := range spendPubKeys {
		payload = append(payload, pubKey...)
	}
	payload = append(payload, a.sigs)
	payload = append(payload, a.prefix.NumBits)
	var bitfield [4]byte
	binary.BigEndian.PutUint32(bitfield[:], a.prefix.Bitfield)
	payload = append(payload, bitfield[:]...)

	return base58.CheckEncode(params.StealthAddrID, payload)
}

// Options returns the option flags of the address.
func (a *Address) Options() byte {
	return a.options
}

// ScanPubKey returns the compressed scan pubkey of the address.
func (a *Address) ScanPubKey() ec.Point {
	return append(ec.Point(nil), a.scanPubKey...)
}

// SpendPubKeys returns the effective compressed spend pubkeys of the
// address.  For a reuse-key address this is the scan pubkey.
func (a *Address) SpendPubKeys() []ec.Point {
	keys := make([]ec.Point, 0, len(a.spendPubKeys))
	for _, pubKey := range a.spendPubKeys {
		keys = append(keys, append(ec.Point(nil), pubKey...))
	}
	return keys
}

// Sigs returns the signature threshold of the address.
func (a *Address) Sigs() uint8 {
	return a.sigs
}

// Prefix returns the prefix filter of the address.
func (a *Address) Prefix() Prefix {
	return a.prefix
}
