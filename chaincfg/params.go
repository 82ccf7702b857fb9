// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
)

// InvalidAddrID is the sentinel version byte carried by addresses that have
// not been populated yet.  It is outside both network version tables.
const InvalidAddrID = 0xff

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be registered due to a version byte collision with an
	// already registered network.
	ErrDuplicateNet = errors.New("duplicate network parameters")

	// ErrReservedAddrID describes an error where network parameters claim
	// the reserved invalid-address sentinel as a version byte.
	ErrReservedAddrID = errors.New("version byte is reserved")
)

// Params defines the parameters a network uses when encoding and decoding
// addresses and private keys.  The pay-to-pubkey-hash, pay-to-script-hash,
// and WIF version bytes differ per network and are never mixed at runtime;
// the stealth version byte is protocol-fixed and shared by every network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PubKeyHashAddrID is the version byte of pay-to-pubkey-hash payment
	// addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the version byte of pay-to-script-hash payment
	// addresses.
	ScriptHashAddrID byte

	// PrivateKeyID is the version byte of WIF-encoded private keys.
	PrivateKeyID byte

	// StealthAddrID is the version byte of encoded stealth addresses.
	StealthAddrID byte
}

var (
	registeredNets    = make(map[string]struct{})
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})
	privateKeyIDs     = make(map[byte]struct{})
)

// Register registers the network parameters so its version bytes are
// reserved.  Registration fails with ErrDuplicateNet when the network name
// or any of its per-network version bytes is already claimed, which prevents
// two networks from silently decoding each other's addresses.
func Register(params *Params) error {
	if params.PubKeyHashAddrID == InvalidAddrID ||
		params.ScriptHashAddrID == InvalidAddrID ||
		params.PrivateKeyID == InvalidAddrID {
		return ErrReservedAddrID
	}
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	if _, ok := pubKeyHashAddrIDs[params.PubKeyHashAddrID]; ok {
		return ErrDuplicateNet
	}
	if _, ok := scriptHashAddrIDs[params.ScriptHashAddrID]; ok {
		return ErrDuplicateNet
	}
	if _, ok := privateKeyIDs[params.PrivateKeyID]; ok {
		return ErrDuplicateNet
	}

	registeredNets[params.Name] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	privateKeyIDs[params.PrivateKeyID] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics on
// error.  It is only usable by the package level init.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
}
