// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealth

import (
	"fmt"
)

// MaxPrefixBits is the maximum number of significant bits a prefix filter
// may declare.
const MaxPrefixBits = 32

// Prefix is the filter recipients use to narrow which ephemeral keys are
// worth a full scan without revealing the scan key.  NumBits bounds how many
// bits of Bitfield are significant.
//
// The canonical convention, which both ends must share for filtering to
// work, is that the significant bits are the most-significant NumBits bits
// of Bitfield and all remaining low bits are zero.  The bitfield is
// serialized as a fixed 4-byte big-endian word.
type Prefix struct {
	NumBits  uint8
	Bitfield uint32
}

// mask returns the bitmask covering the significant bits of the prefix.
func (p Prefix) mask() uint32 {
	if p.NumBits == 0 {
		return 0
	}
	return ^uint32(0) << (32 - uint32(p.NumBits))
}

// normalize returns the prefix with its insignificant bits cleared.
func (p Prefix) normalize() Prefix {
	p.Bitfield &= p.mask()
	return p
}

// validate returns an error when the prefix declares more significant bits
// than the bitfield holds or sets bits outside its significant range.
func (p Prefix) validate() error {
	if p.NumBits > MaxPrefixBits {
		str := fmt.Sprintf("prefix declares %d significant bits, max %d",
			p.NumBits, MaxPrefixBits)
		return makeError(ErrInvalidPrefix, str)
	}
	if p.Bitfield&^p.mask() != 0 {
		str := fmt.Sprintf("prefix bitfield %08x sets bits outside its %d "+
			"significant bits", p.Bitfield, p.NumBits)
		return makeError(ErrInvalidPrefix, str)
	}
	return nil
}

// Matches returns whether the significant bits of the prefix agree with the
// corresponding bits of the candidate bitfield.  A prefix with zero
// significant bits matches everything.
func (p Prefix) Matches(bitfield uint32) bool {
	return (bitfield^p.Bitfield)&p.mask() == 0
}
