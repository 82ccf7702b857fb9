// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"fmt"

	"github.com/stealthpay/stealthkit/chainhash"
)

// ChecksumSize is the number of checksum bytes appended to a checksummed
// payload.
const ChecksumSize = 4

// checksum computes the first ChecksumSize bytes of the double SHA-256 of
// the input.
func checksum(input []byte) (cksum [ChecksumSize]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:ChecksumSize])
	return
}

// AppendChecksum returns data with its 4-byte double SHA-256 checksum
// appended.
func AppendChecksum(data []byte) []byte {
	cksum := checksum(data)
	return append(data, cksum[:]...)
}

// VerifyChecksum returns whether the final ChecksumSize bytes of data are the
// checksum of everything that precedes them.  Inputs shorter than the
// checksum itself never verify.
func VerifyChecksum(data []byte) bool {
	if len(data) < ChecksumSize {
		return false
	}
	cksum := checksum(data[:len(data)-ChecksumSize])
	var tail [ChecksumSize]byte
	copy(tail[:], data[len(data)-ChecksumSize:])
	return cksum == tail
}

// CheckEncode prepends a version byte, appends a four byte checksum, and
// returns the result encoded as a modified base58 string.
func CheckEncode(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+ChecksumSize)
	b = append(b, version)
	b = append(b, payload...)
	return Encode(AppendChecksum(b))
}

// CheckDecode decodes a string that was encoded with CheckEncode, verifies
// the checksum, and returns the version byte and payload.  The payload is
// never partially returned: any decoding or checksum failure yields only an
// error.
func CheckDecode(input string) (byte, []byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < 1+ChecksumSize {
		str := fmt.Sprintf("decoded length %d is below the version and "+
			"checksum minimum %d", len(decoded), 1+ChecksumSize)
		return 0, nil, makeError(ErrMalformed, str)
	}
	if !VerifyChecksum(decoded) {
		return 0, nil, makeError(ErrChecksum, "checksum mismatch")
	}
	version := decoded[0]
	payload := decoded[1 : len(decoded)-ChecksumSize]
	return version, payload, nil
}
