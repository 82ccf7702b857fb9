// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealth

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/stealthpay/stealthkit/chaincfg"
	"github.com/stealthpay/stealthkit/ec"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  It must only be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// hexToPoint converts the passed hex string into a serialized curve point.
// It must only be called with hard-coded values.
func hexToPoint(s string) ec.Point {
	return ec.Point(hexToBytes(s))
}

// Small generator multiples used as well-known keys throughout the tests.
var (
	pointG = hexToPoint("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28" +
		"d959f2815b16f81798")
	point2G = hexToPoint("02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3" +
		"ca7abac09b95c709ee5")
	point3G = hexToPoint("02f9308a019258c31049344f85f89d5229b531c845836f9" +
		"9b08601f113bce036f9")
	point5G = hexToPoint("022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619" +
		"ab7cba8d569b240efe4")
)

// Known-good string encodings for the mainnet stealth version byte.
const (
	encodedSimple = "71pUqHFExmvz3mS9Uf5Uxb3fg5EzjQSki1fWKt9LwrVfChivN2Bq" +
		"NGtYJjPx368KmQi7SGyK3YahCQ4ZLndTcgTaT1MFKYfQNfo2AD1XGpXN"
	encoded2of3 = "BLgK1SLFNk9JDomjNW6mDHVsu2zzdRx7b4qxrGotG2MoFst59sCGHy" +
		"yjhgzEpZ4Li9eYJmJQiBrGsHzHQCK77TP7Wvi1MBQUUbetZ2QWLQu3v3Demy3top" +
		"5vzXTppG6x8pcGWMheNXyWEMxGUoHy4Be6tVT3ohJkMXq3jFUhokr6wiscrNbxMo" +
		"m3M6oDbcbuMuav95"
	encodedReuse = "5b4XZ2K1GiC6aSscV46fH1DTwFkwhehf7kiJeAF6mENxa5N9W7yjK" +
		"qFf8j1mKqH"
)

// TestNewAddress ensures construction validates every field and normalizes
// the prefix.
func TestNewAddress(t *testing.T) {
	notAPoint := append(ec.Point{0x02}, bytes.Repeat([]byte{0xff}, 32)...)

	tests := []struct {
		name    string
		options byte
		scan    ec.Point
		spends  []ec.Point
		sigs    uint8
		prefix  Prefix
		err     ErrorKind
	}{
		{"1 of 1", 0, pointG, []ec.Point{point2G}, 1, Prefix{}, ""},
		{"2 of 3", 0, pointG, []ec.Point{point2G, point3G, point5G}, 2,
			Prefix{}, ""},
		{"reuse", ReuseKeyOption, pointG, nil, 1, Prefix{}, ""},
		{"with prefix", 0, pointG, []ec.Point{point2G}, 1,
			Prefix{NumBits: 8, Bitfield: 0xde000000}, ""},
		{"invalid scan", 0, notAPoint, []ec.Point{point2G}, 1, Prefix{},
			ErrInvalidScanPubKey},
		{"uncompressed scan", 0, append(ec.Point{0x04},
			bytes.Repeat([]byte{0x01}, 64)...), []ec.Point{point2G}, 1,
			Prefix{}, ErrInvalidScanPubKey},
		{"invalid spend", 0, pointG, []ec.Point{notAPoint}, 1, Prefix{},
			ErrInvalidSpendPubKey},
		{"no spends", 0, pointG, nil, 1, Prefix{}, ErrMalformedAddress},
		{"zero threshold", 0, pointG, []ec.Point{point2G}, 0, Prefix{},
			ErrInvalidThreshold},
		{"threshold above count", 0, pointG, []ec.Point{point2G}, 2,
			Prefix{}, ErrInvalidThreshold},
		{"reuse with spends", ReuseKeyOption, pointG,
			[]ec.Point{point2G}, 1, Prefix{}, ErrInvalidOptions},
		{"prefix too wide", 0, pointG, []ec.Point{point2G}, 1,
			Prefix{NumBits: 33}, ErrInvalidPrefix},
	}

	for _, test := range tests {
		addr, err := NewAddress(test.options, test.scan, test.spends,
			test.sigs, test.prefix)
		if test.err != "" {
			if !errors.Is(err, test.err) {
				t.Errorf("%s: got err %v, want %v", test.name, err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected err %v", test.name, err)
			continue
		}
		if !bytes.Equal(addr.ScanPubKey(), test.scan) {
			t.Errorf("%s: scan pubkey mismatch", test.name)
		}
	}
}

// TestNewAddressNormalizesPrefix ensures insignificant prefix bits are
// cleared during construction rather than rejected.
func TestNewAddressNormalizesPrefix(t *testing.T) {
	addr, err := NewAddress(0, pointG, []ec.Point{point2G}, 1,
		Prefix{NumBits: 8, Bitfield: 0xdeadbeef})
	if err != nil {
		t.Fatalf("NewAddress: %v", err)
	}
	want := Prefix{NumBits: 8, Bitfield: 0xde000000}
	if addr.Prefix() != want {
		t.Errorf("prefix: got %+v, want %+v", addr.Prefix(), want)
	}
}

// TestNewAddressReuseKey ensures a reuse-key address materializes the scan
// pubkey as its single effective spend pubkey.
func TestNewAddressReuseKey(t *testing.T) {
	addr, err := NewAddress(ReuseKeyOption, pointG, nil, 1, Prefix{})
	if err != nil {
		t.Fatalf("NewAddress: %v", err)
	}
	spends := addr.SpendPubKeys()
	if len(spends) != 1 || !bytes.Equal(spends[0], pointG) {
		t.Errorf("reuse spends: got %s", spew.Sdump(spends))
	}
}

// TestAddressEncode ensures encoding produces the known vectors and that
// accessor-visible state survives a decode round trip.
func TestAddressEncode(t *testing.T) {
	mainNet := &chaincfg.MainNetParams

	tests := []struct {
		name    string
		options byte
		spends  []ec.Point
		sigs    uint8
		prefix  Prefix
		want    string
	}{
		{"1 of 1 with prefix", 0, []ec.Point{point2G}, 1,
			Prefix{NumBits: 8, Bitfield: 0xde000000}, encodedSimple},
		{"2 of 3", 0, []ec.Point{point2G, point3G, point5G}, 2, Prefix{},
			encoded2of3},
		{"reuse", ReuseKeyOption, nil, 1, Prefix{}, encodedReuse},
	}

	for _, test := range tests {
		addr, err := NewAddress(test.options, pointG, test.spends, test.sigs,
			test.prefix)
		if err != nil {
			t.Fatalf("%s: NewAddress: %v", test.name, err)
		}
		got := addr.Encode(mainNet)
		if got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
			continue
		}

		decoded, err := DecodeAddress(got, mainNet)
		if err != nil {
			t.Errorf("%s: DecodeAddress: %v", test.name, err)
			continue
		}
		if decoded.Encode(mainNet) != got {
			t.Errorf("%s: round trip mismatch:\ngot %swant %s", test.name,
				spew.Sdump(decoded), spew.Sdump(addr))
		}
	}
}

// TestDecodeAddress ensures decoding accepts the known vectors and rejects
// every class of inconsistent payload.
func TestDecodeAddress(t *testing.T) {
	mainNet := &chaincfg.MainNetParams

	tests := []struct {
		name    string
		encoded string
		err     ErrorKind
	}{
		{"1 of 1 with prefix", encodedSimple, ""},
		{"2 of 3", encoded2of3, ""},
		{"reuse", encodedReuse, ""},
		{"threshold above count", "71pUqHFExmvz3mS9Uf5Uxb3fg5EzjQSki1fWKt" +
			"9LwrVfChivN2BqNGtYJjPx368KmQi7SGyK3YahCQ4ZLndTcgTaT1MFKYfTX7r" +
			"UGihneTsH", ErrInvalidThreshold},
		{"reuse with explicit spend", "71rMy92kyzEf3dCmwh4wiuBS1sTug7AsA5" +
			"ZdjG1DcXS278dsB4ULi4a7uUyDsq4jEMQYav3GkocuG5Y3eezDujsgP615FEz" +
			"hTwqWgfbqLgNp", ErrInvalidOptions},
		{"noncanonical prefix", "71pUqHFExmvz3mS9Uf5Uxb3fg5EzjQSki1fWKt9L" +
			"wrVfChivN2BqNGtYJjPx368KmQi7SGyK3YahCQ4ZLndTcgTaT1MFKYfQN2q1J" +
			"ekxK7MZ", ErrInvalidPrefix},
		{"prefix too wide", "71pUqHFExmvz3mS9Uf5Uxb3fg5EzjQSki1fWKt9LwrVf" +
			"ChivN2BqNGtYJjPx368KmQi7SGyK3YahCQ4ZLndTcgTaT1MFKYfQgV9MpC4Yn" +
			"82i", ErrInvalidPrefix},
	}

	for _, test := range tests {
		addr, err := DecodeAddress(test.encoded, mainNet)
		if test.err != "" {
			if !errors.Is(err, test.err) {
				t.Errorf("%s: got err %v, want %v", test.name, err, test.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected err %v", test.name, err)
			continue
		}
		if !bytes.Equal(addr.ScanPubKey(), pointG) {
			t.Errorf("%s: scan pubkey: got %x, want %x", test.name,
				addr.ScanPubKey(), pointG)
		}
	}
}

// TestDecodeAddressFields spot checks the decoded fields of the multisig
// vector.
func TestDecodeAddressFields(t *testing.T) {
	addr, err := DecodeAddress(encoded2of3, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("DecodeAddress: %v", err)
	}
	if addr.Options() != 0 {
		t.Errorf("options: got %#x, want 0", addr.Options())
	}
	if addr.Sigs() != 2 {
		t.Errorf("sigs: got %d, want 2", addr.Sigs())
	}
	wantSpends := []ec.Point{point2G, point3G, point5G}
	spends := addr.SpendPubKeys()
	if len(spends) != len(wantSpends) {
		t.Fatalf("spends: got %d keys, want %d", len(spends), len(wantSpends))
	}
	for i, want := range wantSpends {
		if !bytes.Equal(spends[i], want) {
			t.Errorf("spend %d: got %x, want %x", i, spends[i], want)
		}
	}
	if addr.Prefix() != (Prefix{}) {
		t.Errorf("prefix: got %+v, want zero", addr.Prefix())
	}
}

// TestDecodeAddressRejectsWrongVersion ensures a stealth address string is
// only accepted under the stealth version byte.
func TestDecodeAddressRejectsWrongVersion(t *testing.T) {
	// A mainnet payment address decodes fine as base58check but carries the
	// pubkey hash version byte.
	_, err := DecodeAddress("TLeUZDGLWnyiJVFcp3m3M1782uBsGWa8uf",
		&chaincfg.MainNetParams)
	if !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("got err %v, want %v", err, ErrInvalidVersion)
	}
}

// TestDecodeAddressMutationSensitivity ensures single-character corruption of
// a valid encoding never yields a decodable address.
func TestDecodeAddressMutationSensitivity(t *testing.T) {
	for i := 0; i < len(encodedSimple); i++ {
		mutated := []byte(encodedSimple)
		if mutated[i] == 'x' {
			mutated[i] = 'y'
		} else {
			mutated[i] = 'x'
		}
		if _, err := DecodeAddress(string(mutated), &chaincfg.MainNetParams); err == nil {
			t.Errorf("mutation at index %d decoded successfully", i)
		}
	}
}

// TestPrefixMatches exercises the prefix filter against candidate bitfields.
func TestPrefixMatches(t *testing.T) {
	tests := []struct {
		name     string
		prefix   Prefix
		bitfield uint32
		want     bool
	}{
		{"empty matches all", Prefix{}, 0xdeadbeef, true},
		{"exact high byte", Prefix{8, 0xde000000}, 0xdeadbeef, true},
		{"high byte differs", Prefix{8, 0xde000000}, 0xdfadbeef, false},
		{"full width match", Prefix{32, 0xdeadbeef}, 0xdeadbeef, true},
		{"full width mismatch", Prefix{32, 0xdeadbeef}, 0xdeadbeee, false},
		{"single bit", Prefix{1, 0x80000000}, 0xffffffff, true},
		{"single bit mismatch", Prefix{1, 0x80000000}, 0x7fffffff, false},
	}

	for _, test := range tests {
		if got := test.prefix.Matches(test.bitfield); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}
