// Copyright (c) 2025-2026 The stealthkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stealthutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stealthpay/stealthkit/chaincfg"
	"github.com/stealthpay/stealthkit/ec"
)

// testSecret is the repeating 0x01 byte pattern used as a well-known private
// key throughout the encoding tests.
func testSecret() ec.Secret {
	var secret ec.Secret
	for i := range secret {
		secret[i] = 0x01
	}
	return secret
}

// TestWIFEncode ensures the string encoding matches known vectors across
// networks and compression flags.
func TestWIFEncode(t *testing.T) {
	tests := []struct {
		name       string
		params     *chaincfg.Params
		compressed bool
		want       string
	}{
		{"mainnet compressed", &chaincfg.MainNetParams, true,
			"VYweXy7ubZiNmoopD3Xv9fAZfmBpwihWsEHFiCDpdWCyzFg4qNxF"},
		{"mainnet uncompressed", &chaincfg.MainNetParams, false,
			"7UB7h6TwWahBpm8tUejMCUgKjKAhma1a3mhPN7cz1Zu77dg7wvk"},
		{"testnet compressed", &chaincfg.TestNetParams, true,
			"cMceqPhHedrhbcR9eXgzmfWy7kRqLyAxMYwFT6ABDWsiwUp9Nsq9"},
	}

	for _, test := range tests {
		wif := NewWIF(testSecret(), test.params, test.compressed)
		if got := wif.String(); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

// TestWIFDecode ensures decoding recovers the key components and reports the
// distinct failure modes for malformed or foreign strings.
func TestWIFDecode(t *testing.T) {
	mainNet := &chaincfg.MainNetParams
	testNet := &chaincfg.TestNetParams

	tests := []struct {
		name       string
		wif        string
		params     *chaincfg.Params
		compressed bool
		err        error
	}{
		{"mainnet compressed",
			"VYweXy7ubZiNmoopD3Xv9fAZfmBpwihWsEHFiCDpdWCyzFg4qNxF",
			mainNet, true, nil},
		{"mainnet uncompressed",
			"7UB7h6TwWahBpm8tUejMCUgKjKAhma1a3mhPN7cz1Zu77dg7wvk",
			mainNet, false, nil},
		{"testnet compressed",
			"cMceqPhHedrhbcR9eXgzmfWy7kRqLyAxMYwFT6ABDWsiwUp9Nsq9",
			testNet, true, nil},
		{"wrong network",
			"cMceqPhHedrhbcR9eXgzmfWy7kRqLyAxMYwFT6ABDWsiwUp9Nsq9",
			mainNet, false, ErrWrongNetwork},
		{"bad compression flag",
			"VYweXy7ubZiNmoopD3Xv9fAZfmBpwihWsEHFiCDpdWCyzFkWH6VN",
			mainNet, false, ErrMalformedPrivateKey},
		{"bad checksum",
			"VYweXy7ubZiNmoopD3Xv9fAZfmBpwihWsEHFiCDpdWCyzFg4qNxG",
			mainNet, false, ErrChecksumMismatch},
		{"too short", "6y7E3KBj2mQGhfaDePq3LwQ8wMS5FYfGr", mainNet, false,
			ErrMalformedPrivateKey},
		{"empty", "", mainNet, false, ErrMalformedPrivateKey},
	}

	for _, test := range tests {
		wif, err := DecodeWIF(test.wif, test.params)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got err %v, want %v", test.name, err, test.err)
			continue
		}
		if test.err != nil {
			continue
		}
		if wif.Secret() != testSecret() {
			t.Errorf("%s: got secret %x, want %x", test.name,
				wif.Secret(), testSecret())
		}
		if wif.IsCompressed() != test.compressed {
			t.Errorf("%s: got compressed %v, want %v", test.name,
				wif.IsCompressed(), test.compressed)
		}
		if got := wif.String(); got != test.wif {
			t.Errorf("%s: round trip got %q, want %q", test.name, got,
				test.wif)
		}
	}
}

// TestWIFSerializePubKey ensures the derived public key honors the
// compression flag recorded by the WIF.
func TestWIFSerializePubKey(t *testing.T) {
	ctx := ec.NewContext()
	if err := ctx.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer ctx.Shutdown()

	wif := NewWIF(testSecret(), &chaincfg.MainNetParams, true)
	pubKey, err := wif.SerializePubKey(ctx)
	if err != nil {
		t.Fatalf("SerializePubKey: %v", err)
	}
	want := hexToBytes("031b84c5567b126440995d3ed5aaba0565d71e1834604819ff" +
		"9c17f5e9d5dd078f")
	if !bytes.Equal(pubKey, want) {
		t.Errorf("compressed pubkey: got %x, want %x", pubKey, want)
	}

	wif = NewWIF(testSecret(), &chaincfg.MainNetParams, false)
	pubKey, err = wif.SerializePubKey(ctx)
	if err != nil {
		t.Fatalf("SerializePubKey: %v", err)
	}
	if pubKey.IsCompressed() {
		t.Error("uncompressed WIF derived a compressed pubkey")
	}
}
