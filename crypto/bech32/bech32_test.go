package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestBech32EncodeDecode(t *testing.T) {
	// BIP-173 test vector: all 32 data characters in charset order.
	const enc = `abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw`

	want, err := hex.DecodeString("00443214c74254b635cf84653a56d7c675be77df")
	if err != nil {
		t.Fatal(err)
	}

	hrp, payload, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hrp != "abcdef" {
		t.Fatalf("unexpected human readable part: %q", hrp)
	}

	if !bytes.Equal(want, payload) {
		t.Logf("want %d", want)
		t.Logf("got  %d", payload)
		t.Fatal("invalid decode")
	}

	raw, err := Encode(hrp, payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	if string(raw) != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}
