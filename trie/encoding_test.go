package trie

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestHexCompactRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		n := rnd.Intn(65)
		nibbles := make([]byte, n)
		for j := range nibbles {
			nibbles[j] = byte(rnd.Intn(16))
		}
		if rnd.Intn(2) == 0 {
			nibbles = append(nibbles, nibbleTerminator)
		}
		compact := hexToCompact(nibbles)
		got, err := compactToHex(compact)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if !bytes.Equal(got, nibbles) {
			t.Fatalf("case %d: roundtrip mismatch: in=%v out=%v", i, nibbles, got)
		}
	}
}

func TestHexCompactKnownVectors(t *testing.T) {
	cases := []struct {
		nibbles []byte
		want    []byte
	}{
		{[]byte{}, []byte{0x00}},
		{[]byte{nibbleTerminator}, []byte{0x02}},
		{[]byte{1, 2, 3, 4, 5}, []byte{0x01, 0x01, 0x23, 0x45}},
		{[]byte{1, 2, 3, 4, 5, nibbleTerminator}, []byte{0x03, 0x01, 0x23, 0x45}},
		{[]byte{0, 1, 2, 3, 4, 5}, []byte{0x00, 0x01, 0x23, 0x45}},
		{[]byte{0, 1, 2, 3, 4, 5, nibbleTerminator}, []byte{0x02, 0x01, 0x23, 0x45}},
	}
	for i, c := range cases {
		got := hexToCompact(c.nibbles)
		if !bytes.Equal(got, c.want) {
			t.Fatalf("case %d: hexToCompact(%v) = %x, want %x", i, c.nibbles, got, c.want)
		}
		back, err := compactToHex(got)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if !bytes.Equal(back, c.nibbles) {
			t.Fatalf("case %d: round trip mismatch: got %v want %v", i, back, c.nibbles)
		}
	}
}

func TestCompactToHexBadFlag(t *testing.T) {
	_, err := compactToHex([]byte{4, 0x12})
	if err == nil {
		t.Fatal("expected BadNibbleError")
	}
	if _, ok := err.(*BadNibbleError); !ok {
		t.Fatalf("expected *BadNibbleError, got %T", err)
	}
}

func TestKeybytesHexRoundTrip(t *testing.T) {
	keys := [][]byte{{}, {0x00}, {0xca, 0xfe}, []byte("dog"), make([]byte, 32)}
	for _, k := range keys {
		hex := keybytesToHex(k)
		back := hexToKeybytes(hex)
		if !bytes.Equal(back, k) {
			t.Fatalf("keybytesToHex/hexToKeybytes mismatch for %x: got %x", k, back)
		}
	}
}
