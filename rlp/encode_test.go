package rlp

import (
	"bytes"
	"testing"
)

func TestEncodeKnownVectors(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"literal-23", 23, []byte{0x17}},
		{"short-int-24", 24, []byte{0x18, 0x18}},
		{"empty-string", []byte(""), []byte{0x40}},
		{"dog", []byte("dog"), []byte{0x43, 'd', 'o', 'g'}},
		{"empty-list", []Item{}, []byte{0x80}},
		{"cat-dog-list", []Item{[]byte("cat"), []byte("dog")},
			append([]byte{0x82, 0x43}, append([]byte("cat"), append([]byte{0x43}, []byte("dog")...)...)...)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.in)
			if err != nil {
				t.Fatalf("Encode(%v): %v", c.in, err)
			}
			if !bytes.Equal(got, c.want) {
				t.Fatalf("Encode(%v) = % x, want % x", c.in, got, c.want)
			}
		})
	}
}

func TestEncodeNegativeRejected(t *testing.T) {
	if _, err := Encode(-1); err != ErrEncodeNegative {
		t.Fatalf("expected ErrEncodeNegative, got %v", err)
	}
}

func TestEncodeTwoByteInteger(t *testing.T) {
	// 1024 needs two bytes (0x04, 0x00); it falls in the short-integer
	// prefix family (24 <= len(payload)+23 < 56), per the numeric table.
	got, err := Encode(1024)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{intShortBase + 2, 0x04, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode(1024) = % x, want % x", got, want)
	}
	item, err := Decode(got)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := item.([]byte)
	if !ok {
		t.Fatalf("decoded item is %T, want []byte", item)
	}
	if bytesToUint(b) != 1024 {
		t.Fatalf("decoded value = %d, want 1024", bytesToUint(b))
	}
}
