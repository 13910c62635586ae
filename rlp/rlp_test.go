package rlp

import (
	"bytes"
	"math/big"
	"testing"
)

type sampleStruct struct {
	A uint64
	B []byte
	C *big.Int
}

func TestRoundTripStruct(t *testing.T) {
	in := sampleStruct{A: 9, B: []byte("hello"), C: big.NewInt(1234567)}
	enc, err := EncodeToBytes(in)
	if err != nil {
		t.Fatal(err)
	}
	var out sampleStruct
	if err := DecodeBytes(enc, &out); err != nil {
		t.Fatal(err)
	}
	if out.A != in.A || !bytes.Equal(out.B, in.B) || out.C.Cmp(in.C) != 0 {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}

	enc2, err := EncodeToBytes(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, enc2) {
		t.Fatalf("re-encoding mismatch: %x != %x", enc, enc2)
	}
}

func TestEncodeZeroBigInt(t *testing.T) {
	enc, err := EncodeToBytes(big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, []byte{0x80}) {
		t.Fatalf("expected empty string encoding for zero, got %x", enc)
	}
}

func TestEncodeListLength(t *testing.T) {
	items := make([][]byte, 0, 60)
	for i := 0; i < 60; i++ {
		items = append(items, encodeString([]byte{byte(i)}))
	}
	enc := wrapList(items)
	if enc[0] < 0xf8 {
		t.Fatalf("expected long-list prefix for >55 byte payload, got tag %x", enc[0])
	}
	var out [][]byte
	_ = out
}
