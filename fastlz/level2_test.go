// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package fastlz

import "testing"

func TestAppendGammaLength_RoundTripsThroughDecode(t *testing.T) {
	for _, rem := range []int{0, 1, 7, 254, 255, 256, 300, 509, 510, 511, 1000, 100000} {
		var buf []byte
		appendGammaLength(&buf, rem)

		got, consumed := decodeGammaLength(buf)
		if got != rem {
			t.Fatalf("rem=%d: decoded %d", rem, got)
		}
		if consumed != len(buf) {
			t.Fatalf("rem=%d: consumed %d of %d bytes", rem, consumed, len(buf))
		}
	}
}

// decodeGammaLength mirrors decompressLevel2's extra-length loop in
// isolation, for testing appendGammaLength against its own decode logic.
func decodeGammaLength(buf []byte) (int, int) {
	extra := int(buf[0])
	i := 1
	if extra == 255 {
		for {
			b := int(buf[i])
			i++
			extra += b
			if b != 255 {
				break
			}
		}
	}
	return extra, i
}

func TestCompressLevel2_FarDistanceMatch(t *testing.T) {
	// Build input with a match whose distance exceeds maxL2Distance:
	// a distinctive 4-byte anchor, tens of thousands of filler bytes, then
	// the anchor repeated so the only usable match is a far one. The repeat
	// is followed by a few more filler bytes so it lies before the last 13
	// input bytes, which the compressor only ever emits as literals.
	anchor := []byte{0x11, 0x22, 0x33, 0x44}
	filler := make([]byte, 20000)
	for i := range filler {
		filler[i] = byte(i % 251)
	}
	data := append(append(append(append([]byte{}, anchor...), filler...), anchor...), filler[:16]...)

	cmp := compressLevel2(data)
	out, err := Decompress(cmp, len(data))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(out) != string(data) {
		t.Fatalf("round-trip mismatch for far-distance match")
	}
}

// Concrete scenario: a near match whose biased distance falls in
// [7936, 8190] has a distance-high-nibble of 31, the same bit pattern the
// far-match decode path keys on. Only a following distance byte of 255
// (not just the nibble) may select the far branch; this match's low byte
// is well clear of 255, so it must decode as an ordinary near match. Trailing
// filler keeps the repeated anchor out of the literal-only last 13 bytes.
func TestCompressLevel2_NearMatchWithHighNibble31(t *testing.T) {
	anchor := []byte{0x11, 0x22, 0x33, 0x44}
	filler := make([]byte, 7996)
	for i := range filler {
		filler[i] = byte(i % 251)
	}
	data := append(append(append(append([]byte{}, anchor...), filler...), anchor...), filler[:16]...)

	cmp := compressLevel2(data)
	out, err := Decompress(cmp, len(data))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(out) != string(data) {
		t.Fatalf("round-trip mismatch for near match with distance-high-nibble 31")
	}
}

func TestCompressLevel2_LevelMarkerSetOnFirstByte(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	cmp := compressLevel2(data)
	if cmp[0]&0x20 == 0 {
		t.Fatalf("expected level marker bit set on first byte, got %#x", cmp[0])
	}
	if cmp[0]>>5 != 1 {
		t.Fatalf("expected top 3 bits to read as Level 2 (1), got %#x", cmp[0]>>5)
	}
}
