// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package fastlz

// matchTable is the compressor's hash table: hashLog bits of hash map to
// the most recent input position observed with that hash. It holds no
// chains, so each slot yields at most one match candidate; collisions are
// resolved by direct byte comparison at the candidate position, never by
// retrying the table.
//
// The zero value already represents "every slot points to the input's
// start" (position 0), matching the required initial state without an
// explicit fill loop.
type matchTable [hashSize]int32

// hashAt computes the hash of the 3-byte sequence starting at src[p]. It
// reads two overlapping little-endian 16-bit words and folds them
// together; hashLog's value is baked into the shift and must not change
// without this formula changing too.
func hashAt(src []byte, p int) uint32 {
	w1 := uint32(src[p]) | uint32(src[p+1])<<8
	w2 := uint32(src[p+1]) | uint32(src[p+2])<<8
	v := w1 ^ w2 ^ (w1 >> (16 - hashLog))
	return v & hashMask
}

// probe returns the position currently stored at src[p]'s hash slot.
func (t *matchTable) probe(src []byte, p int) int {
	return int(t[hashAt(src, p)])
}

// insert stores p in the hash slot for src[p].
func (t *matchTable) insert(src []byte, p int) {
	t[hashAt(src, p)] = int32(p)
}
