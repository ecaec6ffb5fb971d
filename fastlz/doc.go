// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

/*
Package fastlz implements a byte-aligned LZ77 compression codec with two
wire-compatible variants.

Level 1 trades reach for a smaller opcode: match distances are capped at
8192 bytes and match lengths at 264 bytes. Level 2 extends both: distances
reach roughly 73726 bytes via a far-distance escape, and lengths are
unbounded via a 255-byte gamma chain. The codec auto-selects a level from
input size, or a level can be forced.

	out := fastlz.Compress(data)
	out, err := fastlz.CompressLevel(2, data)
	back, err := fastlz.Decompress(out, len(data))

Both levels share one hash-based match engine (match.go) and encode a
self-describing stream: the top 3 bits of the first byte identify the
level (0 for Level 1, 1 for Level 2), so Decompress never needs to be told
which level produced its input.

The codec is synchronous and allocates only its output buffer and a local
hash table; it holds no state across calls and is safe to run concurrently
over disjoint buffers.
*/
package fastlz
