// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package fastlz

// autoLevelThreshold is the input size at which Compress switches from
// Level 1 to Level 2. Below it Level 1's smaller opcodes win; above it
// Level 2's longer reach pays for itself.
const autoLevelThreshold = 65536

// Compress encodes src, choosing Level 1 for inputs under 64KiB and Level 2
// otherwise. Use CompressLevel to force a specific level.
func Compress(src []byte) []byte {
	if len(src) < autoLevelThreshold {
		return compressLevel1(src)
	}
	return compressLevel2(src)
}

// CompressLevel encodes src at the requested level (1 or 2). It returns
// ErrInvalidLevel for any other value.
func CompressLevel(level int, src []byte) ([]byte, error) {
	switch level {
	case 1:
		return compressLevel1(src), nil
	case 2:
		return compressLevel2(src), nil
	default:
		return nil, ErrInvalidLevel
	}
}

// Decompress decodes src, which must have been produced by Compress or
// CompressLevel, into a buffer of at most maxOut bytes. The level is read
// from the top 3 bits of src's first byte, so the caller never needs to
// track which level produced a given stream.
func Decompress(src []byte, maxOut int) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	dst := make([]byte, maxOut)
	var (
		n   int
		err error
	)

	switch src[0] >> 5 {
	case 0:
		n, err = decompressLevel1(src, dst)
	case 1:
		n, err = decompressLevel2(src, dst)
	default:
		return nil, ErrUnknownLevel
	}
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
