// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package fastlz

// compressLevel1 encodes src as a Level-1 stream: match distances below
// maxL1Distance, match lengths up to maxL1Len, long matches beyond that
// split into several maximum-length opcodes at the same distance.
func compressLevel1(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}
	if n < 4 {
		out := make([]byte, 0, n+1)
		out = append(out, byte(n-1))
		return append(out, src...)
	}

	out := make([]byte, 0, MaxCompressedLen(n))
	var table matchTable

	ipBound := n - 2
	ipLimit := n - 13

	out = append(out, maxCopy-1, src[0], src[1])
	copyCount := 2
	ip := 2

	for ip < ipLimit {
		anchor := ip
		ref := table.probe(src, ip)
		table.insert(src, ip)

		distance := anchor - ref
		if distance == 0 || distance >= maxL1Distance ||
			src[ref] != src[ip] || src[ref+1] != src[ip+1] || src[ref+2] != src[ip+2] {
			// Literal: no usable candidate at this position.
			out = append(out, src[anchor])
			ip = anchor + 1
			copyCount++
			if copyCount == maxCopy {
				copyCount = 0
				out = append(out, maxCopy-1)
			}
			continue
		}

		ip = anchor + 3
		ref += 3

		if distance == 1 {
			x := src[ip-1]
			for ip < ipBound {
				eq := src[ref] == x
				ref++
				ip++
				if !eq {
					break
				}
			}
		} else {
			for ip < ipBound {
				eq := src[ref] == src[ip]
				ref++
				ip++
				if !eq {
					break
				}
			}
		}

		if copyCount > 0 {
			out[len(out)-copyCount-1] = byte(copyCount - 1)
		} else {
			out = out[:len(out)-1]
		}
		copyCount = 0

		ip -= 3
		length := ip - anchor
		distance--

		distHi := byte(distance >> 8)
		distLo := byte(distance & 0xff)

		total := length + 2
		for total > maxL1Len {
			block := maxL1Len
			if total-block < 3 {
				block = total - 3
			}
			out = append(out, (7<<5)|distHi, byte(block-9), distLo)
			total -= block
		}
		if l := total - 2; l < 7 {
			out = append(out, byte(l<<5)|distHi, distLo)
		} else {
			out = append(out, (7<<5)|distHi, byte(l-7), distLo)
		}

		if ip+2 < n {
			table.insert(src, ip)
		}
		ip++
		if ip+2 < n {
			table.insert(src, ip)
		}
		ip++

		out = append(out, maxCopy-1)
	}

	for ip < n {
		out = append(out, src[ip])
		ip++
		copyCount++
		if copyCount == maxCopy {
			copyCount = 0
			out = append(out, maxCopy-1)
		}
	}

	if copyCount > 0 {
		out[len(out)-copyCount-1] = byte(copyCount - 1)
	} else {
		out = out[:len(out)-1]
	}

	return out
}

// decompressLevel1 decodes a Level-1 stream into dst, writing at most
// len(dst) bytes. Returns the number of bytes written.
func decompressLevel1(src []byte, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	op := 0
	ctrl := src[0]
	ip := 1

	for {
		if ctrl < 32 {
			runLen := int(ctrl) + 1
			if ip+runLen > len(src) {
				return 0, ErrTruncatedInput
			}
			if op+runLen > len(dst) {
				return 0, ErrOutputOverflow
			}
			copy(dst[op:op+runLen], src[ip:ip+runLen])
			ip += runLen
			op += runLen
		} else {
			if ip+1 > len(src) {
				return 0, ErrTruncatedInput
			}
			length := int(ctrl >> 5)
			ofs := int(ctrl&31) << 8
			length--
			if length == 6 {
				if ip+1 > len(src) {
					return 0, ErrTruncatedInput
				}
				length += int(src[ip])
				ip++
			}
			if ip+1 > len(src) {
				return 0, ErrTruncatedInput
			}
			ofs += int(src[ip])
			ip++

			length += 3
			if op+length > len(dst) {
				return 0, ErrOutputOverflow
			}
			if err := copyMatch(dst, op, ofs+1, length); err != nil {
				return 0, err
			}
			op += length
		}

		if ip >= len(src) {
			break
		}
		ctrl = src[ip]
		ip++
	}

	return op, nil
}
