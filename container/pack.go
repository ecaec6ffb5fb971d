// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package container

import (
	"hash/adler32"

	"github.com/go-fastlz/sixpack/fastlz"
)

// ProgressFunc is invoked after each data chunk is written during Pack,
// reporting bytes processed so far against the total input size. Packing
// never writes progress to stdout itself; callers that want a progress bar
// supply a callback, keeping the package usable from a library context as
// well as a CLI.
type ProgressFunc func(processed, total int)

// Pack archives data under name, tiling it into blockSize chunks and
// compressing each with fastlz's Level 1 codec, falling back to a raw
// store for chunks under rawStoreCeiling bytes. onProgress may be nil.
func Pack(name string, data []byte, onProgress ProgressFunc) ([]byte, error) {
	if HasMagic(data) {
		return nil, ErrAlreadyPacked
	}
	if len(data) > 0xFFFFFFFF {
		return nil, ErrFileTooLarge
	}

	out := make([]byte, 0, len(data)+len(data)/16+256)
	out = append(out, magic[:]...)

	nameBytes := append([]byte(name), 0)
	entry := make([]byte, 0, 10+len(nameBytes))
	entry = append(entry,
		byte(len(data)), byte(len(data)>>8), byte(len(data)>>16), byte(len(data)>>24),
		0, 0, 0, 0,
		byte(len(nameBytes)), byte(len(nameBytes)>>8),
	)
	entry = append(entry, nameBytes...)

	out = appendChunk(out, chunkFileEntry, 0, 0, entry)

	total := len(data)
	for processed := 0; processed < total; {
		end := processed + blockSize
		if end > total {
			end = total
		}
		block := data[processed:end]

		var payload []byte
		options := uint16(optionStored)
		if len(block) >= rawStoreCeiling {
			payload, _ = fastlz.CompressLevel(1, block)
			options = optionCompressed
		} else {
			payload = block
		}

		out = appendChunk(out, chunkData, options, uint32(len(block)), payload)

		processed = end
		if onProgress != nil {
			onProgress(processed, total)
		}
	}

	return out, nil
}

func appendChunk(out []byte, id, options uint16, extra uint32, payload []byte) []byte {
	h := chunkHeader{
		ID:       id,
		Options:  options,
		Size:     uint32(len(payload)),
		Checksum: adler32.Checksum(payload),
		Extra:    extra,
	}
	buf := h.marshal()
	out = append(out, buf[:]...)
	return append(out, payload...)
}
