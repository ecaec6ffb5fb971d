// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package container

import "encoding/binary"

// magic is the fixed 8-byte prefix identifying a 6pack archive.
var magic = [8]byte{137, '6', 'P', 'K', 13, 10, 26, 10}

const (
	chunkFileEntry = 1  // file name and declared size
	chunkData      = 17 // one tiled block of the file's bytes
)

const (
	optionStored     = 0 // payload is raw, uncompressed bytes
	optionCompressed = 1 // payload is fastlz Level 1 output
)

// blockSize is the tiling unit used when splitting a file into data
// chunks; each chunk holds at most this many uncompressed bytes.
const blockSize = 128 * 1024

// rawStoreCeiling is the block size below which compression is skipped
// outright; the per-block overhead would outweigh any savings.
const rawStoreCeiling = 32

// chunkHeader is the 16-byte record preceding every chunk's payload.
type chunkHeader struct {
	ID       uint16
	Options  uint16
	Size     uint32
	Checksum uint32
	Extra    uint32
}

func (h chunkHeader) marshal() [16]byte {
	var buf [16]byte
	binary.LittleEndian.PutUint16(buf[0:2], h.ID)
	binary.LittleEndian.PutUint16(buf[2:4], h.Options)
	binary.LittleEndian.PutUint32(buf[4:8], h.Size)
	binary.LittleEndian.PutUint32(buf[8:12], h.Checksum)
	binary.LittleEndian.PutUint32(buf[12:16], h.Extra)
	return buf
}

func unmarshalChunkHeader(buf [16]byte) chunkHeader {
	return chunkHeader{
		ID:       binary.LittleEndian.Uint16(buf[0:2]),
		Options:  binary.LittleEndian.Uint16(buf[2:4]),
		Size:     binary.LittleEndian.Uint32(buf[4:8]),
		Checksum: binary.LittleEndian.Uint32(buf[8:12]),
		Extra:    binary.LittleEndian.Uint32(buf[12:16]),
	}
}

// HasMagic reports whether buf begins with the 6pack magic prefix. It is
// used both to detect existing archives (refusing to re-pack them) and to
// validate an archive before unpacking.
func HasMagic(buf []byte) bool {
	if len(buf) < len(magic) {
		return false
	}
	return [8]byte(buf[:8]) == magic
}
