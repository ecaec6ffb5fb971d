// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package container

import (
	"bytes"
	"hash/adler32"

	"github.com/go-fastlz/sixpack/fastlz"
)

// Entry describes the file recovered from an archive: its declared name
// and decoded contents.
type Entry struct {
	Name string
	Data []byte
}

// Unpack parses a 6pack archive, verifying every chunk's Adler-32 checksum
// before trusting its payload, and returns the recovered file.
func Unpack(archive []byte) (Entry, error) {
	if !HasMagic(archive) {
		return Entry{}, ErrNotAnArchive
	}
	rest := archive[len(magic):]

	header, payload, rest, err := readChunk(rest)
	if err != nil {
		return Entry{}, err
	}
	if header.ID != chunkFileEntry {
		return Entry{}, ErrMissingFileEntry
	}
	if len(payload) < 10 {
		return Entry{}, ErrTruncated
	}

	nameLen := int(payload[8]) | int(payload[9])<<8
	if len(payload) < 10+nameLen {
		return Entry{}, ErrTruncated
	}
	name := string(bytes.TrimRight(payload[10:10+nameLen], "\x00"))

	// Preallocate against the remaining archive bytes, not the file-entry
	// chunk's declared original size: that size comes from the archive
	// itself, and a crafted header could otherwise force an arbitrarily
	// large allocation before a single data chunk has been verified.
	out := make([]byte, 0, len(rest))
	for len(rest) > 0 {
		var dataHeader chunkHeader
		var dataPayload []byte
		dataHeader, dataPayload, rest, err = readChunk(rest)
		if err != nil {
			return Entry{}, err
		}
		if dataHeader.ID != chunkData {
			return Entry{}, ErrUnknownChunk
		}

		switch dataHeader.Options {
		case optionStored:
			out = append(out, dataPayload...)
		case optionCompressed:
			block, err := fastlz.Decompress(dataPayload, int(dataHeader.Extra))
			if err != nil {
				return Entry{}, err
			}
			out = append(out, block...)
		default:
			return Entry{}, ErrUnknownOption
		}
	}

	return Entry{Name: name, Data: out}, nil
}

// readChunk reads one chunk header and payload from buf, verifying the
// payload's checksum, and returns the remainder of buf after the chunk.
func readChunk(buf []byte) (chunkHeader, []byte, []byte, error) {
	if len(buf) < 16 {
		return chunkHeader{}, nil, nil, ErrTruncated
	}
	header := unmarshalChunkHeader([16]byte(buf[:16]))
	buf = buf[16:]

	if uint32(len(buf)) < header.Size {
		return chunkHeader{}, nil, nil, ErrTruncated
	}
	payload := buf[:header.Size]
	if adler32.Checksum(payload) != header.Checksum {
		return chunkHeader{}, nil, nil, ErrChecksumMismatch
	}

	return header, payload, buf[header.Size:], nil
}
