// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package container

import "errors"

// Sentinel errors surfaced by Pack and Unpack.
var (
	// ErrAlreadyPacked is returned by Pack when the input already begins
	// with the archive magic.
	ErrAlreadyPacked = errors.New("container: input is already a 6pack archive")
	// ErrNotAnArchive is returned by Unpack when the input lacks the
	// archive magic.
	ErrNotAnArchive = errors.New("container: input is not a 6pack archive")
	// ErrTruncated is returned when a chunk header or payload runs past
	// the end of the input.
	ErrTruncated = errors.New("container: truncated archive")
	// ErrChecksumMismatch is returned when a chunk's Adler-32 does not
	// match its payload.
	ErrChecksumMismatch = errors.New("container: checksum mismatch")
	// ErrUnknownChunk is returned when Unpack encounters a chunk id it
	// does not recognize.
	ErrUnknownChunk = errors.New("container: unknown chunk id")
	// ErrUnknownOption is returned when a data chunk's options field
	// names neither stored nor compressed.
	ErrUnknownOption = errors.New("container: unknown chunk option")
	// ErrMissingFileEntry is returned when an archive's first chunk is
	// not the file-entry chunk.
	ErrMissingFileEntry = errors.New("container: archive is missing its file-entry chunk")
	// ErrFileTooLarge is returned by Pack when data would overflow the
	// file-entry chunk's 32-bit original-size field.
	ErrFileTooLarge = errors.New("container: file too large for a 32-bit size field")
)
