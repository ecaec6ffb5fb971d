// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

package fastlz

import "errors"

// Sentinel errors returned by Decompress and its level-specific cores, and
// by CompressLevel.
var (
	// ErrUnknownLevel is returned when the first byte's top 3 bits name
	// neither Level 1 nor Level 2.
	ErrUnknownLevel = errors.New("fastlz: unknown level marker")
	// ErrOutputOverflow is returned when a literal run or match copy would
	// write past the caller-supplied maxout.
	ErrOutputOverflow = errors.New("fastlz: output overflow")
	// ErrReferenceUnderflow is returned when a match back-reference points
	// before the start of the decoded output.
	ErrReferenceUnderflow = errors.New("fastlz: reference underflow")
	// ErrTruncatedInput is returned when an opcode or literal run needs more
	// input bytes than remain.
	ErrTruncatedInput = errors.New("fastlz: truncated input")
	// ErrInvalidLevel is returned by CompressLevel for any level outside {1, 2}.
	ErrInvalidLevel = errors.New("fastlz: invalid compression level")
)
