// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

/*
Package container implements the 6pack single-file archive format: an
8-byte magic prefix followed by a sequence of 16-byte little-endian chunk
headers and their payloads.

A packed file holds exactly one file-entry chunk (the original name and
size) followed by one data chunk per tiled block of up to 128KiB of the
input (none for an empty file). Each block of 32 bytes or more is
compressed with fastlz's Level 1 codec; smaller blocks are stored raw. Every
chunk payload carries its own Adler-32 checksum, verified on unpack before
any byte of it is trusted.
*/
package container
