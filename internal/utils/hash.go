// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// ChecksumFile returns the hex-encoded BLAKE2b-256 digest of the file at path.
//
// Example usage:
//
//	sum, err := utils.ChecksumFile("/home/me/docs/lecture.pdf")
func ChecksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening file for checksum: %w", err)
	}
	defer f.Close()

	return Checksum(f)
}

// Checksum returns the hex-encoded BLAKE2b-256 digest of everything read
// from r.
func Checksum(r io.Reader) (string, error) {
	// unkeyed: New256 only fails for keys longer than 64 bytes
	h, _ := blake2b.New256(nil)
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("error reading data for checksum: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
