// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes the resty HTTP client wrapper, time-ordered id generation,
// BLAKE2b file checksums, JWT subject parsing, and a JSON
// response writer used by fake backends in tests.
package utils
