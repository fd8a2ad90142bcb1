// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the archive client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (or overrides supplied by the CLI front end)
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the TUI binary and
// [GetClientConfigWith] for front ends that parse their own flags.
package config
