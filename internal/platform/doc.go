// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package platform hands documents over to the host operating system.
//
// Two strategies exist. The viewer strategy resolves a file:// URI and the
// MIME type of the document and passes them to a viewer command. The share
// strategy passes the raw path to the system open command. [New] picks one
// from configuration.
//
// Commands are split on whitespace. The tokens {uri}, {path} and {mime} are
// replaced by the document's values; when none of them appears the target
// (URI for viewer, path for share) is appended as the last argument.
package platform
