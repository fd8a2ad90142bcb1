// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MetadataRecord links a downloaded file on device to the server document it
// came from. Records are stored as one JSON array under the
// "my_saved_documents" key.
type MetadataRecord struct {
	// DocumentID is the server document identity.
	DocumentID int64 `json:"documentId"`

	// Title is the display title remembered at download time.
	Title string `json:"title"`

	// LocalURI is the absolute on-device path the document was saved to.
	LocalURI string `json:"localUri"`

	// SavedAt is when the download completed. Older records may not carry it.
	SavedAt *time.Time `json:"savedAt,omitempty"`

	// Checksum is the hex blake2b-256 digest of the downloaded bytes.
	// Informational only: cached files are opened without revalidation.
	Checksum string `json:"checksum,omitempty"`
}
