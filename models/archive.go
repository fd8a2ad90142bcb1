// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ArchiveTab selects which of the two archive lists is visible.
type ArchiveTab string

const (
	// TabLocal lists documents already present in the private document directory.
	TabLocal ArchiveTab = "local"
	// TabShared lists documents shared with the user on the server.
	TabShared ArchiveTab = "shared"
)

// Label returns the human-readable tab caption.
func (t ArchiveTab) Label() string {
	switch t {
	case TabLocal:
		return "My documents"
	case TabShared:
		return "Shared documents"
	default:
		return string(t)
	}
}

// Other returns the opposite tab.
func (t ArchiveTab) Other() ArchiveTab {
	if t == TabLocal {
		return TabShared
	}
	return TabLocal
}

// ItemType is the kind of archive entry. Only files are produced today;
// folders are kept for compatibility with the list renderer.
type ItemType string

const (
	ItemFolder ItemType = "folder"
	ItemFile   ItemType = "file"
)

// ArchiveItem is a display-ready document entry. It is rebuilt every time
// an archive tab is loaded and is never persisted.
//
// A local-origin item carries LocalURI; a remote-origin item carries FileURL
// and FileName. An item may carry both once the remote file is downloaded.
type ArchiveItem struct {
	// ID is the local file name for local items or the stringified server
	// document id for shared items.
	ID string `json:"id"`

	// DocumentID is the server-side identity of the document. It is nil when
	// the provenance of a local file is unknown (e.g. the file was copied in
	// by the user instead of downloaded through the app).
	DocumentID *int64 `json:"documentId,omitempty"`

	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Type     ItemType `json:"type"`

	// Color is derived from the file extension or MIME family.
	Color string `json:"color"`

	// IsShared is true for remote-origin items.
	IsShared bool `json:"isShared"`

	// FileURL is the remote download location.
	FileURL string `json:"fileUrl,omitempty"`

	// LocalURI is the absolute on-device path.
	LocalURI string `json:"localUri,omitempty"`

	// FileName is the leaf name used on device.
	FileName string `json:"fileName,omitempty"`
}

// HasDocumentID reports whether the item is linked to a server document.
func (i ArchiveItem) HasDocumentID() bool {
	return i.DocumentID != nil && *i.DocumentID > 0
}

// LocalFile is a supported document found in the private document directory.
type LocalFile struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Outcome tells the caller what activating an archive item did.
type Outcome int

const (
	// OutcomeIgnored means the item carried nothing that could be opened.
	OutcomeIgnored Outcome = iota
	// OutcomeOpened means the document was handed to the opener.
	OutcomeOpened
	// OutcomeDownloaded means the document was fetched and saved but not
	// opened yet; the caller decides whether to open it now.
	OutcomeDownloaded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOpened:
		return "opened"
	case OutcomeDownloaded:
		return "downloaded"
	default:
		return "ignored"
	}
}

// Activation is the result of activating an archive item.
type Activation struct {
	Outcome Outcome
	// Path is the local file that was opened or downloaded.
	Path string
	// Item is the activated item; after a download its LocalURI is set.
	Item ArchiveItem
}
