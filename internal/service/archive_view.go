// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-doc-archive/models"
)

// ArchiveView holds the state of the Archive screen: one list per tab, the
// active tab and the search text. It is not safe for concurrent use; front
// ends fetch with [ArchiveView.Fetch] off the UI loop and hand the result
// back through [ArchiveView.Apply].
type ArchiveView struct {
	archive ClientArchiveService
	userID  int64

	active models.ArchiveTab
	search string
	items  map[models.ArchiveTab][]models.ArchiveItem
	errs   map[models.ArchiveTab]error
	loaded map[models.ArchiveTab]bool
}

// NewArchiveView starts on the local tab with empty lists.
func NewArchiveView(archive ClientArchiveService, userID int64) *ArchiveView {
	return &ArchiveView{
		archive: archive,
		userID:  userID,
		active:  models.TabLocal,
		items:   make(map[models.ArchiveTab][]models.ArchiveItem),
		errs:    make(map[models.ArchiveTab]error),
		loaded:  make(map[models.ArchiveTab]bool),
	}
}

func (v *ArchiveView) ActiveTab() models.ArchiveTab {
	return v.active
}

func (v *ArchiveView) Search() string {
	return v.search
}

// SwitchTab activates tab and clears the search text. Lists are kept.
func (v *ArchiveView) SwitchTab(tab models.ArchiveTab) {
	v.active = tab
	v.search = ""
}

func (v *ArchiveView) SetSearch(text string) {
	v.search = text
}

// SetUserID changes whose shared documents are fetched.
func (v *ArchiveView) SetUserID(userID int64) {
	v.userID = userID
}

// Fetch loads the list for tab without touching the view state.
func (v *ArchiveView) Fetch(ctx context.Context, tab models.ArchiveTab) ([]models.ArchiveItem, error) {
	if tab == models.TabShared {
		return v.archive.ListShared(ctx, v.userID)
	}
	return v.archive.ListLocal(ctx)
}

// Apply stores a fetch result for tab.
func (v *ArchiveView) Apply(tab models.ArchiveTab, items []models.ArchiveItem, err error) {
	if items == nil {
		items = []models.ArchiveItem{}
	}
	v.items[tab] = items
	v.errs[tab] = err
	v.loaded[tab] = true
}

// Refresh re-fetches the active tab only.
func (v *ArchiveView) Refresh(ctx context.Context) error {
	tab := v.active
	items, err := v.Fetch(ctx, tab)
	v.Apply(tab, items, err)
	return err
}

// Loaded reports whether tab has been fetched at least once.
func (v *ArchiveView) Loaded(tab models.ArchiveTab) bool {
	return v.loaded[tab]
}

// Items returns the unfiltered list of tab.
func (v *ArchiveView) Items(tab models.ArchiveTab) []models.ArchiveItem {
	return v.items[tab]
}

// Err returns the error of the last fetch of tab.
func (v *ArchiveView) Err(tab models.ArchiveTab) error {
	return v.errs[tab]
}

// Visible returns the active list filtered by the search text.
func (v *ArchiveView) Visible() []models.ArchiveItem {
	return v.archive.Filter(v.items[v.active], v.search)
}
