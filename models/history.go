// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryLimit is the maximum number of recently viewed entries kept.
const HistoryLimit = 10

// HistoryItem is a recently viewed document shown on the Home screen.
type HistoryItem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Rating   float64   `json:"rating"`
	Time     time.Time `json:"time"`
	Color    string    `json:"color"`
	FileURI  string    `json:"fileUri,omitempty"`
}
