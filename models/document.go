// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// BackendDocument is a document record as returned by the documents API.
type BackendDocument struct {
	DocumentID int64     `json:"documentId"`
	Title      string    `json:"title"`
	FileType   string    `json:"fileType"`
	FilePath   string    `json:"filePath"`
	FileSize   int64     `json:"fileSize"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DocumentsEnvelope is the response body of GET /api/v1/documents/user/{userId}.
//
// Success is a pointer so that a missing field can be told apart from an
// explicit false. Data is kept raw until the adapter has checked that it is
// a JSON array.
type DocumentsEnvelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// DocumentDetail is the payload of GET /api/v1/documents/{id}.
type DocumentDetail struct {
	DocumentID    int64     `json:"documentId"`
	Title         string    `json:"title"`
	FileType      string    `json:"fileType"`
	FilePath      string    `json:"filePath"`
	FileSize      int64     `json:"fileSize"`
	CreatedAt     time.Time `json:"createdAt"`
	AverageRating float64   `json:"averageRating"`
}

// APIResponse is the generic {success, data, message} envelope used by the
// detail, rating, auth and profile endpoints.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data"`
	Message string `json:"message,omitempty"`
}

// RatingRequest is the body of POST /api/v1/documents/{id}/ratings.
type RatingRequest struct {
	UserID     int64  `json:"userId"`
	DocumentID int64  `json:"documentId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
