// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the document sharing backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-archive/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the document sharing backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// Login authenticates with username and password. On success the
	// returned token is also stored via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)

	// ListUserDocuments fetches the documents shared with userID. The
	// envelope is validated strictly: a missing "success", a non-array
	// "data" or an element without id or file path yields
	// [ErrMalformedResponse]; "success": false yields [ErrUnsuccessful].
	ListUserDocuments(ctx context.Context, userID int64) ([]models.BackendDocument, error)

	// GetDocumentDetail fetches one document. A null "data" is returned as a
	// nil detail with a nil error: the document no longer exists.
	GetDocumentDetail(ctx context.Context, documentID int64) (*models.DocumentDetail, error)

	// RateDocument posts a rating. A rejection carries the server's message.
	RateDocument(ctx context.Context, req models.RatingRequest) error

	// Download streams fileURL into dst and returns the HTTP status code.
	// dst is created only for a 200 response. A failure while streaming
	// leaves the partial file in place.
	Download(ctx context.Context, fileURL, dst string) (int, error)

	// UpdateProfile sends the basic profile fields and returns the user as
	// stored by the server.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// UploadAvatar uploads the image at path and returns its public URL.
	UploadAvatar(ctx context.Context, userID int64, path string) (string, error)

	// ChangePassword sets a new password for the user.
	ChangePassword(ctx context.Context, change models.PasswordChange) error
}
