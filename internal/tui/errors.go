// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/internal/validators"
)

// humanizeError turns a service error into the one-line message shown on screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrNoDocumentDir):
		return "No document directory configured (set -f or STORAGE_FILES_DOCUMENT_DIR)"
	case errors.Is(err, service.ErrRemoteListUnavailable):
		return "Could not load shared documents. Press r to retry"
	case errors.Is(err, service.ErrDownloadInProgress):
		return "Another download is still running"
	case errors.Is(err, service.ErrDownloadFailed):
		return "Download failed"
	case errors.Is(err, service.ErrOpenFailed):
		return "Could not open the file. It is kept in My documents"
	case errors.Is(err, service.ErrNoFilePath):
		return "This entry has no file"
	case errors.Is(err, service.ErrNoServerIdentity):
		return "This file is not linked to a server document and cannot be rated"
	case errors.Is(err, service.ErrDocumentDeleted):
		return "This document was deleted from the server"
	case errors.Is(err, service.ErrRatingRejected):
		return err.Error()
	case errors.Is(err, service.ErrWrongCredentials):
		return "Wrong username or password"
	case errors.Is(err, service.ErrNotLoggedIn):
		return "Session expired, please log in again"
	case errors.Is(err, service.ErrFileNotFound):
		return "File not found"
	case errors.Is(err, validators.ErrEmptyField),
		errors.Is(err, validators.ErrInvalidEmail),
		errors.Is(err, validators.ErrPasswordMismatch),
		errors.Is(err, validators.ErrPasswordTooShort),
		errors.Is(err, validators.ErrInvalidRating):
		return err.Error()
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrServerUnreachable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
