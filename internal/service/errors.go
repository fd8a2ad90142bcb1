// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrRemoteListUnavailable = errors.New("shared documents are unavailable")

	ErrDownloadFailed     = errors.New("download failed")
	ErrDownloadInProgress = errors.New("another download is in progress")
	ErrOpenFailed         = errors.New("could not open document")
	ErrNoFilePath         = errors.New("item has no file path")
)

var (
	ErrNoServerIdentity  = errors.New("document is not linked to a server document")
	ErrDocumentDeleted   = errors.New("document no longer exists on the server")
	ErrServerUnreachable = errors.New("server is unreachable")
	ErrRatingRejected    = errors.New("rating rejected")
)

var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrWrongCredentials = errors.New("wrong username or password")
	ErrAccessDenied     = errors.New("access denied")
	ErrFileNotFound     = errors.New("file not found")
)
