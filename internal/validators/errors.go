// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyField        = errors.New("field is required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidDocumentID = errors.New("invalid document ID")
)
