// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-doc-archive/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldNewPassword = "new_password"
	FieldConfirm     = "confirm"
	FieldUserID      = "user_id"
	FieldDocumentID  = "document_id"
	FieldRating      = "rating"
)

const (
	// MinPasswordLength is the shortest accepted new password.
	MinPasswordLength = 6

	MinRating = 1
	MaxRating = 5
)

// AccountValidator implements [Validator] for the forms the user fills in:
// login credentials, profile edits, password changes and ratings.
//
// It supports both value and pointer forms of every model and allows
// optional field-level scoping via variadic field name arguments.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator and returns it as the
// Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches validation to the type-specific method.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.ProfileForm / *models.ProfileForm
//   - models.PasswordForm / *models.PasswordForm
//   - models.RatingRequest / *models.RatingRequest
//
// Returns ErrUnsupportedType for anything else.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.ProfileForm:
		return v.validateProfile(ctx, value, fields...)
	case *models.ProfileForm:
		return v.validateProfile(ctx, *value, fields...)

	case models.PasswordForm:
		return v.validatePassword(ctx, value, fields...)
	case *models.PasswordForm:
		return v.validatePassword(ctx, *value, fields...)

	case models.RatingRequest:
		return v.validateRating(ctx, value, fields...)
	case *models.RatingRequest:
		return v.validateRating(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(creds.Username) {
				return fmt.Errorf("%w: username", ErrEmptyField)
			}
		case FieldPassword:
			if creds.Password == "" {
				return fmt.Errorf("%w: password", ErrEmptyField)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfile checks the profile form. Both name and email must be
// non-blank and the email must parse as a single address.
func (v *AccountValidator) validateProfile(_ context.Context, form models.ProfileForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if isBlank(form.FullName) {
				return fmt.Errorf("%w: full name", ErrEmptyField)
			}
		case FieldEmail:
			email := strings.TrimSpace(form.Email)
			if email == "" {
				return fmt.Errorf("%w: email", ErrEmptyField)
			}
			addr, err := mail.ParseAddress(email)
			if err != nil || addr.Address != email {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePassword runs the checks in the order the form reports them:
// both filled, equal, then long enough.
func (v *AccountValidator) validatePassword(_ context.Context, form models.PasswordForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewPassword, FieldConfirm}
	}

	for _, f := range fields {
		switch f {
		case FieldNewPassword:
			if form.NewPassword == "" {
				return fmt.Errorf("%w: new password", ErrEmptyField)
			}
		case FieldConfirm:
			if form.Confirm == "" {
				return fmt.Errorf("%w: password confirmation", ErrEmptyField)
			}
		default:
			return ErrUnknownField
		}
	}

	if form.NewPassword != form.Confirm {
		return ErrPasswordMismatch
	}
	if len([]rune(form.NewPassword)) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

func (v *AccountValidator) validateRating(_ context.Context, req models.RatingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDocumentID, FieldRating}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldDocumentID:
			if req.DocumentID <= 0 {
				return ErrInvalidDocumentID
			}
		case FieldRating:
			if req.Rating < MinRating || req.Rating > MaxRating {
				return ErrInvalidRating
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
