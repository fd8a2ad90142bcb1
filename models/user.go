// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the account profile of the signed-in user.
type User struct {
	// UserID is the server-side user identifier.
	UserID int64 `json:"userId"`

	// Username is the login name. It cannot be changed from the client.
	Username string `json:"username"`

	// FullName is the display name shown on the Home screen.
	FullName string `json:"fullName"`

	Email string `json:"email"`

	// Role defaults to "USER" when the server omits it.
	Role string `json:"role"`

	IsActive bool `json:"isActive"`

	// ProfilePicture is the avatar URL returned by the avatar upload endpoint.
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// DisplayName returns the best available name for greetings.
func (u User) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	default:
		return "Student"
	}
}

// Session is the persisted "userSession" value.
type Session struct {
	User    User      `json:"user"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}

// Credentials is the body of POST /api/v1/auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the data payload of a successful login.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProfileUpdate is the body of PUT /api/v1/users/{id}.
type ProfileUpdate struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// PasswordChange is the body of PUT /api/v1/users/{id}/password.
type PasswordChange struct {
	UserID      int64  `json:"userId"`
	NewPassword string `json:"newPassword"`
}

// AvatarUpload is the data payload returned by the avatar endpoint.
type AvatarUpload struct {
	URL string `json:"url"`
}

// PasswordForm is the password change form as typed by the user, before it
// becomes a [PasswordChange].
type PasswordForm struct {
	NewPassword string
	Confirm     string
}

// ProfileForm is the profile form as typed by the user.
type ProfileForm struct {
	FullName string
	Email    string
}
