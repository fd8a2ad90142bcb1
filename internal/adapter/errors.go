// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrMalformedResponse is returned when a 2xx response body does not
	// have the expected envelope shape.
	ErrMalformedResponse = errors.New("malformed server response")

	// ErrUnsuccessful is returned when the server answers 2xx with
	// "success": false.
	ErrUnsuccessful = errors.New("server reported failure")
)

// ServerError is a failure the server reported itself: an HTTP error status
// or a 2xx envelope with "success": false. Message is the server's text as
// sent. Kind is one of the sentinels above, or nil for a status without one.
type ServerError struct {
	Kind    error
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	prefix := fmt.Sprintf("http %d", e.Status)
	if e.Kind != nil {
		prefix = e.Kind.Error()
	}
	if e.Message == "" {
		return prefix
	}
	return prefix + ": " + e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Kind
}

// ServerMessage returns the message the server attached to err. ok is false
// when err did not come from a server answer.
func ServerMessage(err error) (msg string, ok bool) {
	var se *ServerError
	if !errors.As(err, &se) {
		return "", false
	}
	return se.Message, true
}

func unsuccessful(message string) error {
	return &ServerError{Kind: ErrUnsuccessful, Status: 200, Message: message}
}
