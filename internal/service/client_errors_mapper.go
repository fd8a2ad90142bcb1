// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// The original error stays in the chain so the server message can still be shown.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	case isTransportFailure(err):
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}

	return err
}

// isTransportFailure reports whether err did not come from a server answer at
// all (refused connection, DNS, timeout).
func isTransportFailure(err error) bool {
	if _, ok := adapter.ServerMessage(err); ok {
		return false
	}
	for _, known := range []error{
		adapter.ErrBadRequest, adapter.ErrUnauthorized, adapter.ErrForbidden,
		adapter.ErrNotFound, adapter.ErrConflict, adapter.ErrInternalServerError,
		adapter.ErrBadGateway, adapter.ErrMalformedResponse, adapter.ErrUnsuccessful,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}

// serverReason returns the message the server sent with err, as sent. An
// answer without a message falls back to the error text.
func serverReason(err error) string {
	if msg, ok := adapter.ServerMessage(err); ok && msg != "" {
		return msg
	}
	return err.Error()
}
