// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "unauthorized", in: fmt.Errorf("%w: token expired", adapter.ErrUnauthorized), want: ErrNotLoggedIn},
		{name: "forbidden", in: fmt.Errorf("%w: nope", adapter.ErrForbidden), want: ErrAccessDenied},
		{name: "bad gateway", in: fmt.Errorf("%w: upstream", adapter.ErrBadGateway), want: ErrServerUnreachable},
		{name: "internal", in: fmt.Errorf("%w: boom", adapter.ErrInternalServerError), want: ErrServerUnreachable},
		{name: "malformed", in: fmt.Errorf("%w: data is not an array", adapter.ErrMalformedResponse), want: ErrServerUnreachable},
		{name: "transport", in: errors.New("login request: dial tcp: connection refused"), want: ErrServerUnreachable},
		{name: "not found passes through", in: fmt.Errorf("%w: gone", adapter.ErrNotFound), want: adapter.ErrNotFound},
		{name: "bad request passes through", in: fmt.Errorf("%w: bad", adapter.ErrBadRequest), want: adapter.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			// исходная ошибка должна остаться в цепочке
			assert.ErrorIs(t, got, tt.in)
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}

func TestServerReason(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want string
	}{
		{
			name: "message with colon kept whole",
			in:   fmt.Errorf("rate document: %w", &adapter.ServerError{Kind: adapter.ErrUnsuccessful, Status: 200, Message: "rating: already submitted"}),
			want: "rating: already submitted",
		},
		{
			name: "empty message falls back to error text",
			in:   &adapter.ServerError{Kind: adapter.ErrConflict, Status: 409},
			want: "conflict",
		},
		{
			name: "transport error kept whole",
			in:   errors.New("rate document request: dial tcp 127.0.0.1:80: connection refused"),
			want: "rate document request: dial tcp 127.0.0.1:80: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serverReason(tt.in))
		})
	}
}

func TestIsTransportFailure(t *testing.T) {
	assert.True(t, isTransportFailure(errors.New("dial tcp: connection refused")))
	assert.False(t, isTransportFailure(&adapter.ServerError{Status: 418}))
	assert.False(t, isTransportFailure(fmt.Errorf("%w: gone", adapter.ErrNotFound)))
}
