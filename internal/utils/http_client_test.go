// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_WithBase(t *testing.T) {
	client := NewHTTPClient().WithBase("http://localhost:8080", 5*time.Second)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", got)
	}
}

func TestHTTPClient_WithBaseZeroTimeout(t *testing.T) {
	client := NewHTTPClient().WithBase("http://localhost", 0)

	if got := client.GetClient().Timeout; got != 0 {
		t.Errorf("expected no timeout, got %v", got)
	}
}
