// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/go-doc-archive/models"
)

// sessionState is the signed-in session shared by all pages of one program.
type sessionState struct {
	mu      sync.RWMutex
	session models.Session
}

func newSessionState(session models.Session) *sessionState {
	return &sessionState{session: session}
}

func (s *sessionState) user() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User
}

func (s *sessionState) userID() int64 {
	return s.user().UserID
}

func (s *sessionState) setUser(user models.User) {
	s.mu.Lock()
	s.session.User = user
	s.mu.Unlock()
}
