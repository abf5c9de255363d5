package testutil

import (
	"sync"

	"github.com/localnerve/appearancedb/internal/services"
)

// FakeSessions maps session cookies to user ids
type FakeSessions struct {
	mu       sync.Mutex
	sessions map[string]string
	Err      error
}

// NewFakeSessions creates an empty session table
func NewFakeSessions() *FakeSessions {
	return &FakeSessions{sessions: make(map[string]string)}
}

// Add registers a cookie for a user
func (f *FakeSessions) Add(cookie, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[cookie] = userID
}

// ValidateSession implements services.SessionValidator
func (f *FakeSessions) ValidateSession(cookie, _, _ string) (*services.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	userID, ok := f.sessions[cookie]
	if !ok {
		return nil, services.ErrInvalidSession
	}
	return &services.Identity{ID: userID}, nil
}
