// auth_service.go
//
// A small, dependable data service for link-in-bio profile appearance settings
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of appearancedb.
// appearancedb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// appearancedb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with appearancedb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/localnerve/appearancedb/internal/config"
	"github.com/localnerve/appearancedb/internal/utils"
	"go.uber.org/zap"
)

// ErrInvalidSession is returned when the session cookie does not resolve to a user
var ErrInvalidSession = errors.New("session is not valid")

// Identity is the caller resolved from a session cookie
type Identity struct {
	ID string
}

// SessionValidator resolves a session cookie to the calling user
type SessionValidator interface {
	ValidateSession(cookie, requestProtocol, requestHost string) (*Identity, error)
}

// AuthorizerSessions validates sessions against an Authorizer service.
// The client is created on first use, after the service answers a ping.
type AuthorizerSessions struct {
	cfg    *config.Config
	logger *zap.Logger
	roles  []string

	mu     sync.Mutex
	client *authorizer.AuthorizerClient
}

// NewAuthorizerSessions creates a validator accepting sessions that hold the "user" role
func NewAuthorizerSessions(cfg *config.Config, logger *zap.Logger) *AuthorizerSessions {
	return &AuthorizerSessions{
		cfg:    cfg,
		logger: logger,
		roles:  []string{"user"},
	}
}

// Initialized reports whether the Authorizer client has been created
func (s *AuthorizerSessions) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil
}

// init creates the Authorizer client once. A failed attempt is retried on the next request.
func (s *AuthorizerSessions) init(requestProtocol, requestHost string) (*authorizer.AuthorizerClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	if err := utils.PingAuthorizer(context.Background(), s.cfg.AuthzURL); err != nil {
		return nil, fmt.Errorf("authorizer ping failed: %w", err)
	}

	redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
	s.logger.Info("initializing authorizer",
		zap.String("authorizerURL", s.cfg.AuthzURL),
		zap.String("clientID", s.cfg.AuthzClientID),
		zap.String("redirectURL", redirectURL))

	client, err := authorizer.NewAuthorizerClient(s.cfg.AuthzClientID, s.cfg.AuthzURL, redirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}

	s.client = client
	return client, nil
}

// ValidateSession implements SessionValidator
func (s *AuthorizerSessions) ValidateSession(cookie, requestProtocol, requestHost string) (*Identity, error) {
	client, err := s.init(requestProtocol, requestHost)
	if err != nil {
		return nil, err
	}

	roles := make([]*string, len(s.roles))
	for i := range s.roles {
		roles[i] = &s.roles[i]
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  roles,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	if res == nil || !res.IsValid || res.User == nil || res.User.ID == "" {
		return nil, ErrInvalidSession
	}

	return &Identity{ID: res.User.ID}, nil
}
