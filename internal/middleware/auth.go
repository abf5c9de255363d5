// auth.go
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

package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/appearancedb/internal/services"
	"github.com/localnerve/appearancedb/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserIDKey is the fiber.Ctx Locals key holding the authenticated user id
const UserIDKey = "userID"

// SessionCookie is the Authorizer session cookie name
const SessionCookie = "cookie_session"

// Gate authenticates the caller and checks the account moderation flags
type Gate struct {
	Sessions services.SessionValidator
	DB       *gorm.DB
	Logger   *zap.Logger
}

// AuthRead admits any authenticated account that is not suspended
func (g *Gate) AuthRead() fiber.Handler {
	return g.authorize(false)
}

// AuthWrite admits authenticated accounts that are neither suspended nor restricted
func (g *Gate) AuthWrite() fiber.Handler {
	return g.authorize(true)
}

func (g *Gate) authorize(mutation bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies(SessionCookie)
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Authorizer cookie %q not found", SessionCookie),
				Type:    "appearance.authorization.session",
			}
		}

		identity, err := g.Sessions.ValidateSession(session, c.Protocol(), c.Hostname())
		if err != nil {
			if !errors.Is(err, services.ErrInvalidSession) {
				g.Logger.Warn("session validation error", zap.Error(err))
			}
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "appearance.authorization.session",
			}
		}

		status, err := services.GetAccountStatus(c.UserContext(), g.DB, identity.ID)
		if err != nil {
			g.Logger.Error("account status lookup failed", zap.String("userID", identity.ID), zap.Error(err))
			return err
		}

		if status.Suspended {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Account suspended",
				Type:    "appearance.authorization.suspended",
			}
		}

		if mutation && status.Restricted {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Account restricted",
				Type:    "appearance.authorization.restricted",
			}
		}

		c.Locals(UserIDKey, identity.ID)

		return c.Next()
	}
}
