// ratelimit.go
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
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/appearancedb/internal/ratelimit"
	"github.com/localnerve/appearancedb/internal/types"
	"github.com/localnerve/appearancedb/internal/utils"
)

// RateLimit counts the request against the authenticated user's window.
// It must run after the gate.
func RateLimit(limiter *ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(UserIDKey).(string)
		if userID == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "user not found in context",
				Type:    "appearance.ratelimit",
			}
		}

		res := limiter.Allow(c.UserContext(), userID)
		if !res.Allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(res.RetryAfter))
			return utils.RateLimitResponse(c, res.RemainingTime)
		}

		return c.Next()
	}
}
