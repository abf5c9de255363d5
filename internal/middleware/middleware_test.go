// middleware_test.go
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

package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/appearancedb/internal/middleware"
	"github.com/localnerve/appearancedb/internal/ratelimit"
	"github.com/localnerve/appearancedb/internal/server"
	"github.com/localnerve/appearancedb/internal/testutil"
	"github.com/localnerve/appearancedb/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGateApp(t *testing.T, sessions *testutil.FakeSessions) *fiber.App {
	t.Helper()

	gate := &middleware.Gate{Sessions: sessions, DB: testutil.NewTestDB(t), Logger: zap.NewNop()}
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler(zap.NewNop())})
	app.Get("/read", gate.AuthRead(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.UserIDKey).(string))
	})
	return app
}

func TestGateSetsUserID(t *testing.T) {
	sessions := testutil.NewFakeSessions()
	sessions.Add("abc", "user-1")
	app := newGateApp(t, sessions)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/read", nil, "abc"))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusOK)
}

func TestGateValidatorError(t *testing.T) {
	sessions := testutil.NewFakeSessions()
	sessions.Add("abc", "user-1")
	sessions.Err = errors.New("authorizer ping failed")
	app := newGateApp(t, sessions)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/read", nil, "abc"))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)

	var result map[string]interface{}
	testutil.ParseJSON(t, resp, &result)
	assert.Contains(t, result["message"], "authorizer ping failed")
}

func TestRateLimitRequiresUser(t *testing.T) {
	store := ratelimit.NewMemoryStore(time.Minute)
	defer store.Close()

	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler(zap.NewNop())})
	app.Put("/write", middleware.RateLimit(ratelimit.New(store, 1, time.Minute, zap.NewNop())), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPut, "/write", nil, ""))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)
}

func TestRateLimitHeaders(t *testing.T) {
	store := ratelimit.NewMemoryStore(time.Minute)
	defer store.Close()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "user-1")
		return c.Next()
	})
	app.Put("/write", middleware.RateLimit(ratelimit.New(store, 1, time.Minute, zap.NewNop())), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPut, "/write", nil, ""))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusOK)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPut, "/write", nil, ""))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusTooManyRequests)
	assert.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))

	var body utils.RateLimitResponseStruct
	testutil.ParseJSON(t, resp, &body)
	assert.True(t, body.Blocked)
	assert.Equal(t, 60, body.RemainingTime)
}
