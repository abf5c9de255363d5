// server.go
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

package server

import (
	"errors"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/localnerve/appearancedb/internal/config"
	"github.com/localnerve/appearancedb/internal/handlers"
	"github.com/localnerve/appearancedb/internal/metrics"
	"github.com/localnerve/appearancedb/internal/middleware"
	"github.com/localnerve/appearancedb/internal/ratelimit"
	"github.com/localnerve/appearancedb/internal/services"
	"github.com/localnerve/appearancedb/internal/types"
	"github.com/localnerve/appearancedb/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/localnerve/appearancedb/docs/api" // Swagger docs
)

// Options wires the application dependencies
type Options struct {
	Config   *config.Config
	DB       *gorm.DB
	Sessions services.SessionValidator
	Limiter  *ratelimit.Limiter
	Logger   *zap.Logger

	// Metrics registers request metrics on the default Prometheus registry and serves /metrics.
	// Enable it at most once per process.
	Metrics bool
	// AccessLog enables the fiber request logger
	AccessLog bool
}

// New builds the Fiber application with every route
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(opts.Logger),
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(compress.New())

	if opts.Metrics {
		prometheus := fiberprometheus.New(metrics.Namespace)
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	healthHandler := &handlers.HealthHandler{Config: opts.Config, DB: opts.DB, Logger: opts.Logger}
	app.Get("/health", healthHandler.Health)

	gate := &middleware.Gate{Sessions: opts.Sessions, DB: opts.DB, Logger: opts.Logger}
	appearanceHandler := &handlers.AppearanceHandler{
		DB:        opts.DB,
		AssetHost: opts.Config.AssetHost,
		Logger:    opts.Logger,
	}

	api := app.Group("/api")
	api.Get("/appearance", gate.AuthRead(), appearanceHandler.GetAppearance)
	api.Put("/appearance", gate.AuthWrite(), middleware.RateLimit(opts.Limiter), appearanceHandler.PutAppearance)
	api.Post("/appearance", gate.AuthWrite(), middleware.RateLimit(opts.Limiter), appearanceHandler.PostAppearance)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	return app
}

// ErrorHandler maps errors that reach Fiber to the JSON envelopes.
// Gate and routing errors use the status envelope, anything else is a 50001.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var custom *types.CustomError
		if errors.As(err, &custom) {
			return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code, "unknown")
		}

		log.Error("unhandled error", zap.String("url", c.OriginalURL()), zap.Error(err))
		return utils.ServerErrorResponse(c, err)
	}
}
