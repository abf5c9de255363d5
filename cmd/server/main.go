// main.go
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

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localnerve/appearancedb/internal/config"
	"github.com/localnerve/appearancedb/internal/database"
	"github.com/localnerve/appearancedb/internal/logger"
	"github.com/localnerve/appearancedb/internal/ratelimit"
	"github.com/localnerve/appearancedb/internal/server"
	"github.com/localnerve/appearancedb/internal/services"
	"go.uber.org/zap"
)

// @title AppearanceDB API
// @version 1.0.0
// @description Profile appearance data service with session gate and rate limiting
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/appearancedb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// run returns instead of exiting so its deferred closes complete first
	err = run(cfg, zlog)
	if err != nil {
		zlog.Error("server exited with error", zap.Error(err))
	}
	_ = zlog.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	db, err := database.Connect(cfg, zlog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Warn("failed to close database", zap.Error(err))
		}
	}()

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var store ratelimit.Store
	switch cfg.RateLimitStore {
	case "memory":
		store = ratelimit.NewMemoryStore(cfg.RateLimitWindow)
	default:
		store = ratelimit.NewGormStore(db, cfg.RateLimitWindow)
	}
	defer func() {
		if err := store.Close(); err != nil {
			zlog.Warn("failed to close rate limit store", zap.Error(err))
		}
	}()

	app := server.New(server.Options{
		Config:    cfg,
		DB:        db,
		Sessions:  services.NewAuthorizerSessions(cfg, zlog),
		Limiter:   ratelimit.New(store, cfg.RateLimitMax, cfg.RateLimitWindow, zlog),
		Logger:    zlog,
		Metrics:   true,
		AccessLog: true,
	})

	// Authorizer is initialized on the first authenticated request
	zlog.Info("authorizer will be initialized on first authenticated request",
		zap.String("authorizerURL", cfg.AuthzURL))

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	defer func() {
		signal.Stop(c)
		close(done)
	}()

	go func() {
		select {
		case <-c:
			zlog.Info("gracefully shutting down")
			_ = app.ShutdownWithTimeout(10 * time.Second)
		case <-done:
		}
	}()

	zlog.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("rateLimitStore", cfg.RateLimitStore),
		zap.Int("rateLimitMax", cfg.RateLimitMax),
		zap.Duration("rateLimitWindow", cfg.RateLimitWindow))
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	zlog.Info("server stopped")
	return nil
}
