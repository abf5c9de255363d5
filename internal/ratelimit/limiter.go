// limiter.go
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

package ratelimit

import (
	"context"
	"math"
	"time"

	"github.com/localnerve/appearancedb/internal/metrics"
	"go.uber.org/zap"
)

// KeyPrefix namespaces appearance update counters in a shared store
const KeyPrefix = "ratelimit:appearance:"

// Result is the outcome of one Allow call.
// Err is set when the store failed and the request was let through.
// RemainingTime is the window length in seconds; RetryAfter is the seconds until the window resets.
type Result struct {
	Allowed       bool
	Err           error
	RemainingTime int
	RetryAfter    int
}

// Limiter is a fixed window limiter keyed by user id
type Limiter struct {
	store  Store
	limit  int64
	window time.Duration
	logger *zap.Logger
}

// New creates a limiter allowing limit requests per window
func New(store Store, limit int, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{
		store:  store,
		limit:  int64(limit),
		window: window,
		logger: logger,
	}
}

// Allow counts one request for userID. Requests over the limit still consume quota.
// When the store fails the request is allowed.
func (l *Limiter) Allow(ctx context.Context, userID string) Result {
	count, ttl, err := l.store.Increment(ctx, KeyPrefix+userID, l.window)
	if err != nil {
		metrics.RateLimitFailOpen.Inc()
		l.logger.Warn("rate limiter failing open",
			zap.String("event", "ratelimit.fail_open"),
			zap.String("userID", userID),
			zap.Error(err))
		return Result{Allowed: true, Err: err}
	}

	if count > l.limit {
		metrics.RateLimitBlocked.Inc()
		retryAfter := max(int(math.Ceil(ttl.Seconds())), 1)
		l.logger.Info("rate limit exceeded",
			zap.String("event", "ratelimit.blocked"),
			zap.String("userID", userID),
			zap.Int64("count", count),
			zap.Int("retryAfter", retryAfter))
		return Result{
			Allowed:       false,
			RemainingTime: int(l.window.Seconds()),
			RetryAfter:    retryAfter,
		}
	}

	return Result{Allowed: true}
}
