// limiter_test.go
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
	"errors"
	"testing"
	"time"

	"github.com/localnerve/appearancedb/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("counter store unavailable")
}

func (failingStore) Close() error { return nil }

func newTestLimiter(t *testing.T, clock *fakeClock) *Limiter {
	t.Helper()
	store := newMemoryStore(time.Hour, clock.now)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, 30, 300*time.Second, zap.NewNop())
}

func TestLimiterBlocksThirtyFirstRequest(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newTestLimiter(t, clock)
	ctx := context.Background()

	for i := 1; i <= 30; i++ {
		res := limiter.Allow(ctx, "user-1")
		require.True(t, res.Allowed, "request %d", i)
		require.NoError(t, res.Err)
	}

	before := testutil.ToFloat64(metrics.RateLimitBlocked)
	res := limiter.Allow(ctx, "user-1")
	assert.False(t, res.Allowed)
	assert.Equal(t, 300, res.RemainingTime)
	assert.Equal(t, 300, res.RetryAfter)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RateLimitBlocked))
}

func TestLimiterRemainingTimeIsWindowLength(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newTestLimiter(t, clock)
	ctx := context.Background()

	// 30 hits spread over the window
	for i := 0; i < 30; i++ {
		require.True(t, limiter.Allow(ctx, "user-1").Allowed, "request %d", i+1)
		clock.advance(5 * time.Second)
	}

	res := limiter.Allow(ctx, "user-1")
	assert.False(t, res.Allowed)
	assert.Equal(t, 300, res.RemainingTime)
	assert.Equal(t, 150, res.RetryAfter)
}

func TestLimiterRetryAfterCountsDown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newTestLimiter(t, clock)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		limiter.Allow(ctx, "user-1")
	}

	clock.advance(100*time.Second + 500*time.Millisecond)
	res := limiter.Allow(ctx, "user-1")
	assert.False(t, res.Allowed)
	assert.Equal(t, 300, res.RemainingTime)
	assert.Equal(t, 200, res.RetryAfter)
}

func TestLimiterWindowResets(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newTestLimiter(t, clock)
	ctx := context.Background()

	for i := 0; i < 35; i++ {
		limiter.Allow(ctx, "user-1")
	}
	assert.False(t, limiter.Allow(ctx, "user-1").Allowed)

	clock.advance(300 * time.Second)
	assert.True(t, limiter.Allow(ctx, "user-1").Allowed)
}

func TestLimiterKeysByUser(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newTestLimiter(t, clock)
	ctx := context.Background()

	for i := 0; i < 31; i++ {
		limiter.Allow(ctx, "user-1")
	}
	assert.False(t, limiter.Allow(ctx, "user-1").Allowed)
	assert.True(t, limiter.Allow(ctx, "user-2").Allowed)
}

func TestLimiterFailsOpen(t *testing.T) {
	limiter := New(failingStore{}, 30, 300*time.Second, zap.NewNop())

	before := testutil.ToFloat64(metrics.RateLimitFailOpen)
	res := limiter.Allow(context.Background(), "user-1")
	assert.True(t, res.Allowed)
	assert.EqualError(t, res.Err, "counter store unavailable")
	assert.Equal(t, 0, res.RemainingTime)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RateLimitFailOpen))
}
