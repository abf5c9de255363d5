// memory_store.go
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
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type window struct {
	hits      int64
	expiresAt time.Time
}

// MemoryStore keeps counters in process. Counters are not shared between replicas.
type MemoryStore struct {
	counters cmap.ConcurrentMap[string, window]
	now      func() time.Time
	janitor  *janitor
}

// NewMemoryStore creates a store that sweeps expired counters every cleanupInterval
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return newMemoryStore(cleanupInterval, time.Now)
}

func newMemoryStore(cleanupInterval time.Duration, now func() time.Time) *MemoryStore {
	s := &MemoryStore{
		counters: cmap.New[window](),
		now:      now,
	}
	s.janitor = startJanitor(cleanupInterval, s.sweep)
	return s
}

// Increment implements Store
func (s *MemoryStore) Increment(ctx context.Context, key string, length time.Duration) (int64, time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	now := s.now()
	w := s.counters.Upsert(key, window{}, func(exist bool, current window, _ window) window {
		if !exist || !now.Before(current.expiresAt) {
			return window{hits: 1, expiresAt: now.Add(length)}
		}
		current.hits++
		return current
	})

	return w.hits, w.expiresAt.Sub(now), nil
}

// Len returns the number of live and not yet swept counters
func (s *MemoryStore) Len() int {
	return s.counters.Count()
}

func (s *MemoryStore) sweep() {
	now := s.now()
	for _, key := range s.counters.Keys() {
		s.counters.RemoveCb(key, func(_ string, w window, exists bool) bool {
			return exists && !now.Before(w.expiresAt)
		})
	}
}

// Close stops the janitor
func (s *MemoryStore) Close() error {
	s.janitor.Stop()
	return nil
}
