// store.go
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
	"sync"
	"time"
)

// Store is a shared fixed window counter
type Store interface {
	// Increment adds one hit to key and returns the hit count of the current
	// window and the time left in it. A new window opens when none is active.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Close() error
}

// janitor runs sweep on an interval until stopped
type janitor struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func startJanitor(interval time.Duration, sweep func()) *janitor {
	j := &janitor{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(j.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweep()
			case <-j.stop:
				return
			}
		}
	}()

	return j
}

// Stop halts the janitor and waits for it to exit. It is safe to call more than once.
func (j *janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stop)
	})
	<-j.done
}
