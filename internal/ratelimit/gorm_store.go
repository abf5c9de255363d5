// gorm_store.go
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
	"fmt"
	"time"

	"github.com/localnerve/appearancedb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// GormStore keeps counters in the rate_limit_counters table so every replica shares them
type GormStore struct {
	db      *gorm.DB
	now     func() time.Time
	janitor *janitor
}

// NewGormStore creates a database backed store that purges expired rows every cleanupInterval
func NewGormStore(db *gorm.DB, cleanupInterval time.Duration) *GormStore {
	return newGormStore(db, cleanupInterval, time.Now)
}

func newGormStore(db *gorm.DB, cleanupInterval time.Duration, now func() time.Time) *GormStore {
	s := &GormStore{db: db, now: now}
	s.janitor = startJanitor(cleanupInterval, func() {
		_, _ = s.Purge(context.Background())
	})
	return s
}

// Increment implements Store
func (s *GormStore) Increment(ctx context.Context, key string, length time.Duration) (int64, time.Duration, error) {
	now := s.now().UTC()
	var counter models.RateLimitCounter

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		switch tx.Dialector.Name() {
		case "mysql", "postgres":
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := q.Clauses(hints.CommentBefore("select", "ratelimit:increment")).
			Where("counter_key = ?", key).
			First(&counter).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !now.Before(counter.ExpiresAt)):
			counter = models.RateLimitCounter{
				CounterKey: key,
				Hits:       1,
				ExpiresAt:  now.Add(length),
			}
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "counter_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"hits", "expires_at"}),
			}).Create(&counter).Error

		case err != nil:
			return err
		}

		counter.Hits++
		return tx.Model(&models.RateLimitCounter{}).
			Where("counter_key = ?", key).
			Update("hits", gorm.Expr("hits + ?", 1)).Error
	})
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit counter %s: %w", key, err)
	}

	return counter.Hits, counter.ExpiresAt.Sub(now), nil
}

// Purge deletes expired counters and returns how many were removed
func (s *GormStore) Purge(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now().UTC()).
		Delete(&models.RateLimitCounter{})
	return res.RowsAffected, res.Error
}

// Close stops the purge janitor. The database handle is owned by the caller.
func (s *GormStore) Close() error {
	s.janitor.Stop()
	return nil
}
