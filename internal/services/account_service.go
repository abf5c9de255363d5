// account_service.go
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

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/appearancedb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// AccountStatus holds the moderation flags the gate consults
type AccountStatus struct {
	Suspended  bool
	Restricted bool
	Reason     string
}

// GetAccountStatus returns the account flags for a user.
// A user without an accounts row is active.
func GetAccountStatus(ctx context.Context, db *gorm.DB, userID string) (AccountStatus, error) {
	var account models.Account
	err := db.WithContext(ctx).
		Clauses(hints.CommentBefore("select", "account:status")).
		Where("user_id = ?", userID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountStatus{}, nil
		}
		return AccountStatus{}, fmt.Errorf("failed to load account status: %w", err)
	}

	return AccountStatus{
		Suspended:  account.Suspended,
		Restricted: account.Restricted,
		Reason:     account.Reason,
	}, nil
}

// SetAccountFlags creates or replaces the moderation flags for a user
func SetAccountFlags(ctx context.Context, db *gorm.DB, userID string, status AccountStatus) error {
	account := models.Account{
		UserID:     userID,
		Suspended:  status.Suspended,
		Restricted: status.Restricted,
		Reason:     status.Reason,
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"suspended", "restricted", "reason", "updated_at"}),
	}).Create(&account).Error
	if err != nil {
		return fmt.Errorf("failed to set account flags: %w", err)
	}

	return nil
}
