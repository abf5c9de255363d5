// appearance_service.go
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

// ErrAppearanceNotFound is returned when the user has never saved an appearance
var ErrAppearanceNotFound = errors.New("appearance not found")

// GetAppearance returns the user's appearance with its audio tracks in order
func GetAppearance(ctx context.Context, db *gorm.DB, userID string) (*models.Appearance, error) {
	var appearance models.Appearance
	err := db.WithContext(ctx).
		Clauses(hints.CommentBefore("select", "appearance:get")).
		Preload("AudioTracks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("track_order ASC")
		}).
		Where("user_id = ?", userID).
		First(&appearance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppearanceNotFound
		}
		return nil, fmt.Errorf("failed to load appearance: %w", err)
	}

	if appearance.AudioTracks == nil {
		appearance.AudioTracks = []models.AudioTrack{}
	}

	return &appearance, nil
}

// UpdateAppearance creates or updates the user's appearance from validated, sanitized input.
// The parent row and the track replacement share one transaction.
// The returned tracks are the ones just written, not re-read.
func UpdateAppearance(ctx context.Context, db *gorm.DB, userID string, in *AppearanceInput) (*models.Appearance, error) {
	var result models.Appearance

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var appearance models.Appearance
		err := lockingQuery(tx).
			Clauses(hints.CommentBefore("select", "appearance:update")).
			Where("user_id = ?", userID).
			First(&appearance).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			appearance = DefaultAppearance()
			appearance.UserID = userID
			in.apply(&appearance)
			if err := tx.Omit(clause.Associations).Create(&appearance).Error; err != nil {
				return fmt.Errorf("failed to create appearance: %w", err)
			}

		case err != nil:
			return fmt.Errorf("failed to load appearance: %w", err)

		default:
			in.apply(&appearance)
			if err := tx.Omit(clause.Associations).Save(&appearance).Error; err != nil {
				return fmt.Errorf("failed to update appearance: %w", err)
			}
		}

		if in.AudioTracks != nil {
			tracks, err := replaceAudioTracks(tx, appearance.ID, *in.AudioTracks)
			if err != nil {
				return err
			}
			appearance.AudioTracks = tracks
		} else {
			if err := tx.Where("appearance_id = ?", appearance.ID).
				Order("track_order ASC").
				Find(&appearance.AudioTracks).Error; err != nil {
				return fmt.Errorf("failed to load audio tracks: %w", err)
			}
		}

		result = appearance
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AudioTracks == nil {
		result.AudioTracks = []models.AudioTrack{}
	}

	return &result, nil
}

// replaceAudioTracks deletes every track of the appearance and inserts the first
// MaxAudioTracks submitted ones with dense zero-based order.
// A submitted id matching a deleted track keeps that row id and, when no icon
// was submitted, that track's icon.
func replaceAudioTracks(tx *gorm.DB, appearanceID string, submitted []AudioTrackInput) ([]models.AudioTrack, error) {
	var previous []models.AudioTrack
	if err := tx.Where("appearance_id = ?", appearanceID).Find(&previous).Error; err != nil {
		return nil, fmt.Errorf("failed to load audio tracks: %w", err)
	}

	priorIcons := make(map[string]*string, len(previous))
	for _, track := range previous {
		priorIcons[track.ID] = track.Icon
	}

	if err := tx.Where("appearance_id = ?", appearanceID).Delete(&models.AudioTrack{}).Error; err != nil {
		return nil, fmt.Errorf("failed to delete audio tracks: %w", err)
	}

	tracks := make([]models.AudioTrack, 0, min(len(submitted), MaxAudioTracks))
	reused := make(map[string]struct{})
	for i, in := range submitted {
		if i == MaxAudioTracks {
			break
		}

		track := models.AudioTrack{
			AppearanceID: appearanceID,
			URL:          in.URL,
			Title:        nonEmpty(in.Title),
			Icon:         nonEmpty(in.Icon),
			Order:        i,
		}

		if in.ID != nil {
			if icon, ok := priorIcons[*in.ID]; ok {
				if _, taken := reused[*in.ID]; !taken {
					track.ID = *in.ID
					reused[*in.ID] = struct{}{}
				}
				if track.Icon == nil {
					track.Icon = icon
				}
			}
		}

		tracks = append(tracks, track)
	}

	if len(tracks) > 0 {
		if err := tx.Create(&tracks).Error; err != nil {
			return nil, fmt.Errorf("failed to insert audio tracks: %w", err)
		}
	}

	return tracks, nil
}

// lockingQuery adds a row lock on dialects that support SELECT ... FOR UPDATE
func lockingQuery(tx *gorm.DB) *gorm.DB {
	switch tx.Dialector.Name() {
	case "mysql", "postgres":
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
