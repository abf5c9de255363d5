// appearance.go
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

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appearance is the per-user profile styling record
type Appearance struct {
	ID     string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_appearances_user" json:"userId"`

	// Profile. Style columns are unbounded; bio is capped at 400 characters by validation.
	DisplayName   *string `json:"displayName"`
	Bio           *string `gorm:"size:400" json:"bio"`
	Avatar        *string `json:"avatar"`
	Banner        *string `json:"banner"`
	BackgroundURL *string `gorm:"column:background_url" json:"backgroundUrl"`
	LayoutStyle   string  `gorm:"not null" json:"layoutStyle"`

	// Container
	ContainerBackgroundColor string  `json:"containerBackgroundColor"`
	ContainerBackdropBlur    int     `json:"containerBackdropBlur"`
	ContainerBorderColor     string  `json:"containerBorderColor"`
	ContainerBorderWidth     int     `json:"containerBorderWidth"`
	ContainerBorderRadius    int     `json:"containerBorderRadius"`
	ContainerGlowColor       string  `json:"containerGlowColor"`
	ContainerGlowIntensity   float64 `json:"containerGlowIntensity"`
	GlassEffect              bool    `json:"glassEffect"`

	// Colors
	BackgroundColor    string `json:"backgroundColor"`
	AccentColor        string `json:"accentColor"`
	TextColor          string `json:"textColor"`
	PrimaryTextColor   string `json:"primaryTextColor"`
	SecondaryTextColor string `json:"secondaryTextColor"`
	TertiaryTextColor  string `json:"tertiaryTextColor"`

	// Avatar decoration
	AvatarSize          int     `json:"avatarSize"`
	AvatarBorderWidth   int     `json:"avatarBorderWidth"`
	AvatarBorderColor   string  `json:"avatarBorderColor"`
	AvatarBorderRadius  int     `json:"avatarBorderRadius"`
	AvatarGlowColor     string  `json:"avatarGlowColor"`
	AvatarGlowIntensity float64 `json:"avatarGlowIntensity"`
	AvatarShowBorder    bool    `json:"avatarShowBorder"`

	// Text
	TitleFont         string `json:"titleFont"`
	TitleSize         int    `json:"titleSize"`
	TitleWeight       int    `json:"titleWeight"`
	BodyFont          string `json:"bodyFont"`
	BodySize          int    `json:"bodySize"`
	BodyWeight        int    `json:"bodyWeight"`
	TypewriterEnabled bool   `json:"typewriterEnabled"`
	TypewriterSpeed   int    `json:"typewriterSpeed"`

	// Links
	LinksBackgroundColor string `json:"linksBackgroundColor"`
	LinksHoverColor      string `json:"linksHoverColor"`
	LinksIconColor       string `json:"linksIconColor"`
	LinksTextColor       string `json:"linksTextColor"`
	LinksGap             int    `json:"linksGap"`
	LinksCompactMode     bool   `json:"linksCompactMode"`

	// Discord
	DiscordPresenceBgColor        string  `json:"discordPresenceBgColor"`
	DiscordPresenceBorderColor    string  `json:"discordPresenceBorderColor"`
	DiscordPresenceAvatarSize     int     `json:"discordPresenceAvatarSize"`
	DiscordPresenceTextColor      string  `json:"discordPresenceTextColor"`
	DiscordStatusIndicatorEnabled bool    `json:"discordStatusIndicatorEnabled"`
	DiscordServerInvite           *string `json:"discordServerInvite"`

	// Audio and effects
	AudioPlayerEnabled bool       `json:"audioPlayerEnabled"`
	Effects            StringList `json:"effects"`

	AudioTracks []AudioTrack `gorm:"foreignKey:AppearanceID;constraint:OnDelete:CASCADE" json:"audioTracks"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// AudioTrack is one entry of the profile audio player, ordered by Order
type AudioTrack struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	AppearanceID string    `gorm:"type:char(36);not null;index" json:"-"`
	URL          string    `gorm:"not null" json:"url"`
	Title        *string   `json:"title"`
	Icon         *string   `json:"icon"`
	Order        int       `gorm:"column:track_order;not null" json:"order"`
	CreatedAt    time.Time `json:"-"`
}

// BeforeCreate assigns a uuid when the caller did not supply one
func (a *Appearance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a uuid when the caller did not supply one
func (t *AudioTrack) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Appearance
func (Appearance) TableName() string {
	return "appearances"
}

// TableName overrides the table name for AudioTrack
func (AudioTrack) TableName() string {
	return "audio_tracks"
}
