// appearance_defaults.go
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

import "github.com/localnerve/appearancedb/internal/models"

// DefaultAppearance returns the styling applied to a newly created appearance
// before the submitted fields are overlaid. Every default lives here.
func DefaultAppearance() models.Appearance {
	return models.Appearance{
		LayoutStyle: "modern",

		ContainerBackgroundColor: "#141010",
		ContainerBackdropBlur:    8,
		ContainerBorderColor:     "#1a1a1a",
		ContainerBorderWidth:     1,
		ContainerBorderRadius:    12,
		ContainerGlowColor:       "#ff3379",
		ContainerGlowIntensity:   0.3,
		GlassEffect:              true,

		BackgroundColor:    "#0f0f0f",
		AccentColor:        "#ff3379",
		TextColor:          "#ffffff",
		PrimaryTextColor:   "#ffffff",
		SecondaryTextColor: "#a1a1aa",
		TertiaryTextColor:  "#71717a",

		AvatarSize:          96,
		AvatarBorderWidth:   2,
		AvatarBorderColor:   "#ff3379",
		AvatarBorderRadius:  50,
		AvatarGlowColor:     "#ff3379",
		AvatarGlowIntensity: 0.3,
		AvatarShowBorder:    true,

		TitleFont:         "Inter",
		TitleSize:         24,
		TitleWeight:       700,
		BodyFont:          "Inter",
		BodySize:          14,
		BodyWeight:        400,
		TypewriterEnabled: false,
		TypewriterSpeed:   50,

		LinksBackgroundColor: "#1a1a1a",
		LinksHoverColor:      "#2a2a2a",
		LinksIconColor:       "#ffffff",
		LinksTextColor:       "#ffffff",
		LinksGap:             8,
		LinksCompactMode:     false,

		DiscordPresenceBgColor:        "#1a1a1a",
		DiscordPresenceBorderColor:    "#2a2a2a",
		DiscordPresenceAvatarSize:     32,
		DiscordPresenceTextColor:      "#ffffff",
		DiscordStatusIndicatorEnabled: true,

		AudioPlayerEnabled: true,
		Effects:            models.StringList{},
	}
}
