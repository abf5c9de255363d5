// appearance_input.go
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
	"github.com/localnerve/appearancedb/internal/models"
	"github.com/localnerve/appearancedb/internal/types"
)

// AudioTrackInput is one submitted audio track.
// ID is the client supplied identifier used to carry an icon forward.
type AudioTrackInput struct {
	ID    *string `json:"id,omitempty"`
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// AppearanceInput is the flat update payload accepted by PUT /api/appearance.
// Nil fields were not supplied and leave the stored value alone.
type AppearanceInput struct {
	DisplayName   types.Nullable[string] `json:"displayName" swaggertype:"string"`
	Bio           types.Nullable[string] `json:"bio" swaggertype:"string"`
	Avatar        types.Nullable[string] `json:"avatar" swaggertype:"string"`
	Banner        types.Nullable[string] `json:"banner" swaggertype:"string"`
	BackgroundURL types.Nullable[string] `json:"backgroundUrl" swaggertype:"string"`
	LayoutStyle   *string                `json:"layoutStyle,omitempty"`

	ContainerBackgroundColor *string        `json:"containerBackgroundColor,omitempty"`
	ContainerBackdropBlur    *types.FlexInt `json:"containerBackdropBlur,omitempty" swaggertype:"integer"`
	ContainerBorderColor     *string        `json:"containerBorderColor,omitempty"`
	ContainerBorderWidth     *types.FlexInt `json:"containerBorderWidth,omitempty" swaggertype:"integer"`
	ContainerBorderRadius    *types.FlexInt `json:"containerBorderRadius,omitempty" swaggertype:"integer"`
	ContainerGlowColor       *string        `json:"containerGlowColor,omitempty"`
	ContainerGlowIntensity   *float64       `json:"containerGlowIntensity,omitempty"`
	GlassEffect              *bool          `json:"glassEffect,omitempty"`

	BackgroundColor    *string `json:"backgroundColor,omitempty"`
	AccentColor        *string `json:"accentColor,omitempty"`
	TextColor          *string `json:"textColor,omitempty"`
	PrimaryTextColor   *string `json:"primaryTextColor,omitempty"`
	SecondaryTextColor *string `json:"secondaryTextColor,omitempty"`
	TertiaryTextColor  *string `json:"tertiaryTextColor,omitempty"`

	AvatarSize          *types.FlexInt `json:"avatarSize,omitempty" swaggertype:"integer"`
	AvatarBorderWidth   *types.FlexInt `json:"avatarBorderWidth,omitempty" swaggertype:"integer"`
	AvatarBorderColor   *string        `json:"avatarBorderColor,omitempty"`
	AvatarBorderRadius  *types.FlexInt `json:"avatarBorderRadius,omitempty" swaggertype:"integer"`
	AvatarGlowColor     *string        `json:"avatarGlowColor,omitempty"`
	AvatarGlowIntensity *float64       `json:"avatarGlowIntensity,omitempty"`
	AvatarShowBorder    *bool          `json:"avatarShowBorder,omitempty"`

	TitleFont         *string        `json:"titleFont,omitempty"`
	TitleSize         *types.FlexInt `json:"titleSize,omitempty" swaggertype:"integer"`
	TitleWeight       *types.FlexInt `json:"titleWeight,omitempty" swaggertype:"integer"`
	BodyFont          *string        `json:"bodyFont,omitempty"`
	BodySize          *types.FlexInt `json:"bodySize,omitempty" swaggertype:"integer"`
	BodyWeight        *types.FlexInt `json:"bodyWeight,omitempty" swaggertype:"integer"`
	TypewriterEnabled *bool          `json:"typewriterEnabled,omitempty"`
	TypewriterSpeed   *types.FlexInt `json:"typewriterSpeed,omitempty" swaggertype:"integer"`

	LinksBackgroundColor *string        `json:"linksBackgroundColor,omitempty"`
	LinksHoverColor      *string        `json:"linksHoverColor,omitempty"`
	LinksIconColor       *string        `json:"linksIconColor,omitempty"`
	LinksTextColor       *string        `json:"linksTextColor,omitempty"`
	LinksGap             *types.FlexInt `json:"linksGap,omitempty" swaggertype:"integer"`
	LinksCompactMode     *bool          `json:"linksCompactMode,omitempty"`

	DiscordPresenceBgColor        *string                `json:"discordPresenceBgColor,omitempty"`
	DiscordPresenceBorderColor    *string                `json:"discordPresenceBorderColor,omitempty"`
	DiscordPresenceAvatarSize     *types.FlexInt         `json:"discordPresenceAvatarSize,omitempty" swaggertype:"integer"`
	DiscordPresenceTextColor      *string                `json:"discordPresenceTextColor,omitempty"`
	DiscordStatusIndicatorEnabled *bool                  `json:"discordStatusIndicatorEnabled,omitempty"`
	DiscordServerInvite           types.Nullable[string] `json:"discordServerInvite" swaggertype:"string"`

	AudioPlayerEnabled *bool     `json:"audioPlayerEnabled,omitempty"`
	Effects            *[]string `json:"effects,omitempty"`

	// AudioTracks nil means the track list was not submitted and stored tracks are kept
	AudioTracks *[]AudioTrackInput `json:"audioTracks,omitempty"`
}

// NestedProfileInput is the profile section of the POST payload
type NestedProfileInput struct {
	DisplayName   types.Nullable[string] `json:"displayName" swaggertype:"string"`
	Bio           types.Nullable[string] `json:"bio" swaggertype:"string"`
	Avatar        types.Nullable[string] `json:"avatar" swaggertype:"string"`
	Banner        types.Nullable[string] `json:"banner" swaggertype:"string"`
	BackgroundURL types.Nullable[string] `json:"backgroundUrl" swaggertype:"string"`
	LayoutStyle   *string                `json:"layoutStyle,omitempty"`
}

// NestedContainerInput is the container section of the POST payload
type NestedContainerInput struct {
	BackgroundColor *string        `json:"backgroundColor,omitempty"`
	BackdropBlur    *types.FlexInt `json:"backdropBlur,omitempty" swaggertype:"integer"`
	BorderColor     *string        `json:"borderColor,omitempty"`
	BorderWidth     *types.FlexInt `json:"borderWidth,omitempty" swaggertype:"integer"`
	BorderRadius    *types.FlexInt `json:"borderRadius,omitempty" swaggertype:"integer"`
	GlowColor       *string        `json:"glowColor,omitempty"`
	GlowIntensity   *float64       `json:"glowIntensity,omitempty"`
	GlassEffect     *bool          `json:"glassEffect,omitempty"`
}

// NestedColorsInput is the colors section of the POST payload
type NestedColorsInput struct {
	Background *string `json:"background,omitempty"`
	Accent     *string `json:"accent,omitempty"`
	Text       *string `json:"text,omitempty"`
	Primary    *string `json:"primary,omitempty"`
	Secondary  *string `json:"secondary,omitempty"`
	Tertiary   *string `json:"tertiary,omitempty"`
}

// NestedAudioInput is the audio section of the POST payload.
// Tracks accepts a single object as well as an array.
type NestedAudioInput struct {
	PlayerEnabled *bool                            `json:"playerEnabled,omitempty"`
	Tracks        *types.FlexList[AudioTrackInput] `json:"tracks,omitempty" swaggertype:"array,object"`
}

// NestedTextInput is the text section of the POST payload
type NestedTextInput struct {
	TitleFont         *string        `json:"titleFont,omitempty"`
	TitleSize         *types.FlexInt `json:"titleSize,omitempty" swaggertype:"integer"`
	TitleWeight       *types.FlexInt `json:"titleWeight,omitempty" swaggertype:"integer"`
	BodyFont          *string        `json:"bodyFont,omitempty"`
	BodySize          *types.FlexInt `json:"bodySize,omitempty" swaggertype:"integer"`
	BodyWeight        *types.FlexInt `json:"bodyWeight,omitempty" swaggertype:"integer"`
	TypewriterEnabled *bool          `json:"typewriterEnabled,omitempty"`
	TypewriterSpeed   *types.FlexInt `json:"typewriterSpeed,omitempty" swaggertype:"integer"`
}

// NestedDiscordInput is the discord section of the POST payload
type NestedDiscordInput struct {
	PresenceBgColor        *string                `json:"presenceBgColor,omitempty"`
	PresenceBorderColor    *string                `json:"presenceBorderColor,omitempty"`
	PresenceAvatarSize     *types.FlexInt         `json:"presenceAvatarSize,omitempty" swaggertype:"integer"`
	PresenceTextColor      *string                `json:"presenceTextColor,omitempty"`
	StatusIndicatorEnabled *bool                  `json:"statusIndicatorEnabled,omitempty"`
	ServerInvite           types.Nullable[string] `json:"serverInvite" swaggertype:"string"`
}

// NestedAppearanceInput is the sectioned payload accepted by POST /api/appearance
type NestedAppearanceInput struct {
	Profile   *NestedProfileInput   `json:"profile,omitempty"`
	Container *NestedContainerInput `json:"container,omitempty"`
	Colors    *NestedColorsInput    `json:"colors,omitempty"`
	Audio     *NestedAudioInput     `json:"audio,omitempty"`
	Text      *NestedTextInput      `json:"text,omitempty"`
	Discord   *NestedDiscordInput   `json:"discord,omitempty"`
}

// Flatten maps the sectioned payload onto the flat input so both shapes share one pipeline
func (n *NestedAppearanceInput) Flatten() *AppearanceInput {
	in := &AppearanceInput{}

	if p := n.Profile; p != nil {
		in.DisplayName = p.DisplayName
		in.Bio = p.Bio
		in.Avatar = p.Avatar
		in.Banner = p.Banner
		in.BackgroundURL = p.BackgroundURL
		in.LayoutStyle = p.LayoutStyle
	}

	if c := n.Container; c != nil {
		in.ContainerBackgroundColor = c.BackgroundColor
		in.ContainerBackdropBlur = c.BackdropBlur
		in.ContainerBorderColor = c.BorderColor
		in.ContainerBorderWidth = c.BorderWidth
		in.ContainerBorderRadius = c.BorderRadius
		in.ContainerGlowColor = c.GlowColor
		in.ContainerGlowIntensity = c.GlowIntensity
		in.GlassEffect = c.GlassEffect
	}

	if c := n.Colors; c != nil {
		in.BackgroundColor = c.Background
		in.AccentColor = c.Accent
		in.TextColor = c.Text
		in.PrimaryTextColor = c.Primary
		in.SecondaryTextColor = c.Secondary
		in.TertiaryTextColor = c.Tertiary
	}

	if a := n.Audio; a != nil {
		in.AudioPlayerEnabled = a.PlayerEnabled
		if a.Tracks != nil {
			tracks := a.Tracks.Slice()
			if tracks == nil {
				tracks = []AudioTrackInput{}
			}
			in.AudioTracks = &tracks
		}
	}

	if t := n.Text; t != nil {
		in.TitleFont = t.TitleFont
		in.TitleSize = t.TitleSize
		in.TitleWeight = t.TitleWeight
		in.BodyFont = t.BodyFont
		in.BodySize = t.BodySize
		in.BodyWeight = t.BodyWeight
		in.TypewriterEnabled = t.TypewriterEnabled
		in.TypewriterSpeed = t.TypewriterSpeed
	}

	if d := n.Discord; d != nil {
		in.DiscordPresenceBgColor = d.PresenceBgColor
		in.DiscordPresenceBorderColor = d.PresenceBorderColor
		in.DiscordPresenceAvatarSize = d.PresenceAvatarSize
		in.DiscordPresenceTextColor = d.PresenceTextColor
		in.DiscordStatusIndicatorEnabled = d.StatusIndicatorEnabled
		in.DiscordServerInvite = d.ServerInvite
	}

	return in
}

// apply overlays the supplied fields onto a.
// Empty strings in nullable reference fields are stored as null.
func (in *AppearanceInput) apply(a *models.Appearance) {
	assignNullable(&a.DisplayName, in.DisplayName)
	assignNullable(&a.Bio, in.Bio)
	assignNullable(&a.Avatar, in.Avatar)
	assignNullable(&a.Banner, in.Banner)
	assignNullable(&a.BackgroundURL, in.BackgroundURL)
	assign(&a.LayoutStyle, in.LayoutStyle)

	assign(&a.ContainerBackgroundColor, in.ContainerBackgroundColor)
	assignInt(&a.ContainerBackdropBlur, in.ContainerBackdropBlur)
	assign(&a.ContainerBorderColor, in.ContainerBorderColor)
	assignInt(&a.ContainerBorderWidth, in.ContainerBorderWidth)
	assignInt(&a.ContainerBorderRadius, in.ContainerBorderRadius)
	assign(&a.ContainerGlowColor, in.ContainerGlowColor)
	assign(&a.ContainerGlowIntensity, in.ContainerGlowIntensity)
	assign(&a.GlassEffect, in.GlassEffect)

	assign(&a.BackgroundColor, in.BackgroundColor)
	assign(&a.AccentColor, in.AccentColor)
	assign(&a.TextColor, in.TextColor)
	assign(&a.PrimaryTextColor, in.PrimaryTextColor)
	assign(&a.SecondaryTextColor, in.SecondaryTextColor)
	assign(&a.TertiaryTextColor, in.TertiaryTextColor)

	assignInt(&a.AvatarSize, in.AvatarSize)
	assignInt(&a.AvatarBorderWidth, in.AvatarBorderWidth)
	assign(&a.AvatarBorderColor, in.AvatarBorderColor)
	assignInt(&a.AvatarBorderRadius, in.AvatarBorderRadius)
	assign(&a.AvatarGlowColor, in.AvatarGlowColor)
	assign(&a.AvatarGlowIntensity, in.AvatarGlowIntensity)
	assign(&a.AvatarShowBorder, in.AvatarShowBorder)

	assign(&a.TitleFont, in.TitleFont)
	assignInt(&a.TitleSize, in.TitleSize)
	assignInt(&a.TitleWeight, in.TitleWeight)
	assign(&a.BodyFont, in.BodyFont)
	assignInt(&a.BodySize, in.BodySize)
	assignInt(&a.BodyWeight, in.BodyWeight)
	assign(&a.TypewriterEnabled, in.TypewriterEnabled)
	assignInt(&a.TypewriterSpeed, in.TypewriterSpeed)

	assign(&a.LinksBackgroundColor, in.LinksBackgroundColor)
	assign(&a.LinksHoverColor, in.LinksHoverColor)
	assign(&a.LinksIconColor, in.LinksIconColor)
	assign(&a.LinksTextColor, in.LinksTextColor)
	assignInt(&a.LinksGap, in.LinksGap)
	assign(&a.LinksCompactMode, in.LinksCompactMode)

	assign(&a.DiscordPresenceBgColor, in.DiscordPresenceBgColor)
	assign(&a.DiscordPresenceBorderColor, in.DiscordPresenceBorderColor)
	assignInt(&a.DiscordPresenceAvatarSize, in.DiscordPresenceAvatarSize)
	assign(&a.DiscordPresenceTextColor, in.DiscordPresenceTextColor)
	assign(&a.DiscordStatusIndicatorEnabled, in.DiscordStatusIndicatorEnabled)
	assignNullable(&a.DiscordServerInvite, in.DiscordServerInvite)

	assign(&a.AudioPlayerEnabled, in.AudioPlayerEnabled)
	if in.Effects != nil {
		a.Effects = models.StringList(append([]string{}, (*in.Effects)...))
	}
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func assignInt(dst *int, src *types.FlexInt) {
	if src != nil {
		*dst = src.Int()
	}
}

func assignNullable(dst **string, src types.Nullable[string]) {
	if src.Set {
		*dst = nonEmpty(src.Ptr())
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
