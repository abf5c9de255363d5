// appearance_validate.go
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
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/localnerve/appearancedb/internal/types"
)

// Appearance limits
const (
	MaxBioLength        = 400
	MaxAudioTracks      = 3
	MaxEffects          = 5
	MaxEffectNameLength = 32
)

var discordInvitePattern = regexp.MustCompile(`^(https?://)?(www\.)?(discord\.gg|discord(app)?\.com/invite)/[a-zA-Z0-9-]+$`)

// ValidateAppearance checks every supplied field and returns all violations found.
// An empty result means the input may be persisted.
func ValidateAppearance(in *AppearanceInput, assetHost string) []types.FieldError {
	var errs []types.FieldError

	if bio := in.Bio.Ptr(); bio != nil && *bio != "" {
		if n := utf8.RuneCountInString(*bio); n > MaxBioLength {
			errs = append(errs, types.FieldError{
				Code:    types.CodeBioTooLong,
				Message: fmt.Sprintf("Bio must be %d characters or less", MaxBioLength),
				Field:   "bio",
				Value:   n,
			})
		}
	}

	assetFields := []struct {
		code  string
		field string
		value *string
	}{
		{types.CodeInvalidAvatar, "avatar", in.Avatar.Ptr()},
		{types.CodeInvalidBanner, "banner", in.Banner.Ptr()},
		{types.CodeInvalidBackground, "backgroundUrl", in.BackgroundURL.Ptr()},
	}
	for _, f := range assetFields {
		if f.value != nil && *f.value != "" && !isAssetURL(*f.value, assetHost) {
			errs = append(errs, types.FieldError{
				Code:    f.code,
				Message: fmt.Sprintf("%s must be hosted on %s", f.field, assetHost),
				Field:   f.field,
				Value:   *f.value,
			})
		}
	}

	if in.AudioTracks != nil {
		errs = append(errs, validateAudioTracks(*in.AudioTracks, assetHost)...)
	}

	if invite := in.DiscordServerInvite.Ptr(); invite != nil && *invite != "" {
		if !discordInvitePattern.MatchString(*invite) {
			errs = append(errs, types.FieldError{
				Code:    types.CodeInvalidDiscordInvite,
				Message: "Invalid Discord server invite",
				Field:   "discordServerInvite",
				Value:   *invite,
			})
		}
	}

	if in.Effects != nil {
		errs = append(errs, validateEffects(*in.Effects)...)
	}

	return errs
}

func validateAudioTracks(tracks []AudioTrackInput, assetHost string) []types.FieldError {
	var errs []types.FieldError

	if len(tracks) > MaxAudioTracks {
		errs = append(errs, types.FieldError{
			Code:    types.CodeTooManyTracks,
			Message: fmt.Sprintf("Maximum of %d audio tracks allowed", MaxAudioTracks),
			Field:   "audioTracks",
			Value:   len(tracks),
		})
	}

	for i, track := range tracks {
		if track.URL == "" || !isAssetURL(track.URL, assetHost) {
			errs = append(errs, types.FieldError{
				Code:    types.CodeInvalidTrackURL,
				Message: fmt.Sprintf("Audio track URL must be hosted on %s", assetHost),
				Field:   fmt.Sprintf("audioTracks[%d].url", i),
				Value:   track.URL,
			})
		}
		if track.Icon != nil && *track.Icon != "" && !isAssetURL(*track.Icon, assetHost) {
			errs = append(errs, types.FieldError{
				Code:    types.CodeInvalidTrackIcon,
				Message: fmt.Sprintf("Audio track icon must be hosted on %s", assetHost),
				Field:   fmt.Sprintf("audioTracks[%d].icon", i),
				Value:   *track.Icon,
			})
		}
	}

	return errs
}

func validateEffects(effects []string) []types.FieldError {
	if len(effects) > MaxEffects {
		return []types.FieldError{{
			Code:    types.CodeInvalidEffects,
			Message: fmt.Sprintf("Maximum of %d effects allowed", MaxEffects),
			Field:   "effects",
			Value:   len(effects),
		}}
	}

	var errs []types.FieldError
	for i, effect := range effects {
		if effect == "" || utf8.RuneCountInString(effect) > MaxEffectNameLength {
			errs = append(errs, types.FieldError{
				Code:    types.CodeInvalidEffects,
				Message: fmt.Sprintf("Effect names must be 1 to %d characters", MaxEffectNameLength),
				Field:   fmt.Sprintf("effects[%d]", i),
				Value:   effect,
			})
		}
	}
	return errs
}

// isAssetURL reports whether raw is an absolute URL on the asset host
func isAssetURL(raw, assetHost string) bool {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}
	return u.Hostname() == assetHost
}
