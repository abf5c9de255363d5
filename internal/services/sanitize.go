// sanitize.go
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
	"regexp"
	"strings"
)

// bioDisallowed matches everything but word characters, whitespace and . , ! ? -
var bioDisallowed = regexp.MustCompile(`[^\w\s.,!?-]`)

// SanitizeBio strips disallowed characters from a bio and trims the result.
// Nil and empty values are returned unchanged.
func SanitizeBio(bio *string) *string {
	if bio == nil || *bio == "" {
		return bio
	}
	clean := strings.TrimSpace(bioDisallowed.ReplaceAllString(*bio, ""))
	return &clean
}

// SanitizeAppearance applies the free text rules to the input in place
func SanitizeAppearance(in *AppearanceInput) {
	if in.Bio.Set {
		in.Bio.Value = SanitizeBio(in.Bio.Value)
	}
}
