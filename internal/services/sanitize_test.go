// sanitize_test.go
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

package services_test

import (
	"testing"

	"github.com/localnerve/appearancedb/internal/services"
	"github.com/localnerve/appearancedb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeBioStripsMarkup(t *testing.T) {
	bio := "hello <script>world</script>!!"
	got := services.SanitizeBio(&bio)
	require.NotNil(t, got)
	assert.Equal(t, "hello scriptworldscript!!", *got)
}

func TestSanitizeBio(t *testing.T) {
	tests := map[string]string{
		"  plain text.  ":        "plain text.",
		"under_score, ok? yes!":  "under_score, ok? yes!",
		"a-b\nc\td":              "a-b\nc\td",
		"emoji 🎧 gone":           "emoji  gone",
		"quotes \"'`;:()[]{}#@$": "quotes",
		"<<<>>>":                 "",
	}
	for input, want := range tests {
		got := services.SanitizeBio(&input)
		require.NotNil(t, got)
		assert.Equal(t, want, *got, input)
	}
}

func TestSanitizeBioPassesThroughNilAndEmpty(t *testing.T) {
	assert.Nil(t, services.SanitizeBio(nil))

	empty := ""
	assert.Same(t, &empty, services.SanitizeBio(&empty))
}

func TestSanitizeAppearanceOnlyTouchesBio(t *testing.T) {
	in := &services.AppearanceInput{
		Bio:         types.NewNullable(" <b>hi</b> "),
		DisplayName: types.NewNullable("<name>"),
	}
	services.SanitizeAppearance(in)

	assert.Equal(t, "bhib", *in.Bio.Ptr())
	assert.Equal(t, "<name>", *in.DisplayName.Ptr())

	absent := &services.AppearanceInput{}
	services.SanitizeAppearance(absent)
	assert.False(t, absent.Bio.Set)
}
