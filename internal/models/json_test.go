// json_test.go
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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestStringListValueAndScan(t *testing.T) {
	v, err := StringList{"sparkle", "rain"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["sparkle","rain"]`, v)

	var out StringList
	require.NoError(t, out.Scan([]byte(`["sparkle","rain"]`)))
	assert.Equal(t, StringList{"sparkle", "rain"}, out)

	require.NoError(t, out.Scan(`["one"]`))
	assert.Equal(t, StringList{"one"}, out)
}

func TestStringListNil(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	out := StringList{"stale"}
	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)
}

func TestStringListScanRejectsGarbage(t *testing.T) {
	var out StringList
	assert.Error(t, out.Scan(42))
	assert.Error(t, out.Scan([]byte(`{"not":"a list"}`)))
}

func TestAppearanceStyleColumnsAreUnbounded(t *testing.T) {
	cache := &sync.Map{}

	s, err := schema.Parse(&Appearance{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	for _, field := range s.Fields {
		if field.DataType != schema.String {
			continue
		}
		switch field.Name {
		case "ID", "UserID":
			continue
		case "Bio":
			assert.Equal(t, 400, field.Size)
		default:
			assert.Zero(t, field.Size, "column %s", field.DBName)
		}
	}

	tracks, err := schema.Parse(&AudioTrack{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	for _, name := range []string{"URL", "Title", "Icon"} {
		assert.Zero(t, tracks.LookUpField(name).Size, "column %s", name)
	}
}
