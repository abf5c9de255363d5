// config_test.go
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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DATABASE", "appearance")
	t.Setenv("DB_USER", "appearance")
	t.Setenv("AUTHZ_URL", "http://localhost:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "client")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "r.emogir.ls", cfg.AssetHost)
	assert.Equal(t, 30, cfg.RateLimitMax)
	assert.Equal(t, 300*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "database", cfg.RateLimitStore)
}

func TestLoadRequiredFields(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	_, err := Load()
	assert.EqualError(t, err, "DB_DATABASE is required")

	setRequired(t)
	t.Setenv("AUTHZ_CLIENT_ID", "")
	_, err = Load()
	assert.EqualError(t, err, "AUTHZ_CLIENT_ID is required")
}

func TestLoadSQLiteWithoutUser(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_USER", "")
	t.Setenv("DB_TYPE", "SQLite")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsSQLite())
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_LIMIT_STORE", "redis")

	_, err := Load()
	assert.EqualError(t, err, "unsupported RATE_LIMIT_STORE: redis")
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "DB_DATABASE=fromfile\nDB_USER=fromfile\nAUTHZ_URL=http://authz\nAUTHZ_CLIENT_ID=abc\nRATE_LIMIT_MAX=5\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv does not override variables that are already set, clear them for this test
	for _, key := range []string{"DB_DATABASE", "DB_USER", "AUTHZ_URL", "AUTHZ_CLIENT_ID", "RATE_LIMIT_MAX"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("ENV_FILE", envFile)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.DBDatabase)
	assert.Equal(t, 5, cfg.RateLimitMax)
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	t.Setenv("SOME_INT", "12")
	assert.Equal(t, 12, getEnvAsInt("SOME_INT", 7))
}
