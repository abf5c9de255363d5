// main_test.go
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

package main

import (
	"testing"
	"time"

	"github.com/localnerve/appearancedb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestRunReleasesResourcesWhenListenFails(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent(), goleak.IgnoreAnyFunction("os/signal.loop"))

	cfg := &config.Config{
		Port:              "-1",
		DBType:            "sqlite-pure",
		DBDatabase:        "file::memory:",
		DBConnectionLimit: 1,
		AuthzURL:          "http://127.0.0.1:1",
		AuthzClientID:     "test",
		AssetHost:         "r.emogir.ls",
		RateLimitMax:      30,
		RateLimitWindow:   time.Minute,
		RateLimitStore:    "database",
	}

	err := run(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestRunReportsConnectError(t *testing.T) {
	cfg := &config.Config{DBType: "oracle", DBDatabase: "x"}

	err := run(cfg, zap.NewNop())
	assert.EqualError(t, err, "failed to connect to database: unsupported database type: oracle")
}
