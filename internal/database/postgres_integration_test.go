// postgres_integration_test.go
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

package database_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/localnerve/appearancedb/internal/config"
	"github.com/localnerve/appearancedb/internal/database"
	"github.com/localnerve/appearancedb/internal/ratelimit"
	"github.com/localnerve/appearancedb/internal/services"
	"github.com/localnerve/appearancedb/internal/testutil"
	"github.com/localnerve/appearancedb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestPostgresIntegration runs the reconciler and the database counter store against a real Postgres
func TestPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	opts := testutil.ContainerOptionsFromEnv()
	opts.StartAuthorizer = false

	tc, err := testutil.StartContainers(ctx, opts, t.Logf)
	require.NoError(t, err)
	defer tc.Terminate(ctx, t.Logf)

	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            tc.DBHost,
		DBPort:            tc.DBPort,
		DBDatabase:        opts.DBName,
		DBUser:            opts.DBUser,
		DBPassword:        opts.DBPassword,
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, database.AutoMigrate(db))

	t.Run("Reconcile", func(t *testing.T) {
		icon := "https://r.emogir.ls/a.png"
		first, err := services.UpdateAppearance(ctx, db, "pg-user", &services.AppearanceInput{
			Effects: &[]string{"snow", "rain"},
			AudioTracks: &[]services.AudioTrackInput{
				{URL: "https://r.emogir.ls/a.mp3", Icon: &icon},
			},
		})
		require.NoError(t, err)

		id := first.AudioTracks[0].ID
		_, err = services.UpdateAppearance(ctx, db, "pg-user", &services.AppearanceInput{
			AudioTracks: &[]services.AudioTrackInput{
				{URL: "https://r.emogir.ls/b.mp3"},
				{ID: &id, URL: "https://r.emogir.ls/a.mp3"},
			},
		})
		require.NoError(t, err)

		got, err := services.GetAppearance(ctx, db, "pg-user")
		require.NoError(t, err)
		require.Len(t, got.AudioTracks, 2)
		assert.Equal(t, 1, got.AudioTracks[1].Order)
		assert.Equal(t, icon, *got.AudioTracks[1].Icon)
		assert.Equal(t, []string{"snow", "rain"}, []string(got.Effects))
	})

	t.Run("LongValues", func(t *testing.T) {
		name := strings.Repeat("n", 200)
		layout := strings.Repeat("l", 80)
		font := strings.Repeat("f", 120)
		title := strings.Repeat("t", 300)
		assetURL := "https://r.emogir.ls/" + strings.Repeat("a", 600) + ".mp3"

		input := &services.AppearanceInput{
			DisplayName: types.NewNullable(name),
			Avatar:      types.NewNullable(assetURL),
			LayoutStyle: &layout,
			TitleFont:   &font,
			AudioTracks: &[]services.AudioTrackInput{
				{URL: assetURL, Title: &title, Icon: &assetURL},
			},
		}
		require.Empty(t, services.ValidateAppearance(input, "r.emogir.ls"))

		_, err := services.UpdateAppearance(ctx, db, "pg-long", input)
		require.NoError(t, err)

		got, err := services.GetAppearance(ctx, db, "pg-long")
		require.NoError(t, err)
		assert.Equal(t, name, *got.DisplayName)
		assert.Equal(t, assetURL, *got.Avatar)
		assert.Equal(t, layout, got.LayoutStyle)
		assert.Equal(t, font, got.TitleFont)
		require.Len(t, got.AudioTracks, 1)
		assert.Equal(t, assetURL, got.AudioTracks[0].URL)
		assert.Equal(t, title, *got.AudioTracks[0].Title)
	})

	t.Run("ConcurrentUpdates", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := services.UpdateAppearance(ctx, db, "pg-race", &services.AppearanceInput{
					AudioTracks: &[]services.AudioTrackInput{
						{URL: "https://r.emogir.ls/1.mp3"},
						{URL: "https://r.emogir.ls/2.mp3"},
					},
				})
				// concurrent first saves may race on the unique user index
				if err != nil {
					t.Logf("concurrent update: %v", err)
				}
			}()
		}
		wg.Wait()

		got, err := services.GetAppearance(ctx, db, "pg-race")
		require.NoError(t, err)
		assert.Len(t, got.AudioTracks, 2)
	})

	t.Run("GormStore", func(t *testing.T) {
		store := ratelimit.NewGormStore(db, time.Minute)
		defer store.Close()

		limiter := ratelimit.New(store, 30, 300*time.Second, zap.NewNop())
		for i := 0; i < 30; i++ {
			require.True(t, limiter.Allow(ctx, "pg-user").Allowed)
		}
		res := limiter.Allow(ctx, "pg-user")
		assert.False(t, res.Allowed)
		assert.NoError(t, res.Err)
		assert.Equal(t, 300, res.RemainingTime)
		assert.InDelta(t, 300, res.RetryAfter, 2)
	})
}
