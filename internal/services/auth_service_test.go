// auth_service_test.go
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
	"net"
	"testing"

	"github.com/localnerve/appearancedb/internal/config"
	"github.com/localnerve/appearancedb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthorizerSessionsUnreachable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	sessions := services.NewAuthorizerSessions(&config.Config{
		AuthzURL:      "http://" + addr,
		AuthzClientID: "client",
	}, zap.NewNop())

	_, err = sessions.ValidateSession("cookie", "http", "localhost:3000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorizer ping failed")
	assert.False(t, sessions.Initialized())

	// a failed initialization is attempted again on the next request
	_, err = sessions.ValidateSession("cookie", "http", "localhost:3000")
	assert.Error(t, err)
	assert.False(t, sessions.Initialized())
}
