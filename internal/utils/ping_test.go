package utils

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialAddress(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://authz", "authz:80"},
		{"https://authz", "authz:443"},
		{"http://authz:8080/path", "authz:8080"},
		{"http://[::1]:9000", "[::1]:9000"},
	}
	for _, tt := range tests {
		got, err := dialAddress(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}

	_, err := dialAddress("not a url")
	assert.Error(t, err)
}

func TestPingService(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()

	assert.NoError(t, PingService(context.Background(), "http://"+addr, time.Second))

	require.NoError(t, listener.Close())
	err = PingService(context.Background(), "http://"+addr, time.Second)
	assert.ErrorContains(t, err, "failed to connect to "+addr)
}
