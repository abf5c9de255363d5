// containers.go
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

package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ContainerOptions configures the Postgres and Authorizer containers
type ContainerOptions struct {
	DBImage     string
	DBName      string
	DBUser      string
	DBPassword  string
	DBPort      string
	DBAlias     string
	AuthzImage  string
	AuthzPort   string
	AuthzClient string
	AuthzSecret string

	// StartAuthorizer also starts an Authorizer backed by the same database
	StartAuthorizer bool
	Debug           bool
}

// ContainerOptionsFromEnv reads the options from the environment, falling back to defaults
func ContainerOptionsFromEnv() ContainerOptions {
	return ContainerOptions{
		DBImage:         envOr("DB_IMAGE", "postgres:16-alpine"),
		DBName:          envOr("DB_DATABASE", "appearance"),
		DBUser:          envOr("DB_USER", "appearance"),
		DBPassword:      envOr("DB_PASSWORD", "appearance"),
		DBPort:          envOr("DB_PORT", "5432"),
		DBAlias:         envOr("DB_HOST", "db"),
		AuthzImage:      envOr("AUTHZ_IMAGE", "lakhansamani/authorizer:latest"),
		AuthzPort:       envOr("AUTHZ_PORT", "8080"),
		AuthzClient:     envOr("AUTHZ_CLIENT_ID", "appearancedb"),
		AuthzSecret:     envOr("AUTHZ_ADMIN_SECRET", "admin"),
		StartAuthorizer: true,
		Debug:           os.Getenv("DEBUG_CONTAINER") == "true",
	}
}

// Containers holds the running containers and their host side addresses
type Containers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container

	DBHost   string
	DBPort   string
	AuthzURL string
}

// Terminate stops every started container and removes the network
func (tc *Containers) Terminate(ctx context.Context, logf func(format string, args ...interface{})) {
	if tc.AuthorizerContainer != nil {
		if err := tc.AuthorizerContainer.Terminate(ctx); err != nil {
			logf("Failed to terminate Authorizer: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logf("Failed to terminate Postgres: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logf("Failed to remove network: %v", err)
		}
	}
}

// StartContainers starts Postgres and, when requested, an Authorizer on a shared network.
// On failure everything already started is terminated.
func StartContainers(ctx context.Context, opts ContainerOptions, logf func(format string, args ...interface{})) (tc *Containers, err error) {
	tc = &Containers{}
	defer func() {
		if err != nil {
			tc.Terminate(context.Background(), logf)
			tc = nil
		}
	}()

	nw, err := network.New(ctx)
	if err != nil {
		return tc, fmt.Errorf("failed to create network: %w", err)
	}
	tc.Network = nw

	tcpDBPort, err := nat.NewPort("tcp", opts.DBPort)
	if err != nil {
		return tc, fmt.Errorf("failed to create DB port: %w", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.DBImage,
			ExposedPorts: []string{string(tcpDBPort)},
			Env: map[string]string{
				"POSTGRES_DB":       opts.DBName,
				"POSTGRES_USER":     opts.DBUser,
				"POSTGRES_PASSWORD": opts.DBPassword,
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort(tcpDBPort),
			).WithDeadline(60 * time.Second),
			Networks: []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {opts.DBAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return tc, fmt.Errorf("failed to start Postgres: %w", err)
	}
	tc.DBContainer = dbContainer

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		return tc, fmt.Errorf("failed to get Postgres host: %w", err)
	}
	dbPort, err := dbContainer.MappedPort(ctx, tcpDBPort)
	if err != nil {
		return tc, fmt.Errorf("failed to get Postgres port: %w", err)
	}
	tc.DBHost = dbHost
	tc.DBPort = dbPort.Port()
	logf("DB_HOST=%s DB_PORT=%s", tc.DBHost, tc.DBPort)

	if !opts.StartAuthorizer {
		return tc, nil
	}

	tcpAuthzPort, err := nat.NewPort("tcp", opts.AuthzPort)
	if err != nil {
		return tc, fmt.Errorf("failed to create Authorizer port: %w", err)
	}

	authzLogLevel := "info"
	if opts.Debug {
		authzLogLevel = "debug"
	}
	authzDBURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		opts.DBUser, opts.DBPassword, opts.DBAlias, opts.DBPort, opts.DBName)

	authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.AuthzImage,
			ExposedPorts: []string{string(tcpAuthzPort)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     opts.AuthzClient,
				"PORT":          opts.AuthzPort,
				"DATABASE_TYPE": "postgres",
				"DATABASE_NAME": opts.DBName,
				"DATABASE_URL":  authzDBURL,
				"ADMIN_SECRET":  opts.AuthzSecret,
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     authzLogLevel,
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
			Networks:   []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {"authorizer"},
			},
		},
		Started: true,
	})
	if err != nil {
		return tc, fmt.Errorf("failed to start Authorizer: %w", err)
	}
	tc.AuthorizerContainer = authorizerContainer

	authzHost, err := authorizerContainer.Host(ctx)
	if err != nil {
		return tc, fmt.Errorf("failed to get Authorizer host: %w", err)
	}
	authzPort, err := authorizerContainer.MappedPort(ctx, tcpAuthzPort)
	if err != nil {
		return tc, fmt.Errorf("failed to get Authorizer port: %w", err)
	}
	tc.AuthzURL = fmt.Sprintf("http://%s:%s", authzHost, authzPort.Port())
	logf("AUTHZ_URL=%s", tc.AuthzURL)

	return tc, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
