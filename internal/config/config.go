// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// replication server. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and security settings of this server.
	App App `envPrefix:"APP_"`

	// Storage holds the database and journal directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen addresses of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound transport settings used to reach peers.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the scheduled sync settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry holds the OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a .json, .yaml or .yml file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs the session tokens issued to child servers.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for envelope integrity (HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// CredentialKey seals the passwords this server presents to its peers
	// before they are stored. Empty stores them as given.
	// Env: APP_CREDENTIAL_KEY
	CredentialKey string `env:"CREDENTIAL_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ServerName seeds synchronization.server_name on first start.
	// Env: APP_SERVER_NAME
	ServerName string `env:"SERVER_NAME"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB      DB      `envPrefix:"DB_"`
	Journal Journal `envPrefix:"JOURNAL_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN is the connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is either "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Journal holds the directory where transmissions and responses are kept.
type Journal struct {
	// Dir is empty when journal files are disabled.
	// Env: STORAGE_JOURNAL_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server listens.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// RequestTimeout bounds one exchange with a peer.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the scheduled sync settings.
type Workers struct {
	// SyncInterval is the period between two sync runs per peer.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// Enabled starts the per-peer sync workers with the server.
	// Env: WORKERS_ENABLED
	Enabled bool `env:"ENABLED"`
}

// Telemetry holds the metrics exporter settings.
type Telemetry struct {
	// Env: TELEMETRY_ENABLED
	Enabled bool `env:"ENABLED"`
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Defaults returns the values used when no source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-sync-keeper",
			TokenDuration: time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			GRPCAddress:    "0.0.0.0:9090",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
		Telemetry: Telemetry{
			ServiceName: "go-sync-keeper",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}
