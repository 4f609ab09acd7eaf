// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_EverySection(t *testing.T) {
	var cfg StructuredConfig
	err := parseEnv(&cfg, map[string]string{
		"CONFIG": "/etc/sync/node.yaml",

		"APP_TOKEN_SIGN_KEY":  "sign",
		"APP_TOKEN_ISSUER":    "district-7",
		"APP_TOKEN_DURATION":  "1h",
		"APP_HASH_KEY":        "hmac",
		"APP_CREDENTIAL_KEY":  "seal",
		"APP_SERVER_NAME":     "district-7",
		"SERVER_ADDRESS":      "localhost:8080",
		"SERVER_GRPC_ADDRESS": "localhost:9090",

		"SERVER_REQUEST_TIMEOUT":  "30s",
		"STORAGE_DB_DATABASE_URI": "postgres://sync@db/openmrs",
		"STORAGE_DB_DRIVER":       DriverPostgres,
		"STORAGE_JOURNAL_DIR":     "/var/lib/sync/journal",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"WORKERS_SYNC_INTERVAL":   "2m",
		"WORKERS_ENABLED":         "true",
		"TELEMETRY_ENABLED":       "true",
		"TELEMETRY_OTLP_ENDPOINT": "collector:4317",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/sync/node.yaml", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "district-7", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "hmac", cfg.App.HashKey)
	assert.Equal(t, "seal", cfg.App.CredentialKey)
	assert.Equal(t, "district-7", cfg.App.ServerName)
	assert.Equal(t, Server{HTTPAddress: "localhost:8080", GRPCAddress: "localhost:9090", RequestTimeout: 30 * time.Second}, cfg.Server)
	assert.Equal(t, DB{DSN: "postgres://sync@db/openmrs", Driver: DriverPostgres}, cfg.Storage.DB)
	assert.Equal(t, "/var/lib/sync/journal", cfg.Storage.Journal.Dir)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, Workers{SyncInterval: 2 * time.Minute, Enabled: true}, cfg.Workers)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.OTLPEndpoint)
}

func TestParseEnv_UnsetLeavesZero(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg, map[string]string{
		"STORAGE_DB_DATABASE_URI": "file:sync.db",
		"STORAGE_DB_DRIVER":       DriverSQLite,
		"UNRELATED":               "ignored",
	}))

	assert.Equal(t, DB{DSN: "file:sync.db", Driver: DriverSQLite}, cfg.Storage.DB)
	assert.Empty(t, cfg.Storage.Journal.Dir)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_Malformed(t *testing.T) {
	tests := map[string]string{
		"APP_TOKEN_DURATION":     "a while",
		"WORKERS_SYNC_INTERVAL":  "5",
		"WORKERS_ENABLED":        "sometimes",
		"SERVER_REQUEST_TIMEOUT": "-",
	}

	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			var cfg StructuredConfig
			err := parseEnv(&cfg, map[string]string{name: value})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "reading sync node settings")
		})
	}
}

func TestParseEnv_Durations(t *testing.T) {
	for raw, want := range map[string]time.Duration{
		"2h":    2 * time.Hour,
		"45m":   45 * time.Minute,
		"1h30m": 90 * time.Minute,
		"250ms": 250 * time.Millisecond,
	} {
		var cfg StructuredConfig
		require.NoError(t, parseEnv(&cfg, map[string]string{"WORKERS_SYNC_INTERVAL": raw}))
		assert.Equal(t, want, cfg.Workers.SyncInterval, raw)
	}
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("APP_SERVER_NAME", "from-process")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg, nil))
	assert.Equal(t, "from-process", cfg.App.ServerName)
}
