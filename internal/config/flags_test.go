package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		input   string
		want    NetAddress
		wantErr string
	}{
		{input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{input: "10.0.0.7:9090", want: NetAddress{Host: "10.0.0.7", Port: 9090}},
		{input: "[::1]:8443", want: NetAddress{Host: "::1", Port: 8443}},
		{input: ":8080", want: NetAddress{Port: 8080}},
		{input: "localhost8080", wantErr: "host:port"},
		{input: "a:b:c", wantErr: "host:port"},
		{input: "", wantErr: "host:port"},
		{input: "localhost:http", wantErr: "invalid syntax"},
		{input: "localhost:0", wantErr: "between 1 and 65535"},
		{input: "localhost:70000", wantErr: "between 1 and 65535"},
		{input: "hq.example:8080", wantErr: "incorrect IP-address"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, addr.String(), "failed Set must not touch the value")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
	assert.Equal(t, "[::1]:8443", (&NetAddress{Host: "::1", Port: 8443}).String())
}

func TestParseFlags(t *testing.T) {
	t.Run("every flag", func(t *testing.T) {
		cfg, err := parseFlags([]string{
			"-a", "127.0.0.1:8081",
			"-grpc-address", "127.0.0.1:9091",
			"-d", "file:node.db",
			"-driver", DriverSQLite,
			"-j", "/var/lib/sync/journal",
			"-c", "/etc/sync/node.yaml",
			"-token-sign-key", "sign",
			"-token-issuer", "district-7",
			"-token-duration", "2h",
			"-request-timeout", "45s",
			"-peer-timeout", "12s",
			"-hash-key", "hmac",
			"-credential-key", "seal",
			"-server-name", "district-7",
			"-sync-interval", "3m",
			"-workers",
			"-otlp-endpoint", "collector:4318",
		})
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
		assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
		assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, DB{DSN: "file:node.db", Driver: DriverSQLite}, cfg.Storage.DB)
		assert.Equal(t, "/var/lib/sync/journal", cfg.Storage.Journal.Dir)
		assert.Equal(t, "/etc/sync/node.yaml", cfg.JSONFilePath)
		assert.Equal(t, "sign", cfg.App.TokenSignKey)
		assert.Equal(t, "district-7", cfg.App.TokenIssuer)
		assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
		assert.Equal(t, "hmac", cfg.App.HashKey)
		assert.Equal(t, "seal", cfg.App.CredentialKey)
		assert.Equal(t, "district-7", cfg.App.ServerName)
		assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, Workers{Enabled: true, SyncInterval: 3 * time.Minute}, cfg.Workers)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "collector:4318", cfg.Telemetry.OTLPEndpoint)
	})

	t.Run("config alias", func(t *testing.T) {
		cfg, err := parseFlags([]string{"-config", "node.json"})
		require.NoError(t, err)
		assert.Equal(t, "node.json", cfg.JSONFilePath)
	})

	t.Run("nothing given leaves zero values for the merge", func(t *testing.T) {
		cfg, err := parseFlags(nil)
		require.NoError(t, err)
		assert.Equal(t, &StructuredConfig{}, cfg)
	})

	t.Run("bad address", func(t *testing.T) {
		_, err := parseFlags([]string{"-a", "hq.example:80"})
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseFlags([]string{"-verbose"})
		assert.Error(t, err)
	})
}

func TestConfigBuilder_WithArgs(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withArgs([]string{"-d", "file:node.db", "-driver", DriverSQLite, "-sync-interval", "30s"}).
		build()
	require.NoError(t, err)

	assert.Equal(t, "file:node.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	// defaults survive where no flag was given
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)

	_, err = newConfigBuilder().withDefaults().withArgs([]string{"-nope"}).build()
	assert.Error(t, err)
}
