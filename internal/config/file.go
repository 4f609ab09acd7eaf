package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the configuration file. The
// same layout is accepted as JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		HashKey       string   `json:"hash_key" yaml:"hash_key"`
		CredentialKey string   `json:"credential_key" yaml:"credential_key"`
		Version       string   `json:"version" yaml:"version"`
		ServerName    string   `json:"server_name" yaml:"server_name"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn" yaml:"dsn"`
			Driver string `json:"driver" yaml:"driver"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Journal struct {
			Dir string `json:"dir" yaml:"dir"`
		} `json:"journal,omitempty" yaml:"journal,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval" yaml:"sync_interval"`
		Enabled      bool     `json:"enabled" yaml:"enabled"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Telemetry struct {
		Enabled      bool   `json:"enabled" yaml:"enabled"`
		OTLPEndpoint string `json:"otlp_endpoint" yaml:"otlp_endpoint"`
		ServiceName  string `json:"service_name" yaml:"service_name"`
	} `json:"telemetry,omitempty" yaml:"telemetry,omitempty"`
}

// parseFile reads a configuration file. The format is picked by extension:
// .yaml and .yml are YAML, anything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			HashKey:       f.App.HashKey,
			CredentialKey: f.App.CredentialKey,
			Version:       f.App.Version,
			ServerName:    f.App.ServerName,
		},
		Storage: Storage{
			DB: DB{
				DSN:    f.Storage.DB.DSN,
				Driver: f.Storage.DB.Driver,
			},
			Journal: Journal{
				Dir: f.Storage.Journal.Dir,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(f.Workers.SyncInterval),
			Enabled:      f.Workers.Enabled,
		},
		Telemetry: Telemetry{
			Enabled:      f.Telemetry.Enabled,
			OTLPEndpoint: f.Telemetry.OTLPEndpoint,
			ServiceName:  f.Telemetry.ServiceName,
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling
// from strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
