package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a listen address given on the command line. It implements
// flag.Value.
type NetAddress struct {
	Host string
	Port int
}

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port must be between 1 and 65535")
)

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is "localhost", an IP literal (IPv6 in
// brackets) or empty for every interface.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %v", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}

// parseFlags reads server command-line flags from args (without the program
// name):
//
//	-a               http listen address host:port
//	-grpc-address    grpc listen address host:port
//	-d               database DSN
//	-driver          database driver (pgx or sqlite3)
//	-j               journal directory
//	-c, -config      json or yaml config file
//	-token-sign-key  session token signing key
//	-token-issuer    session token issuer
//	-token-duration  session token lifetime
//	-request-timeout http request timeout
//	-peer-timeout    timeout of one exchange with a peer
//	-hash-key        HMAC key for envelope bodies
//	-credential-key  key sealing stored peer passwords
//	-server-name     nickname of this server
//	-sync-interval   period between sync runs
//	-workers         start the sync workers
//	-otlp-endpoint   OTLP metrics endpoint
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg                   StructuredConfig
		httpAddr, grpcAddr    NetAddress
		workersEnabled        bool
		otlpEndpoint, cfgPath string
	)

	fs := flag.NewFlagSet("sync-server", flag.ContinueOnError)

	fs.Var(&httpAddr, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&cfg.Storage.Journal.Dir, "j", "", "Journal directory")
	fs.StringVar(&cfgPath, "c", "", "JSON or YAML config file")
	fs.StringVar(&cfgPath, "config", "", "JSON or YAML config file (alias of -c)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Session token lifetime (e.g. 1h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "HTTP request timeout (e.g. 30s)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "peer-timeout", 0, "Timeout of one exchange with a peer")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "HMAC key for envelope bodies")
	fs.StringVar(&cfg.App.CredentialKey, "credential-key", "", "Key sealing stored peer passwords")
	fs.StringVar(&cfg.App.ServerName, "server-name", "", "Nickname of this server")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Period between sync runs (e.g. 5m)")
	fs.BoolVar(&workersEnabled, "workers", false, "Start the sync workers")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP metrics endpoint host:port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing command-line flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	cfg.Workers.Enabled = workersEnabled
	cfg.Telemetry.OTLPEndpoint = otlpEndpoint
	cfg.Telemetry.Enabled = otlpEndpoint != ""
	cfg.JSONFilePath = cfgPath

	return &cfg, nil
}
