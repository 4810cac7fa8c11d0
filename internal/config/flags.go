package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

const flagSetName = "purchase-server"

// NetAddress is a host:port flag value. The host may be empty, "localhost"
// or an IP address; IPv6 hosts are written in brackets.
type NetAddress struct {
	Host string
	Port int
}

// listFlag collects a comma separated flag into a slice.
type listFlag []string

// parseFlags reads the server flags from args (without the program name).
//
//	-a                       HTTP address host:port
//	-grpc-address            gRPC health address host:port
//	-d                       PostgreSQL DSN
//	-c, -config              JSON config file
//	-auth-username           accepted user name
//	-auth-password           accepted password, plain or bcrypt hash
//	-token-sign-key          HMAC key for issued tokens
//	-token-issuer            token issuer
//	-token-audience          token audience
//	-token-duration          lifetime of login tokens (5m)
//	-refresh-token-duration  lifetime of renewed tokens (24h)
//	-request-timeout         inbound request timeout (30s)
//	-rate-limit              requests per window per caller
//	-allowed-origins         comma separated CORS origins
//	-treasury-url            treasury rates of exchange endpoint
//	-sync-start-delay        delay before the currency sync starts
//	-sync-max-attempts       currency sync attempts
//	-sync-page-size          treasury page size
//	-telemetry-endpoint      OTLP gRPC collector; enables export
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)

	var (
		cfg                      StructuredConfig
		httpAddress, grpcAddress NetAddress
		allowedOrigins           listFlag
	)

	fs.Var(&httpAddress, "a", "HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&cfg.Auth.Username, "auth-username", "", "Accepted user name")
	fs.StringVar(&cfg.Auth.Password, "auth-password", "", "Accepted password, plain or bcrypt hash")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.Auth.TokenAudience, "token-audience", "", "Token audience")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Login token lifetime (e.g. 5m)")
	fs.DurationVar(&cfg.Auth.RefreshTokenDuration, "refresh-token-duration", 0, "Renewed token lifetime (e.g. 24h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Inbound request timeout (e.g. 30s)")
	fs.IntVar(&cfg.Server.RateLimit, "rate-limit", 0, "Requests per window per caller")
	fs.Var(&allowedOrigins, "allowed-origins", "Comma separated CORS origins")
	fs.StringVar(&cfg.Adapter.TreasuryBaseURL, "treasury-url", "", "Treasury rates of exchange endpoint")
	fs.DurationVar(&cfg.Workers.SyncStartDelay, "sync-start-delay", 0, "Delay before the currency sync starts")
	fs.IntVar(&cfg.Workers.SyncMaxAttempts, "sync-max-attempts", 0, "Currency sync attempts")
	fs.IntVar(&cfg.Workers.SyncPageSize, "sync-page-size", 0, "Treasury page size")
	fs.StringVar(&cfg.Telemetry.Endpoint, "telemetry-endpoint", "", "OTLP gRPC collector address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.Server.AllowedOrigins = allowedOrigins
	cfg.Telemetry.Enabled = cfg.Telemetry.Endpoint != ""

	return &cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The port must be in 1..65535 and a host other than
// "localhost" must be an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q is not a number", rawPort)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(s string) error {
	*l = trimList(strings.Split(s, ","))
	return nil
}
