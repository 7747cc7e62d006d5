package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args, falling back to the process command line when
// args is nil.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config JSON or YAML file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s")
//	-hash-key request signing key
//	-redis redis address host:port
//	-cors comma separated allowed origins
//	-server record store URL used by the client
//	-local-db client SQLite file
//	-refresh client refresh interval
func parseFlags(args []string) (*StructuredConfig, error) {
	if args == nil {
		args = os.Args[1:]
	}

	fs := flag.NewFlagSet("gumi", flag.ContinueOnError)

	var serverAddress, redisAddress NetAddress
	var (
		databaseDSN     string
		configPath      string
		tokenSignKey    string
		tokenIssuer     string
		tokenDuration   time.Duration
		requestTimeout  time.Duration
		hashKey         string
		corsOrigins     string
		adapterAddress  string
		localDSN        string
		refreshInterval time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.Var(&redisAddress, "redis", "Redis address host:port")
	fs.StringVar(&corsOrigins, "cors", "", "Comma separated allowed origins")
	fs.StringVar(&adapterAddress, "server", "", "Record store URL")
	fs.StringVar(&localDSN, "local-db", "", "Client SQLite file")
	fs.DurationVar(&refreshInterval, "refresh", 0, "Client refresh interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var origins []string
	for _, o := range strings.Split(corsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress.String()},
			Local: LocalDB{DSN: localDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigins:    origins,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:  Workers{RefreshInterval: refreshInterval},
		FilePath: configPath,
	}, nil
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is a name, an IPv4 address, a bracketed
// IPv6 address or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1..65535", ErrInvalidNetAddress, rawPort)
	}
	if strings.ContainsAny(host, " /") {
		return fmt.Errorf("%w: bad host %q", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
