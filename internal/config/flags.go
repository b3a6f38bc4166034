package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// address does not override other sources when merged.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means "all interfaces"; otherwise the host must
// be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// listValue is a comma separated flag.Value.
type listValue []string

func (l *listValue) String() string {
	return strings.Join(*l, ",")
}

func (l *listValue) Set(s string) error {
	*l = strings.Split(s, ",")
	return nil
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-metrics-address metrics listener address in format [host]:[port]
//	-c/-config json file path with configs
//	-log-level minimum log level (debug, info, warn, error)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-upstream base URL of the auth service
//	-workouts-upstream base URL of the workouts service
//	-cors-origins comma separated allowed origins
//	-cors-methods comma separated allowed methods ("*" for any)
//	-cors-headers comma separated allowed headers ("*" for any)
//	-cors-allow-credentials allow credentials (true/false)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-fit-tracker", flag.ContinueOnError)

	var serverAddress, metricsAddress NetAddress
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration
	var authUpstream, workoutsUpstream string
	var corsOrigins, corsMethods, corsHeaders listValue
	var corsAllowCredentials bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listener address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&authUpstream, "auth-upstream", "", "Auth service base URL")
	fs.StringVar(&workoutsUpstream, "workouts-upstream", "", "Workouts service base URL")
	fs.Var(&corsOrigins, "cors-origins", "Comma separated allowed origins (\"none\" denies all)")
	fs.Var(&corsMethods, "cors-methods", "Comma separated allowed methods, * for any")
	fs.Var(&corsHeaders, "cors-headers", "Comma separated allowed headers, * for any")
	fs.BoolVar(&corsAllowCredentials, "cors-allow-credentials", false, "Allow credentials for cross-origin requests")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Metrics: Metrics{
			Address: metricsAddress.String(),
		},
		Routes: Routes{
			Auth:     Group{Upstream: authUpstream},
			Workouts: Group{Upstream: workoutsUpstream},
		},
		CORS: CORS{
			AllowedOrigins: corsOrigins,
			AllowedMethods: corsMethods,
			AllowedHeaders: corsHeaders,
		},
		JSONFilePath: jsonConfigPath,
	}

	// a bool flag is only a source when it was given explicitly
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "cors-allow-credentials" {
			cfg.CORS.AllowCredentials = &corsAllowCredentials
		}
	})

	return cfg, nil
}
