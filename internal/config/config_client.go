package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the admin console transport
// layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the portal REST API.
	// Env: ADMINCTL_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`
	// RequestTimeout is the default timeout for outbound console requests.
	// Env: ADMINCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the admin console binary.
type ClientConfig struct {
	// Adapter contains console transport address and timeout.
	Adapter ClientAdapter `envPrefix:"ADMINCTL_"`
}

// DefaultClientRequestTimeout bounds each console request when no timeout is
// configured.
const DefaultClientRequestTimeout = 15 * time.Second

// GetClientConfig builds and validates the admin console configuration.
//
// Sources, later overriding earlier: environment variables
// (ADMINCTL_SERVER_ADDRESS, ADMINCTL_REQUEST_TIMEOUT), then command-line
// arguments parsed from args (usually os.Args[1:]):
//
//	-s server base URL (e.g. "https://portal.greenjets.com")
//	-request-timeout outbound request timeout (e.g. "15s")
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	if flagCfg.Adapter.HTTPAddress != "" {
		cfg.Adapter.HTTPAddress = flagCfg.Adapter.HTTPAddress
	}
	if flagCfg.Adapter.RequestTimeout != 0 {
		cfg.Adapter.RequestTimeout = flagCfg.Adapter.RequestTimeout
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var serverAddress string
	var requestTimeout time.Duration

	// Dedicated FlagSet so the console flags never collide with the
	// server's global flag registrations.
	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "s", "", "Portal server base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing admin console flags: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
	}, nil
}
