package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL
//	-d local credential cache DSN
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval session refresh interval (e.g., "5m")
func ParseFlags(args []string) (*Config, error) {
	var address string
	var dsn string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("remote-access", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Server base URL")
	fs.StringVar(&dsn, "d", "", "Local credential cache DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Session refresh interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		API: API{
			Address:        address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN: dsn,
		},
		Session: Session{
			RefreshInterval: refreshInterval,
		},
	}, nil
}
