// Package config holds the runtime configuration for a tallychain process.
package config

import (
	"time"

	"tallychain/clock"
)

type Config struct {
	// HTTPPort is the port the API server listens on.
	HTTPPort string
	// LogLevel and LogFile configure the process logger.
	LogLevel string
	LogFile  string
	// NTPServer, when set, switches timestamp acquisition from the system
	// clock to an NTP-corrected one.
	NTPServer       string
	NTPSyncInterval time.Duration
}

// Default returns the configuration used when no flags override it.
func Default() Config {
	return Config{
		HTTPPort:        "8080",
		LogLevel:        "info",
		NTPSyncInterval: 10 * time.Minute,
	}
}

// Clock builds the timestamp source selected by the configuration.
func (c Config) Clock() clock.Clock {
	if c.NTPServer != "" {
		return clock.NewNTPClock(c.NTPServer, c.NTPSyncInterval)
	}
	return clock.SystemClock{}
}
