// Package config reads the service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every setting the service reads at startup.
type Config struct {
	Port             int
	Env              string
	TelemetryEnabled bool
	RateLimitRPS     float64 // 0 disables rate limiting
	RateLimitBurst   int
	ShutdownTimeout  time.Duration
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func Default() Config {
	return Config{
		Port:             8080,
		Env:              "production",
		TelemetryEnabled: false,
		RateLimitRPS:     0,
		RateLimitBurst:   20,
		ShutdownTimeout:  5 * time.Second,
	}
}

// Load builds a Config from the process environment, falling back to
// Default for unset variables.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v, ok := lookup("APP_ENV"); ok && v != "" {
		cfg.Env = v
	}

	if v, ok := lookup("TELEMETRY_ENABLED"); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TELEMETRY_ENABLED %q: %w", v, err)
		}
		cfg.TelemetryEnabled = enabled
	}

	if v, ok := lookup("RATE_LIMIT_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		cfg.RateLimitRPS = rps
	}

	if v, ok := lookup("RATE_LIMIT_BURST"); ok && v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST %q", v)
		}
		cfg.RateLimitBurst = burst
	}

	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
