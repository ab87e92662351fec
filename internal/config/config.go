// Package config defines process configuration and its loading.
//
// Conventions:
// - New(ctx) builds a Config holding every default.
// - Load(ctx) layers an optional YAML file and HUNTERS_* environment variables on top.
// - Errors from this package wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// CloseDelayMS is the exit transition delay before a closing modal's data is cleared.
	CloseDelayMS int `koanf:"close_delay_ms"`

	// ModalStackLimit caps nested navigation depth.
	ModalStackLimit int `koanf:"modal_stack_limit"`

	// RecordSubmissions appends every submitted dish to the in-memory catalog.
	RecordSubmissions bool `koanf:"record_submissions"`

	// QueueSize bounds the timer-completion event queue.
	QueueSize int `koanf:"queue_size"`

	// CategoryAverages maps a dish category to its average price.
	CategoryAverages map[string]float64 `koanf:"category_averages"`

	// SimulateCount and SimulateSeed drive the simulate command.
	SimulateCount int   `koanf:"simulate_count"`
	SimulateSeed  int64 `koanf:"simulate_seed"`
}

// New returns a Config with defaults. The context is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		CloseDelayMS:      300,
		ModalStackLimit:   50,
		RecordSubmissions: false,
		QueueSize:         1024,
		CategoryAverages: map[string]float64{
			"carne asada tacos":  8.50,
			"cheeseburger":       12.00,
			"margherita pizza":   14.00,
			"california burrito": 11.00,
		},
		SimulateCount: 200,
		SimulateSeed:  42,
	}
}

// CloseDelay returns CloseDelayMS as a duration.
func (c *Config) CloseDelay() time.Duration {
	return time.Duration(c.CloseDelayMS) * time.Millisecond
}

// Validate checks the invariants the rest of the program relies on.
func (c *Config) Validate() error {
	if c.CloseDelayMS < 0 {
		return fmt.Errorf("%w: close_delay_ms must not be negative", ErrInvalidConfig)
	}
	if c.ModalStackLimit < 1 {
		return fmt.Errorf("%w: modal_stack_limit must be at least 1", ErrInvalidConfig)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("%w: queue_size must be at least 1", ErrInvalidConfig)
	}
	for name, avg := range c.CategoryAverages {
		if avg <= 0 {
			return fmt.Errorf("%w: category %q has non-positive average price", ErrInvalidConfig, name)
		}
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json", ErrInvalidConfig)
	}
	return nil
}
