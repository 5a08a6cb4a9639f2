package server

import (
	"log/slog"
	"time"

	"github.com/tether-dev/tether/pkg/bind"
)

// Config holds server and session settings.
type Config struct {
	// StoreKey is the scope key sessions publish the shared store under.
	// Defaults to bind.DefaultStoreKey.
	StoreKey string

	// PingInterval is how often sessions ping the client.
	PingInterval time.Duration

	// ReadTimeout is the per-message read deadline.
	ReadTimeout time.Duration

	// WriteTimeout is the per-message write deadline.
	WriteTimeout time.Duration

	// TracerName names the otel tracer used for render spans.
	TracerName string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// defaultConfig returns the default server configuration.
func defaultConfig() Config {
	return Config{
		StoreKey:     bind.DefaultStoreKey,
		PingInterval: 30 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 10 * time.Second,
		TracerName:   "tether",
	}
}

// Option configures the server.
type Option func(*Config)

// WithStoreKey sets the scope key the store is published under.
func WithStoreKey(key string) Option {
	return func(c *Config) {
		c.StoreKey = key
	}
}

// WithPingInterval sets the client ping interval.
func WithPingInterval(d time.Duration) Option {
	return func(c *Config) {
		c.PingInterval = d
	}
}

// WithReadTimeout sets the per-message read deadline.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.ReadTimeout = d
	}
}

// WithWriteTimeout sets the per-message write deadline.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.WriteTimeout = d
	}
}

// WithTracerName sets the otel tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// logger returns the effective logger.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
