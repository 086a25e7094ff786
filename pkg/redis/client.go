// Package redis manages the process-wide Upstash client used by the
// rate limiter. The connection is optional: when UPSTASH_REDIS_URL is
// absent or unreachable the limiter falls back to its in-memory
// counters, so callers treat a nil client as a soft condition.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Config carries the Upstash connection settings. URL uses the
// redis:// or rediss:// scheme; rediss enables TLS.
type Config struct {
	URL      string
	Password string
}

// Client returns the shared client, or nil when Redis was never
// configured or the startup ping failed.
func Client() *redis.Client {
	return client
}

// Initialize dials Redis once at startup. Subsequent calls are no-ops
// and return the outcome of the first attempt.
func Initialize(cfg Config) error {
	clientOnce.Do(func() {
		if cfg.URL == "" {
			clientErr = errors.New("redis: UPSTASH_REDIS_URL not configured")
			return
		}

		opts, err := buildOptions(cfg)
		if err != nil {
			clientErr = err
			return
		}

		c := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("redis: connection failed: %w", err)
			return
		}
		client = c
	})

	return clientErr
}

func buildOptions(cfg Config) (*redis.Options, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	useTLS := parsed.Scheme == "rediss"

	addr := parsed.Host
	if parsed.Port() == "" && useTLS {
		addr = parsed.Host + ":6379"
	}

	// Upstash puts the password in the URL userinfo; an explicit
	// UPSTASH_REDIS_PASSWORD wins when both are set.
	password := cfg.Password
	if password == "" && parsed.User != nil {
		password, _ = parsed.User.Password()
	}

	opts := &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}
	if useTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts, nil
}

// IsAvailable reports whether the client is up right now. The rate
// limiter consults this per request before choosing the Lua path.
func IsAvailable() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

// Close releases the connection pool during shutdown.
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// HealthCheck pings Redis with the caller's context.
func HealthCheck(ctx context.Context) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}
