// Package config provides configuration management for the battle server.
//
// This package handles environment variable loading with type-safe parsing,
// applies secure production defaults, and performs extensive validation of
// all configuration values.
//
// # Loading Configuration
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// Server settings:
//   - SERVER_PORT: HTTP port (default: 8080)
//   - WEB_DIR: Static file directory (default: "./web")
//   - LOG_LEVEL: Logging verbosity (default: "info")
//
// Timeouts:
//   - SESSION_TIMEOUT: Session inactivity timeout (default: 30m)
//   - REQUEST_TIMEOUT: HTTP request timeout (default: 30s)
//
// Security:
//   - ENABLE_DEV_MODE: Enable development mode (default: true)
//   - ALLOWED_ORIGINS: CORS/WebSocket allowed origins (comma-separated)
//   - MAX_REQUEST_SIZE: Maximum request body size (default: 1MB)
//
// Rate limiting:
//   - RATE_LIMIT_ENABLED: Enable per-client-IP HTTP request rate limiting (default: false)
//   - RATE_LIMIT_REQUESTS_PER_SECOND: Requests accepted per second per client IP (default: 5)
//   - RATE_LIMIT_BURST: Burst allowance (default: 10)
//
// Retry policy (returned by GetRetryConfig; the predefined executors in
// pkg/integration use the fixed configurations from pkg/retry instead, and
// battle rule resolution never retries):
//   - RETRY_MAX_ATTEMPTS: Maximum retries (default: 3)
//   - RETRY_INITIAL_DELAY: First retry delay (default: 100ms)
//   - RETRY_MAX_DELAY: Maximum retry delay (default: 30s)
//   - RETRY_BACKOFF_MULTIPLIER: Backoff factor (default: 2.0)
//
// Persistence:
//   - DATA_DIR: Battle snapshot and static data directory (default: "./data")
//   - AUTO_SAVE_INTERVAL: Auto-save frequency (default: 30s)
//
// Battle engine:
//   - BATTLE_SEED: Default RNG seed for battles that don't supply their own.
//     Never derived from wall-clock time — an explicit seed is what makes a
//     battle's log byte-for-byte reproducible (default: 1).
//
// # Validation
//
// All configuration values are validated on load:
//   - Port must be in valid range (1-65535)
//   - Timeouts must meet minimum requirements
//   - Rate limit values must be positive
//   - Retry configuration must be sensible
//
// # CORS Support
//
// Use OriginAllowed to check WebSocket origins:
//
//	if cfg.OriginAllowed(origin) {
//	    // Allow connection
//	}
//
// In development mode (EnableDevMode=true), all origins are allowed.
//
// # Retry Configuration
//
// GetRetryConfig returns a retry.RetryConfig that can be used directly
// with the retry package:
//
//	retryConfig := cfg.GetRetryConfig()
//	retrier := retry.NewRetrier(retryConfig)
package config
