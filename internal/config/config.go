// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for the go-sky-client
// application. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the page size used for
	// paginated fetches and the application version.
	App App `envPrefix:"APP_"`

	// Service holds settings for the AT Protocol service the client talks
	// to (PDS endpoint and request timeout).
	Service Service `envPrefix:"SERVICE_"`

	// Storage holds settings for the local SQLite database shared by the
	// client and the widget command.
	Storage Storage `envPrefix:"STORAGE_"`

	// Vault holds settings for the at-rest encryption of persisted
	// session credentials.
	Vault Vault `envPrefix:"VAULT_"`

	// Jobs holds intervals for the background jobs (session refresh and
	// widget summary snapshot).
	Jobs Jobs `envPrefix:"JOBS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PageSize is the number of items requested per paginated fetch
	// (timeline, author feed, notifications). The server may return fewer.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxFeedItems caps how many items a single feed accumulates on the
	// client; older items are evicted once the cap is exceeded. Zero means
	// unbounded.
	// Env: APP_MAX_FEED_ITEMS
	MaxFeedItems int `env:"MAX_FEED_ITEMS"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Service holds settings for the upstream AT Protocol service.
type Service struct {
	// Endpoint is the base URL of the PDS, e.g. "https://bsky.social".
	// Env: SERVICE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound XRPC request (e.g. "15s", "1m").
	// Env: SERVICE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// Path is the filesystem path of the SQLite database file. The widget
	// command opens the same file read-only, so it plays the role of the
	// shared app-group container.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Vault holds settings for sealing persisted session credentials.
type Vault struct {
	// Passphrase is the secret the session vault key is derived from.
	// Must be kept confidential. When empty, sessions are not persisted
	// across restarts and every start requires an interactive login.
	// Env: VAULT_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Jobs holds configuration for background worker processes.
type Jobs struct {
	// SummaryInterval defines how often the widget summary snapshot is
	// rewritten (e.g. "5m").
	// Env: JOBS_SUMMARY_INTERVAL
	SummaryInterval time.Duration `env:"SUMMARY_INTERVAL"`

	// RefreshAhead defines how long before access-token expiry the
	// session is refreshed proactively (e.g. "2m").
	// Env: JOBS_REFRESH_AHEAD
	RefreshAhead time.Duration `env:"REFRESH_AHEAD"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero
// value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
