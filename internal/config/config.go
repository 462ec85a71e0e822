// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StructuredConfig is the top-level configuration of the gym keeper server.
// It is populated by merging environment variables, command-line flags, an
// optional JSON file and finally [Defaults].
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, session and account settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the account repository and the
	// session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the HTTP client used by gymctl.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers configures background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies bearer tokens (HS256). Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session (and its token) stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SessionHashKey is the HMAC key applied to session ids before they are
	// used as session store keys. Defaults to TokenSignKey.
	// Env: APP_SESSION_HASH_KEY
	SessionHashKey string `env:"SESSION_HASH_KEY"`

	// AdminKey unlocks the /api/admin routes via the X-Admin-Key header.
	// Empty disables them.
	// Env: APP_ADMIN_KEY
	AdminKey string `env:"ADMIN_KEY"`

	// BcryptCost is the work factor for password hashing.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// SimulatedLatency delays every account operation. Zero disables it.
	// Env: APP_SIMULATED_LATENCY
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY"`

	// Version is reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB       DB       `envPrefix:"DB_"`
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB selects the account repository backend.
type DB struct {
	// Driver is one of memory, sqlite, postgres.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string for the sqlite and postgres drivers
	// (a file path for sqlite).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions configures the session store.
type Sessions struct {
	// TTL bounds the lifetime of a stored session. Defaults to
	// App.TokenDuration.
	// Env: STORAGE_SESSIONS_TTL
	TTL time.Duration `env:"TTL"`

	// RedisAddress switches sessions to Redis when non-empty.
	// Env: STORAGE_SESSIONS_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// Env: STORAGE_SESSIONS_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: STORAGE_SESSIONS_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
}

// Server holds the inbound transport settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout caps graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter configures the outbound HTTP client.
type Adapter struct {
	// BaseURL of the gym keeper server, e.g. "http://localhost:8080".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout caps a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenFile is where gymctl keeps the bearer token between runs.
	// Env: ADAPTER_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// Workers configures background workers.
type Workers struct {
	// SessionSweepInterval is how often expired in-memory sessions are
	// purged.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// Defaults returns the values used for every field left unset by the other
// sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-gym-keeper",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    10,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{Driver: DriverMemory},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
			TokenFile:      defaultTokenFile(),
		},
		Workers: Workers{
			SessionSweepInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. [Defaults]
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig loads the configuration used by gymctl: environment,
// optional JSON file and defaults. Flags belong to the gymctl subcommands
// and are not parsed here.
func GetClientConfig() (*Adapter, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		buildUnvalidated()
	if err != nil {
		return nil, err
	}

	return &cfg.Adapter, cfg.Adapter.validate()
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".gymctl-token"
	}
	return dir + string(os.PathSeparator) + "gymctl" + string(os.PathSeparator) + "token"
}
