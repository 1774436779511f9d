// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the custody
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds owner credentials, token parameters and the version.
	App App `envPrefix:"APP_"`

	// Component holds the construction parameters of the custody component.
	Component Component `envPrefix:"COMPONENT_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control
// authentication, request integrity and versioning.
type App struct {
	// OwnerSecret is exchanged for an owner token at /api/auth/owner.
	// Env: APP_OWNER_SECRET
	OwnerSecret string `env:"OWNER_SECRET"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-custody"`

	// TokenDuration specifies how long an owner token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"1h"`

	// HashKey is the HMAC key for the Hash body integrity header on mint
	// routes. Clients must sign with the same key.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

// Component holds the parameters the custody component is constructed with
// when no snapshot exists yet.
type Component struct {
	TokenSymbol        string   `env:"TOKEN_SYMBOL" envDefault:"CSTD"`
	TokenName          string   `env:"TOKEN_NAME" envDefault:"Custody Token"`
	CollectionName     string   `env:"COLLECTION_NAME" envDefault:"Custody Collection"`
	ConfidentialSymbol string   `env:"CONFIDENTIAL_SYMBOL" envDefault:"cCSTD"`
	InitialSupply      int64    `env:"INITIAL_SUPPLY" envDefault:"1000"`
	InitialItems       []uint64 `env:"INITIAL_ITEMS" envDefault:"1,2"`

	// ConfidentialSeedValue is the hidden amount the confidential vault
	// starts with.
	ConfidentialSeedValue uint64 `env:"CONFIDENTIAL_SEED_VALUE" envDefault:"1000"`

	// ConfidentialSeedBlinding is the hex-encoded blinding factor of the
	// seed commitment. A random one is generated and logged when empty.
	ConfidentialSeedBlinding string `env:"CONFIDENTIAL_SEED_BLINDING"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: postgres:// and postgresql:// URLs open
	// PostgreSQL through pgx, anything else is a SQLite file path
	// (e.g. "file:custody.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SnapshotInterval is how often component state is persisted.
	// Zero disables periodic snapshots; state is still saved on shutdown.
	// Env: WORKERS_SNAPSHOT_INTERVAL
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"30s"`
}

// GetStructuredConfig loads, merges, and validates the server
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
