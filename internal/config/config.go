package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container, populated by
// merging environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Session holds the bridge server address and credentials.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds the local conversation cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds outbound transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds worker pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Session holds the server address and credentials as loaded from the
// environment. Values collected interactively through the login screen
// override empty fields at runtime.
type Session struct {
	// BaseURL is the bridge server root.
	// Env: SESSION_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Password is the shared server password.
	// Env: SESSION_PASSWORD
	Password string `env:"PASSWORD"`

	// Token is an optional bearer token from a previous login.
	// Env: SESSION_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the cache database location.
type DB struct {
	// DSN is the SQLite file path of the conversation cache. Defaults to
	// cache.sqlite under the user cache directory.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the HTTP transport layer.
type Adapter struct {
	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers contains background execution settings.
type Workers struct {
	// PoolSize bounds the number of concurrent network/disk tasks.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// validate checks the merged [StructuredConfig] before the client view is
// derived. Credentials may legitimately be absent (the login screen collects
// them), so only structural fields are checked here.
func (cfg *StructuredConfig) validate() error {
	return nil
}
