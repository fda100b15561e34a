package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mkotov/go-chat-bridge/models"
)

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings.
type ClientDB struct {
	// DSN is the SQLite file path of the conversation cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local cache database settings.
	DB ClientDB
}

// ClientWorkers contains worker pool settings.
type ClientWorkers struct {
	// PoolSize bounds concurrent network/disk tasks.
	PoolSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Session carries the credentials handed to the sync engine.
	Session models.SessionCredentials
	// Adapter contains transport timeouts.
	Adapter ClientAdapter
	// Storage contains cache settings.
	Storage ClientStorage
	// Workers contains worker pool settings.
	Workers ClientWorkers
}

// Defaults applied when neither env, flags, nor the JSON file set a value.
const (
	defaultRequestTimeout = 30 * time.Second
	defaultPoolSize       = 4
)

// GetClientConfig builds and validates the client view of the merged
// structured configuration, applying defaults for the cache location, request
// timeout and pool size.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Session: models.SessionCredentials{
			BaseURL:  cfg.Session.BaseURL,
			Password: cfg.Session.Password,
			Token:    cfg.Session.Token,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{PoolSize: cfg.Workers.PoolSize},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.PoolSize == 0 {
		cfg.Workers.PoolSize = defaultPoolSize
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultCachePath()
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PoolSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// defaultCachePath places the cache under the user cache directory, falling
// back to the working directory when the platform reports none.
func defaultCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "cache.sqlite"
	}
	return filepath.Join(base, "go-chat-bridge", "cache.sqlite")
}
