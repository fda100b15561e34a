package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkotov/go-chat-bridge/internal/config"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/migrations"
)

// DB wraps the sql.DB handle of the cache file.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// NewConnectSQLite opens (creating if needed) the cache database at cfg.DSN,
// verifies the connection and switches the journal to WAL so readers are not
// blocked by write batches. Safe to call on every startup.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := createCacheFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating cache database file")
		return nil, fmt.Errorf("%w: create cache file: %v", ErrStorage, err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening cache database")
		return nil, fmt.Errorf("%w: open: %v", ErrStorage, err)
	}

	if cfg.DSN == ":memory:" {
		// a pooled :memory: DSN opens one database per connection
		conn.SetMaxOpenConns(1)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting cache database (ping)")
		return nil, fmt.Errorf("%w: ping: %v", ErrStorage, err)
	}

	if _, err = conn.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error enabling WAL journal mode")
		return nil, fmt.Errorf("%w: enable wal: %v", ErrStorage, err)
	}

	if _, err = conn.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error setting busy timeout")
		return nil, fmt.Errorf("%w: busy timeout: %v", ErrStorage, err)
	}

	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to cache database")

	return &DB{DB: conn, logger: log}, nil
}

func createCacheFileIfNotExists(dsn string) error {
	if dsn == ":memory:" || dsn == "" {
		return nil
	}

	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	if _, err := os.Stat(dsn); os.IsNotExist(err) {
		f, err := os.Create(dsn)
		if err != nil {
			return fmt.Errorf("create cache file: %w", err)
		}
		f.Close()
	}

	return nil
}
