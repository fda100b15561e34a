package store

import (
	"context"
	"fmt"

	"github.com/mkotov/go-chat-bridge/internal/config"
	"github.com/mkotov/go-chat-bridge/internal/logger"
)

// ClientStorages aggregates every local persistence backend of the client.
type ClientStorages struct {
	Conversations ConversationCache

	db *DB
}

// NewClientStorages opens the cache database, runs pending migrations and
// wires the repositories. Initialization is idempotent across startups.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect cache database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("%w: migrate cache schema: %v", ErrStorage, err)
	}

	return &ClientStorages{
		Conversations: NewConversationCache(db, log),
		db:            db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
