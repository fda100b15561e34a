// Package store implements the durable local conversation cache backing
// instant cold-start rendering.
//
// The cache is a single SQLite table keyed by conversation id. The store is
// the sole writer of persisted records: batches are applied in one
// transaction (all-or-nothing) so a reader never observes a half-applied
// refresh, and WAL journaling keeps concurrent reads unblocked by an
// in-progress write batch. Records are updated, never deleted, by the sync
// engine.
package store

import (
	"context"
	"encoding/json"

	"github.com/mkotov/go-chat-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/conversation_cache_mock.go -package=mock

// ConversationCache is the persistence contract of the sync engine.
type ConversationCache interface {
	// UpsertBatch writes every conversation with the current timestamp in
	// a single transaction. An existing id has its name, updated_at and
	// raw payload overwritten (last-write-wins); raws, when non-nil,
	// carries the source batch's raw documents, matched to conversations
	// by the id they project to.
	UpsertBatch(ctx context.Context, conversations []models.Conversation, raws []json.RawMessage) error

	// ListCached returns up to limit records ordered by updated_at
	// descending then name ascending. A non-positive limit falls back to
	// the default of 500.
	ListCached(ctx context.Context, limit int) ([]models.Conversation, error)

	// LastUpdated reports the write timestamp of a single record for
	// staleness decisions by callers. The second return is false when the
	// id is not cached.
	LastUpdated(ctx context.Context, id string) (int64, bool, error)
}
