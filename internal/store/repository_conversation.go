package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/models"
)

type conversationRepository struct {
	*DB
	logger *logger.Logger
}

// NewConversationCache constructs the SQLite-backed [ConversationCache].
func NewConversationCache(db *DB, logger *logger.Logger) ConversationCache {
	return &conversationRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertBatch implements [ConversationCache]. Every row is written with the
// same wall-clock timestamp inside a single transaction; a failure anywhere
// rolls the whole batch back.
func (c *conversationRepository) UpsertBatch(ctx context.Context, conversations []models.Conversation, raws []json.RawMessage) error {
	log := logger.FromContext(ctx)

	if len(conversations) == 0 {
		return nil
	}

	rawByID := pairRawDocuments(conversations, raws)
	now := time.Now().Unix()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "conversationRepository.UpsertBatch").Msg("failed to begin upsert transaction")
		return fmt.Errorf("%w: begin upsert: %v", ErrStorage, err)
	}
	defer tx.Rollback()

	for _, conversation := range conversations {
		var raw any
		if payload, ok := rawByID[conversation.ID]; ok {
			raw = string(payload)
		}

		if _, err = tx.ExecContext(ctx, upsertConversation, conversation.ID, conversation.Name, now, raw); err != nil {
			log.Err(err).
				Str("func", "conversationRepository.UpsertBatch").
				Str("id", conversation.ID).
				Msg("failed to execute conversation upsert")
			return fmt.Errorf("%w: upsert conversation (id=%s): %v", ErrStorage, conversation.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "conversationRepository.UpsertBatch").Msg("failed to commit upsert batch")
		return fmt.Errorf("%w: commit upsert: %v", ErrStorage, err)
	}

	return nil
}

// ListCached implements [ConversationCache].
func (c *conversationRepository) ListCached(ctx context.Context, limit int) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCachedQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: build list query: %v", ErrStorage, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "conversationRepository.ListCached").Msg("failed to query cached conversations")
		return nil, fmt.Errorf("%w: list cached: %v", ErrStorage, err)
	}
	defer rows.Close()

	var conversations []models.Conversation
	for rows.Next() {
		var conversation models.Conversation
		if err = rows.Scan(&conversation.ID, &conversation.Name); err != nil {
			log.Err(err).Str("func", "conversationRepository.ListCached").Msg("failed to scan cached conversation row")
			return nil, fmt.Errorf("%w: scan cached row: %v", ErrStorage, err)
		}
		conversations = append(conversations, conversation)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate cached rows: %v", ErrStorage, err)
	}

	return conversations, nil
}

// LastUpdated implements [ConversationCache].
func (c *conversationRepository) LastUpdated(ctx context.Context, id string) (int64, bool, error) {
	query, args, err := buildLastUpdatedQuery(id)
	if err != nil {
		return 0, false, fmt.Errorf("%w: build lookup query: %v", ErrStorage, err)
	}

	var updatedAt int64
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: lookup updated_at (id=%s): %v", ErrStorage, id, err)
	}

	return updatedAt, true, nil
}

// pairRawDocuments matches raw upstream documents to conversations by the id
// they project to. Raw slices carry the whole source batch including id-less
// items, so index alignment alone is not enough.
func pairRawDocuments(conversations []models.Conversation, raws []json.RawMessage) map[string]json.RawMessage {
	if raws == nil {
		return nil
	}

	byID := make(map[string]json.RawMessage, len(conversations))
	for _, raw := range raws {
		var doc struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil || doc.ID == "" {
			continue
		}
		byID[doc.ID] = raw
	}

	return byID
}
