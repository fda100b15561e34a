package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	// Last-write-wins per id; the whole batch runs inside one transaction.
	upsertConversation = `
		INSERT INTO chats (id, name, updated_at, raw_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at,
			raw_json = excluded.raw_json;`
)

// defaultListLimit bounds ListCached when the caller passes no usable limit.
const defaultListLimit = 500

func buildListCachedQuery(limit int) (string, []any, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	return sq.Select("id", "name").
		From("chats").
		OrderBy("updated_at DESC", "name ASC").
		Limit(uint64(limit)).
		ToSql()
}

func buildLastUpdatedQuery(id string) (string, []any, error) {
	return sq.Select("updated_at").
		From("chats").
		Where(sq.Eq{"id": id}).
		ToSql()
}
