package models

// Conversation is the minimal projection of an upstream chat document that the
// presentation layer renders. ID is the stable identity used for cache upserts;
// re-fetching the same ID must update the cached record, never duplicate it.
type Conversation struct {
	// ID is the server-assigned identifier (GUID on most deployments).
	// Never empty: items without an id are dropped during projection.
	ID string `json:"id"`

	// Name is the display label. Upstream documents that carry no usable
	// name field are projected with the "Chat" placeholder.
	Name string `json:"name"`
}

// CachedConversationRecord is the persisted superset of [Conversation] stored
// in the local cache. RawPayload preserves the full upstream document so that
// fields not modeled here survive a round trip through the cache.
type CachedConversationRecord struct {
	// ID is the conversation identity and the cache primary key.
	ID string `json:"id"`

	// Name is the display label at the time of the last write.
	Name string `json:"name"`

	// UpdatedAt is the epoch-seconds timestamp of the last write to this
	// record. Display ordering is UpdatedAt descending, Name ascending.
	UpdatedAt int64 `json:"updated_at"`

	// RawPayload is the opaque serialized upstream document, if the batch
	// that produced this record carried one. May be nil.
	RawPayload []byte `json:"raw_payload,omitempty"`
}
