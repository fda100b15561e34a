package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/mkotov/go-chat-bridge/models"
)

// defaultChatName is used when an upstream chat document carries none of the
// recognized name fields.
const defaultChatName = "Chat"

// unwrapList normalizes the three response shapes bridge servers produce for
// list endpoints: a bare JSON array, or an object with the array under one of
// the given keys (tried in order). An object with none of the keys normalizes
// to an empty list; only malformed JSON is an error.
func unwrapList(body []byte, keys ...string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
	}

	return nil, nil
}

// firstString returns the value of the first key in keys that holds a
// non-empty JSON string in doc. Ordered fallback: most specific key first.
func firstString(doc map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := doc[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// projectConversations converts raw chat documents into the Conversation
// projection. Raw documents are paired with their projection by index before
// filtering, so the returned raw slice contains every item of the source
// batch while the projected slice drops items without an id.
func projectConversations(items []json.RawMessage) ([]models.Conversation, []json.RawMessage) {
	conversations := make([]models.Conversation, 0, len(items))

	for _, item := range items {
		var doc map[string]any
		if err := json.Unmarshal(item, &doc); err != nil {
			continue
		}

		id := firstString(doc, "id")
		if id == "" {
			continue
		}

		name := firstString(doc, "name", "display_name", "title", "displayName")
		if name == "" {
			name = defaultChatName
		}

		conversations = append(conversations, models.Conversation{ID: id, Name: name})
	}

	return conversations, items
}

// projectContacts converts raw contact documents into ContactEntry values.
// Entries without a routing address are dropped; the label combines name and
// address when a display name is present.
func projectContacts(items []json.RawMessage) []models.ContactEntry {
	entries := make([]models.ContactEntry, 0, len(items))

	for _, item := range items {
		var doc map[string]any
		if err := json.Unmarshal(item, &doc); err != nil {
			continue
		}

		address := firstString(doc, "address", "phone", "email", "id")
		if address == "" {
			continue
		}

		label := address
		if name := firstString(doc, "displayName", "name"); name != "" {
			label = fmt.Sprintf("%s (%s)", name, address)
		}

		entries = append(entries, models.ContactEntry{Label: label, Address: address})
	}

	return entries
}

// projectCreatedChat extracts the Conversation identity from a chat-creation
// response document.
func projectCreatedChat(body []byte) (models.Conversation, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	id := firstString(doc, "guid", "id")
	if id == "" {
		return models.Conversation{}, ErrCreation
	}

	name := firstString(doc, "name", "displayName")
	if name == "" {
		name = defaultChatName
	}

	return models.Conversation{ID: id, Name: name}, nil
}
