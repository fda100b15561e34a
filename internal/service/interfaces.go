// Package service orchestrates synchronisation between the remote bridge
// server and the local conversation cache. Every operation is scheduled on
// the async bridge and publishes a typed update value through its result
// channel; domain failures travel inside the update value, the bridge's own
// Err field is reserved for task-level failures such as panics.
package service

import (
	"context"

	"github.com/mkotov/go-chat-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_service_mock.go -package=mock

// SessionService is the client-side contract for the sync engine. Each method
// returns the task ID of the scheduled background operation; the caller
// correlates results by the update value's type rather than by ID.
type SessionService interface {
	// Connect probes the server with the given credentials. When a password
	// is set and no token is stored yet it also attempts a best-effort token
	// exchange; a failed exchange does not fail the connect.
	Connect(ctx context.Context, creds models.SessionCredentials) string

	// LoadConversations publishes the cached conversation list immediately
	// when one exists, then fetches the live list from the server, persists
	// it, and republishes the reconciled cache contents.
	LoadConversations(ctx context.Context, creds models.SessionCredentials) string

	// LoadContacts fetches the server-side contact list.
	LoadContacts(ctx context.Context, creds models.SessionCredentials) string

	// CreateConversation asks the server to start a new chat with the given
	// participant addresses and an initial message, persists the created
	// chat, and republishes the cached list.
	CreateConversation(ctx context.Context, creds models.SessionCredentials, addresses []string, message string) string
}

// ConnectUpdate reports the outcome of a connectivity probe.
type ConnectUpdate struct {
	// Status is the HTTP status code of the first successful ping candidate.
	Status int
	// Token is a freshly obtained session token, empty when the exchange
	// was skipped or failed.
	Token string
	Err   error
}

// ConversationsUpdate carries a conversation list snapshot.
//
// A provisional update comes straight from the local cache before the network
// round-trip finishes. A reconciled update follows with Provisional false.
// When the fetch succeeded but the cache write failed, Conversations holds
// the fetched (unpersisted) list and StorageErr the write failure.
type ConversationsUpdate struct {
	Conversations []models.Conversation
	Provisional   bool
	Err           error
	StorageErr    error
}

// ContactsUpdate carries the server-side contact list.
type ContactsUpdate struct {
	Contacts []models.ContactEntry
	Err      error
}

// ChatCreatedUpdate reports the outcome of a chat creation request. A
// successful creation is followed by a reconciled [ConversationsUpdate]
// carrying the refreshed cache contents. StorageErr is set when the chat was
// created remotely but could not be written to the cache.
type ChatCreatedUpdate struct {
	Conversation models.Conversation
	Err          error
	StorageErr   error
}
