// Package adapter provides the transport layer for communicating with a
// self-hosted chat-bridge server.
//
// Bridge deployments are inconsistently configured: the API may live under
// /api or at the root, liveness and login endpoints come in versioned and
// unversioned flavors, and authentication is a password header, a password
// query parameter, or a bearer token depending on the route. The adapter
// therefore probes a fixed, ordered candidate list per operation instead of
// assuming a single contract; walking that list once is the entire retry
// policy.
//
// Error values defined in errors.go classify failures so that callers can use
// [errors.Is]/[errors.As] without inspecting transport details:
// [ErrConnectivity] when no candidate endpoint completed, [ErrAuth] when no
// candidate yielded a usable token, [StatusError] for a reached-but-failing
// HTTP status, [ErrDecode] for unparseable response bodies and [ErrCreation]
// for a success response missing the chat identity.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/mkotov/go-chat-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_adapter_mock.go -package=mock

// BridgeAdapter defines transport-agnostic communication with a chat-bridge
// server. All operations take the base URL and credentials per call: the
// session owner may repoint the client at a different server without
// rebuilding the transport.
type BridgeAdapter interface {
	// Ping probes the ordered liveness candidates (versioned ping,
	// unversioned ping, bare base URL) and returns the HTTP status code of
	// the first candidate that completes a request. Any status counts as
	// reachable. Returns an error wrapping [ErrConnectivity] only when
	// every candidate fails at the transport level.
	Ping(ctx context.Context, baseURL, token, password string) (int, error)

	// ObtainToken walks the ordered login candidates with a POST carrying
	// the password header and returns the first recognizable token
	// (field "token" or "accessToken") from a success response. Returns an
	// error wrapping [ErrAuth] when the candidate list is exhausted.
	ObtainToken(ctx context.Context, baseURL, password string) (string, error)

	// Conversations fetches the chat list via the chat-query endpoint.
	// Returns the projected conversations (items without an id are
	// dropped) together with the raw per-item documents of the same source
	// batch, raw list unfiltered, for write-through caching.
	Conversations(ctx context.Context, baseURL, password string) ([]models.Conversation, []json.RawMessage, error)

	// Contacts fetches the contact list used by the new-conversation
	// picker. Entries without a routing address are dropped.
	Contacts(ctx context.Context, baseURL, password string) ([]models.ContactEntry, error)

	// CreateChat asks the server to start a conversation with the given
	// addresses and optional first message. Returns an error wrapping
	// [ErrCreation] when the success response carries no chat identity.
	CreateChat(ctx context.Context, baseURL, password string, addresses []string, message string) (models.Conversation, error)
}
