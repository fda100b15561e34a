package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkotov/go-chat-bridge/internal/adapter"
	"github.com/mkotov/go-chat-bridge/internal/store"
)

// DescribeError translates a sync-engine error into a short message suitable
// for a status line. Unknown errors fall through to err.Error().
func DescribeError(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *adapter.StatusError
	switch {
	case errors.Is(err, adapter.ErrAuth):
		return "authentication failed, check the server password"
	case errors.Is(err, adapter.ErrConnectivity):
		return "server unreachable, check the address and your network"
	case errors.Is(err, adapter.ErrCreation):
		return "the server could not create the chat"
	case errors.Is(err, adapter.ErrDecode):
		return "the server sent a response this client does not understand"
	case errors.As(err, &statusErr):
		if statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden {
			return "authentication failed, check the server password"
		}
		return fmt.Sprintf("server rejected the request (HTTP %d)", statusErr.Code)
	case errors.Is(err, adapter.ErrTransport):
		return "network error while talking to the server"
	case errors.Is(err, store.ErrStorage):
		return "local cache error, conversations may not persist"
	}

	return err.Error()
}
