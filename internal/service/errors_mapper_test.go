package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkotov/go-chat-bridge/internal/adapter"
	"github.com/mkotov/go-chat-bridge/internal/store"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "auth sentinel",
			err:  fmt.Errorf("obtain token: %w", adapter.ErrAuth),
			want: "authentication failed, check the server password",
		},
		{
			name: "connectivity",
			err:  fmt.Errorf("probe server: %w", adapter.ErrConnectivity),
			want: "server unreachable, check the address and your network",
		},
		{
			name: "unauthorized status",
			err:  fmt.Errorf("fetch conversations: %w", &adapter.StatusError{Code: 401}),
			want: "authentication failed, check the server password",
		},
		{
			name: "other status",
			err:  fmt.Errorf("fetch conversations: %w", &adapter.StatusError{Code: 500, Body: "boom"}),
			want: "server rejected the request (HTTP 500)",
		},
		{
			name: "transport",
			err:  fmt.Errorf("fetch contacts: %w", adapter.ErrTransport),
			want: "network error while talking to the server",
		},
		{
			name: "decode",
			err:  fmt.Errorf("fetch contacts: %w", adapter.ErrDecode),
			want: "the server sent a response this client does not understand",
		},
		{
			name: "creation",
			err:  fmt.Errorf("create chat: %w", adapter.ErrCreation),
			want: "the server could not create the chat",
		},
		{
			name: "storage",
			err:  fmt.Errorf("persist conversations: %w", store.ErrStorage),
			want: "local cache error, conversations may not persist",
		},
		{
			name: "unknown falls through",
			err:  errors.New("something odd"),
			want: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeError(tt.err))
		})
	}
}
