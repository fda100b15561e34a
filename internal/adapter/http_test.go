package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mkotov/go-chat-bridge/internal/config"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *httpBridgeAdapter {
	t.Helper()
	a := NewHTTPBridgeAdapter(config.ClientAdapter{RequestTimeout: 5 * time.Second}, logger.Nop())
	return a.(*httpBridgeAdapter)
}

// dropConn hijacks the connection and closes it without a response, so the
// client observes a transport-level failure rather than an HTTP status.
func dropConn(t *testing.T, w http.ResponseWriter) {
	t.Helper()
	hj, ok := w.(http.Hijacker)
	require.True(t, ok, "test server must support hijacking")
	conn, _, err := hj.Hijack()
	require.NoError(t, err)
	_ = conn.Close()
}

// ── NormalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"  bridge.local:1234 ", "https://bridge.local:1234", false},
		{"http://bridge.local/", "http://bridge.local", false},
		{"https://bridge.local//", "https://bridge.local", false},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing_FirstCandidateWins(t *testing.T) {
	var mu sync.Mutex
	var paths []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	status, err := a.Ping(context.Background(), srv.URL, "", "secret")

	require.NoError(t, err)
	// 401 still counts as reached; later candidates are never attempted
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, []string{"/api/v1/ping"}, paths)
}

func TestPing_FallsThroughToBareBaseURL(t *testing.T) {
	var mu sync.Mutex
	var paths []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()

		switch r.URL.Path {
		case "/api/v1/ping", "/api/ping":
			dropConn(t, w)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	status, err := a.Ping(context.Background(), srv.URL, "", "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"/api/v1/ping", "/api/ping", "/"}, paths)
}

func TestPing_AllCandidatesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dropConn(t, w)
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, err := a.Ping(context.Background(), srv.URL, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestPing_SendsAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "secret", r.Header.Get("password"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, err := a.Ping(context.Background(), srv.URL, "tok-1", "secret")
	require.NoError(t, err)
}

// ── ObtainToken ─────────────────────────────────────────────────────────────

func TestObtainToken_SecondCandidateAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("password"))

		switch r.URL.Path {
		case "/api/v1/login":
			w.WriteHeader(http.StatusNotFound)
		case "/api/v1/auth":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"accessToken":"tok-2"}`))
		default:
			t.Fatalf("unexpected candidate %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	token, err := a.ObtainToken(context.Background(), srv.URL, "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestObtainToken_TokenFieldPreferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok-a","accessToken":"tok-b"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	token, err := a.ObtainToken(context.Background(), srv.URL, "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-a", token)
}

func TestObtainToken_AllCandidatesReject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, err := a.ObtainToken(context.Background(), srv.URL, "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	// last observed cause is carried in the message
	assert.Contains(t, err.Error(), "403")
}

func TestObtainToken_SuccessWithoutTokenField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, err := a.ObtainToken(context.Background(), srv.URL, "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	assert.Contains(t, err.Error(), "token not found")
}

// ── Conversations ───────────────────────────────────────────────────────────

func TestConversations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/query", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("password"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chats":[{"id":"1","name":"Alice"},{"name":"orphan"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	conversations, raws, err := a.Conversations(context.Background(), srv.URL, "secret")

	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "Alice", conversations[0].Name)
	assert.Len(t, raws, 2)
}

func TestConversations_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, _, err := a.Conversations(context.Background(), srv.URL, "secret")

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestConversations_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chats": [`))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, _, err := a.Conversations(context.Background(), srv.URL, "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestConversations_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dropConn(t, w)
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, _, err := a.Conversations(context.Background(), srv.URL, "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Contacts ────────────────────────────────────────────────────────────────

func TestContacts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/contact", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"displayName":"Alice","address":"+1555"},{"name":"gone"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	entries, err := a.Contacts(context.Background(), srv.URL, "secret")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice (+1555)", entries[0].Label)
}

// ── CreateChat ──────────────────────────────────────────────────────────────

func TestCreateChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/new", r.URL.Path)
		_, _ = w.Write([]byte(`{"guid":"g-9","displayName":"New Group"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	conv, err := a.CreateChat(context.Background(), srv.URL, "secret", []string{"+1555"}, "hi")

	require.NoError(t, err)
	assert.Equal(t, "g-9", conv.ID)
	assert.Equal(t, "New Group", conv.Name)
}

func TestCreateChat_MissingIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, err := a.CreateChat(context.Background(), srv.URL, "secret", []string{"+1555"}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCreation)
}
