package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mkotov/go-chat-bridge/internal/config"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/models"
)

type httpBridgeAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// conversationQuery is the fixed request body of the chat-query endpoint.
// Related documents are requested inline and the server sorts by the time of
// the last message so the freshest conversations arrive first.
type conversationQuery struct {
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
	With   []string `json:"with"`
	Sort   string   `json:"sort"`
}

// NewHTTPBridgeAdapter constructs the HTTP/REST implementation of
// [BridgeAdapter]. The underlying resty client is shared across operations
// and carries the configured request timeout; base URLs are supplied per call
// by the session owner.
func NewHTTPBridgeAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) BridgeAdapter {
	client := resty.New().SetTimeout(adapterCfg.RequestTimeout)

	return &httpBridgeAdapter{client: client, logger: logger}
}

// NormalizeBaseURL validates and canonicalizes a user-supplied server address:
// whitespace trimmed, https scheme assumed when missing, trailing slashes
// removed.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// apiBase appends the /api prefix unless the deployment already serves the
// API at the given root.
func apiBase(baseURL string) string {
	trimmed := strings.TrimRight(baseURL, "/")
	if strings.HasSuffix(trimmed, "/api") {
		return trimmed
	}
	return trimmed + "/api"
}

// pingCandidates returns the ordered liveness probes: versioned ping first,
// then unversioned, then the bare server root.
func pingCandidates(baseURL string) []string {
	base := apiBase(baseURL)
	return []string{
		base + "/v1/ping",
		base + "/ping",
		strings.TrimRight(baseURL, "/"),
	}
}

// tokenCandidates returns the ordered login probes covering both naming
// conventions in versioned and unversioned form.
func tokenCandidates(baseURL string) []string {
	base := apiBase(baseURL)
	return []string{
		base + "/v1/login",
		base + "/v1/auth",
		base + "/login",
		base + "/auth",
	}
}

// Ping implements [BridgeAdapter]. Reachability is the goal, not success:
// the status code of the first completed request is returned as-is, and the
// remaining candidates are never attempted.
func (h *httpBridgeAdapter) Ping(ctx context.Context, baseURL, token, password string) (int, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for _, endpoint := range pingCandidates(baseURL) {
		req := h.client.R().SetContext(ctx)
		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		if password != "" {
			req.SetHeader("password", password)
		}

		resp, err := req.Get(endpoint)
		if err != nil {
			log.Debug().Str("endpoint", endpoint).Err(err).Msg("ping candidate failed")
			lastErr = err
			continue
		}

		return resp.StatusCode(), nil
	}

	return 0, fmt.Errorf("%w: %v", ErrConnectivity, lastErr)
}

// ObtainToken implements [BridgeAdapter]. Every candidate failure mode
// (transport error, non-success status, success without a token field) is
// remembered so the error after exhaustion reports the last observed cause.
func (h *httpBridgeAdapter) ObtainToken(ctx context.Context, baseURL, password string) (string, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for _, endpoint := range tokenCandidates(baseURL) {
		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("password", password).
			Post(endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		if err = mapHTTPError(resp); err != nil {
			lastErr = err
			continue
		}

		var payload struct {
			Token       string `json:"token"`
			AccessToken string `json:"accessToken"`
		}
		if err = json.Unmarshal(resp.Body(), &payload); err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrDecode, err)
			continue
		}

		if payload.Token != "" {
			return payload.Token, nil
		}
		if payload.AccessToken != "" {
			return payload.AccessToken, nil
		}

		log.Debug().Str("endpoint", endpoint).Msg("login response without token field")
		lastErr = fmt.Errorf("token not found in response")
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("failed to obtain token")
	}
	return "", fmt.Errorf("%w: %v", ErrAuth, lastErr)
}

// Conversations implements [BridgeAdapter]. It POSTs the fixed chat query,
// normalizes the three known response shapes and projects the result; the raw
// item documents are returned unfiltered for write-through caching.
func (h *httpBridgeAdapter) Conversations(ctx context.Context, baseURL, password string) ([]models.Conversation, []json.RawMessage, error) {
	query := conversationQuery{
		Limit:  1000,
		Offset: 0,
		With:   []string{"lastMessage", "sms", "archived"},
		Sort:   "lastmessage",
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("password", password).
		SetBody(query).
		Post(strings.TrimRight(baseURL, "/") + "/api/v1/chat/query")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, fmt.Errorf("conversations query: %w", err)
	}

	items, err := unwrapList(resp.Body(), "chats", "data")
	if err != nil {
		return nil, nil, fmt.Errorf("decode conversations response: %w", err)
	}

	conversations, raws := projectConversations(items)
	return conversations, raws, nil
}

// Contacts implements [BridgeAdapter].
func (h *httpBridgeAdapter) Contacts(ctx context.Context, baseURL, password string) ([]models.ContactEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("password", password).
		Get(strings.TrimRight(baseURL, "/") + "/api/v1/contact")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("contacts request: %w", err)
	}

	items, err := unwrapList(resp.Body(), "data")
	if err != nil {
		return nil, fmt.Errorf("decode contacts response: %w", err)
	}

	return projectContacts(items), nil
}

// CreateChat implements [BridgeAdapter].
func (h *httpBridgeAdapter) CreateChat(ctx context.Context, baseURL, password string, addresses []string, message string) (models.Conversation, error) {
	body := map[string]any{
		"addresses": addresses,
		"message":   message,
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("password", password).
		SetBody(body).
		Post(strings.TrimRight(baseURL, "/") + "/api/v1/chat/new")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, fmt.Errorf("create chat: %w", err)
	}

	conversation, err := projectCreatedChat(resp.Body())
	if err != nil {
		return models.Conversation{}, fmt.Errorf("create chat response: %w", err)
	}

	return conversation, nil
}
