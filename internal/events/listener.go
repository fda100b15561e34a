// Package events maintains a websocket subscription to the bridge server's
// event stream. Incoming events are decoded into models.IncomingEvent and
// fanned out over a buffered channel; the connection is re-established with
// backoff whenever it drops.
package events

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mkotov/go-chat-bridge/internal/adapter"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/models"
)

const (
	eventsPath       = "/api/v1/events"
	eventBufferSize  = 32
	handshakeTimeout = 10 * time.Second
	readTimeout      = 90 * time.Second
	writeTimeout     = 10 * time.Second
	pingInterval     = 30 * time.Second
	maxRetryDelay    = 30 * time.Second
)

// Listener subscribes to the server's event stream and republishes decoded
// events. A Listener is single-use: construct, Run, then let ctx cancellation
// tear it down.
type Listener struct {
	creds  models.SessionCredentials
	dialer *websocket.Dialer
	events chan models.IncomingEvent
	logger *logger.Logger
}

func NewListener(creds models.SessionCredentials, log *logger.Logger) *Listener {
	child := log.GetChildLogger()
	child.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("component", "events")
	})

	return &Listener{
		creds: creds,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
		events: make(chan models.IncomingEvent, eventBufferSize),
		logger: child,
	}
}

// Events returns the channel decoded events are published on. Events arriving
// while the buffer is full are dropped.
func (l *Listener) Events() <-chan models.IncomingEvent {
	return l.events
}

// Run connects to the event stream and keeps reading until ctx is cancelled.
// Connection drops trigger a reconnect with linearly growing delay capped at
// maxRetryDelay.
func (l *Listener) Run(ctx context.Context) {
	streamURL, err := EventsURL(l.creds.BaseURL, l.creds.Password)
	if err != nil {
		l.logger.Error().Err(err).Msg("bad event stream address, listener disabled")
		return
	}

	attempt := 0
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := l.dialer.DialContext(ctx, streamURL, nil)
		if err != nil {
			attempt++
			delay := time.Duration(attempt) * time.Second
			if delay > maxRetryDelay {
				delay = maxRetryDelay
			}
			l.logger.Warn().Err(err).Dur("retry_in", delay).Msg("event stream dial failed")

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			continue
		}

		attempt = 0
		l.logger.Info().Msg("event stream connected")
		l.readLoop(ctx, conn)
	}
}

func (l *Listener) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	pingCtx, stopPing := context.WithCancel(ctx)
	defer stopPing()
	go l.pingLoop(pingCtx, conn)

	for {
		var event models.IncomingEvent
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() == nil {
				l.logger.Warn().Err(err).Msg("event stream read failed, reconnecting")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		select {
		case l.events <- event:
		default:
			l.logger.Warn().Str("event_type", event.Type).Msg("event buffer full, dropping event")
		}
	}
}

// pingLoop keeps the connection alive. A failed ping write makes the read
// loop's next deadline expire, which triggers the reconnect.
func (l *Listener) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// EventsURL derives the websocket event stream address from the configured
// server address. https maps to wss, http to ws.
func EventsURL(baseURL, password string) (string, error) {
	normalized, err := adapter.NormalizeBaseURL(baseURL)
	if err != nil {
		return "", fmt.Errorf("normalize server address %q: %w", baseURL, err)
	}

	parsed, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("parse server address %q: %w", baseURL, err)
	}

	switch parsed.Scheme {
	case "https":
		parsed.Scheme = "wss"
	case "http":
		parsed.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported scheme %q in server address", parsed.Scheme)
	}

	parsed.Path = eventsPath
	query := parsed.Query()
	query.Set("password", password)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
