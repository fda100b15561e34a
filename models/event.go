package models

import "encoding/json"

// IncomingEvent is the envelope pushed by the bridge server over its WebSocket
// surface. Data stays raw: event payload handling is presentation-layer glue
// and is not interpreted by the sync engine.
type IncomingEvent struct {
	Type string          `json:"event_type"`
	Data json.RawMessage `json:"data"`
}
