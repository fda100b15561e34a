package tui

import (
	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/models"
)

// taskResultMsg wraps one result drained from the bridge channel. The typed
// update lives in Result.Value.
type taskResultMsg struct {
	result bridge.Result
}

// serverEventMsg wraps one push event from the event stream listener.
type serverEventMsg struct {
	event models.IncomingEvent
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
