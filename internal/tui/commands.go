package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/models"
)

// cmdWaitForResult blocks on the bridge result channel and converts the next
// result into a message. The handler re-arms it after every receipt so the
// channel is always being drained.
func cmdWaitForResult(ctx context.Context, tasks *bridge.Bridge) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case result := <-tasks.Results():
			return taskResultMsg{result: result}
		}
	}
}

// cmdWaitForEvent mirrors cmdWaitForResult for the server push stream.
func cmdWaitForEvent(ctx context.Context, events <-chan models.IncomingEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event := <-events:
			return serverEventMsg{event: event}
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
