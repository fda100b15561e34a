// Package tui renders the terminal front-end: a connect screen that
// validates the server address and password, and a main loop showing the
// conversation list with contact-based chat creation.
//
// All slow work happens on the async bridge; the models only dispatch
// operations and consume typed updates from the bridge's result channel.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/internal/service"
	"github.com/mkotov/go-chat-bridge/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	service   service.SessionService
	tasks     *bridge.Bridge
	buildInfo models.BuildInfo
}

func New(sessionService service.SessionService, tasks *bridge.Bridge, buildInfo models.BuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{service: sessionService, tasks: tasks, buildInfo: buildInfo}, nil
}

// ConnectFlow runs the connect screen until the user reaches the server or
// quits. The returned credentials carry the entered address, the password,
// and the session token when the exchange succeeded.
func (t *TUI) ConnectFlow(ctx context.Context, stored models.SessionCredentials) (models.SessionCredentials, error) {
	model := newConnectModel(ctx, t.service, t.tasks, stored, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.SessionCredentials{}, runErr
	}

	result, ok := finalModel.(connectModel)
	if !ok {
		return models.SessionCredentials{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.SessionCredentials{}, ErrUserQuit
	}

	return result.creds, nil
}

// MainLoop runs the conversation list screen until the user quits or asks to
// reconnect. Server push events arriving on events trigger a refresh.
func (t *TUI) MainLoop(ctx context.Context, creds models.SessionCredentials, events <-chan models.IncomingEvent) (reconnect bool, err error) {
	model := newMainModel(ctx, t.service, t.tasks, creds, events)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.reconnect, nil
}
