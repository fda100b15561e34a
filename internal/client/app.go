package client

import (
	"context"
	"errors"

	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/internal/config"
	"github.com/mkotov/go-chat-bridge/internal/events"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/internal/service"
	"github.com/mkotov/go-chat-bridge/internal/tui"
	"github.com/mkotov/go-chat-bridge/internal/workers"
	"github.com/mkotov/go-chat-bridge/models"
)

type App struct {
	cfg     *config.ClientConfig
	service service.SessionService
	ui      *tui.TUI
	pool    *bridge.Pool
	logger  *logger.Logger
}

func NewApp(cfg *config.ClientConfig, sessionService service.SessionService, ui *tui.TUI, pool *bridge.Pool, log *logger.Logger) (*App, error) {
	return &App{
		cfg:     cfg,
		service: sessionService,
		ui:      ui,
		pool:    pool,
		logger:  log,
	}, nil
}

// Run drives the whole session: connect screen, event stream subscription,
// main loop, reconnect on request. Returns nil when the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	creds, err := a.ui.ConnectFlow(ctx, a.startingCredentials())
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	if err = config.SaveCredentials(creds); err != nil {
		a.logger.Warn().Err(err).Msg("persist session credentials")
	}

	eventsCtx, stopEvents := context.WithCancel(ctx)
	listener := events.NewListener(creds, a.logger)
	background := workers.NewWorkers(listener)
	background.Run(eventsCtx)

	reconnect, err := a.ui.MainLoop(ctx, creds, listener.Events())

	stopEvents()
	background.Wait()

	if err != nil {
		return err
	}
	if reconnect {
		return a.Run()
	}

	// let in-flight tasks finish before the caller tears the storages down
	a.pool.Wait()
	return nil
}

// startingCredentials merges the persisted session with the configuration
// layer; explicitly configured values win over the stored ones.
func (a *App) startingCredentials() models.SessionCredentials {
	stored, err := config.LoadCredentials()
	if err != nil {
		a.logger.Warn().Err(err).Msg("load stored session credentials")
	}

	if a.cfg.Session.BaseURL != "" {
		stored.BaseURL = a.cfg.Session.BaseURL
	}
	if a.cfg.Session.Password != "" {
		stored.Password = a.cfg.Session.Password
	}
	if a.cfg.Session.Token != "" {
		stored.Token = a.cfg.Session.Token
	}
	return stored
}
