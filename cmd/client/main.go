package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/mkotov/go-chat-bridge/internal/adapter"
	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/internal/client"
	"github.com/mkotov/go-chat-bridge/internal/config"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/internal/service"
	"github.com/mkotov/go-chat-bridge/internal/store"
	"github.com/mkotov/go-chat-bridge/internal/tui"
	"github.com/mkotov/go-chat-bridge/models"
)

// Injected via -ldflags at build time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	// optional .env next to the binary, real env vars take precedence
	_ = godotenv.Load()

	log := logger.NewClientLogger("chat-bridge-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	bridgeAdapter := adapter.NewHTTPBridgeAdapter(cfg.Adapter, log)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	pool := bridge.NewPool(cfg.Workers.PoolSize)
	tasks := bridge.New(pool, log)

	sessionService := service.NewSessionService(bridgeAdapter, storages.Conversations, tasks, log)

	ui, err := tui.New(sessionService, tasks, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, sessionService, ui, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
