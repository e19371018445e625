package main

import (
	"caiu-perdeu/infrastructure/discord"
	"caiu-perdeu/infrastructure/grpc/health"
	"caiu-perdeu/observability"
	"caiu-perdeu/presenter"
	"caiu-perdeu/repositories"
	"caiu-perdeu/runtime"
	"caiu-perdeu/runtime/workers"
	"caiu-perdeu/services"
	"caiu-perdeu/sink"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal is received.
// Deferred cleanups run before main exits with the returned code.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Result history, in memory only
	db, err := repositories.OpenInMemory()
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	if config.DebugPort > 0 {
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
		database.StartDebugServer(db, config.DebugPort, "/inspect", repositories.ResultMapper)
	}
	repository := repositories.NewGameRepository(db, logger, config.HistoryLimit)

	// 3. Discord session
	session, err := discord.NewSession(config.DiscordToken)
	if err != nil {
		return exitRuntime, fmt.Errorf("discord session failed: %w", err)
	}
	directory := discord.NewVoiceDirectory(session.State)
	publisher := discord.NewPublisher(session)

	// 4. Game service
	monitoring := observability.NewMonitoringManager(logger)
	fanout := workers.NewEventFanout(logger, config.EventBufferSize, config.SinkTimeout,
		monitoring, sink.NewHistorySink(repository, logger))
	engineConfig := runtime.EngineConfig{
		PollInterval: config.PollInterval,
		FetchRetries: config.FetchRetries,
		FetchBackoff: config.FetchBackoff,
	}
	gameService := services.NewGameService(logger, engineConfig,
		directory, directory, presenter.NewPresenter(config.BotName), publisher,
		runtime.SystemClock{}, repository, fanout)
	handler := discord.NewCommandHandler(logger, session, gameService)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised workers
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	supervisor.Add(
		fanout,
		gameService,
		discord.NewGateway(logger, session, handler, config.CommandGuildID),
		health.NewWorker(logger, config.HealthPort),
		workers.NewHeartbeatWorker(logger, config.HeartbeatInterval, monitoring),
	)

	logger.Info("Starting bot", "poll_interval", config.PollInterval, "health_port", config.HealthPort)
	supervisor.Run(ctx)
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
