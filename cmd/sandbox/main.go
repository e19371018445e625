package main

import (
	"caiu-perdeu/domain"
	"caiu-perdeu/presenter"
	"caiu-perdeu/repositories"
	"caiu-perdeu/runtime"
	"caiu-perdeu/sink"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mama165/sdk-go/logs"
)

var CLI struct {
	Players []string      `arg:"" name:"players" help:"Names of the players in the voice channel. The first one starts the game."`
	Poll    time.Duration `help:"Interval between two membership samples." default:"2s"`
	Retries int           `help:"Extra attempts after a failed sample." default:"0"`
	Debug   bool          `help:"Whether to enable debug logging."`
}

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	kong.Parse(&CLI,
		kong.Name("sandbox"),
		kong.Description("Play an elimination game in the terminal. Type 'leave NAME', 'join NAME' or 'fail N' to script the voice channel."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	code, err := run(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sandbox terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run(in io.Reader, out io.Writer) (int, error) {
	config, err := LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	if CLI.Debug {
		logger = logs.GetLoggerFromLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	voice := NewVoice(CLI.Players)
	console := NewConsole(out, config.Colours)
	go voice.Feed(ctx, in, func(err error) {
		_ = console.Say(ctx, textChannelID, err.Error())
	})

	result, err := play(ctx, logger, config, voice, console)
	if err != nil {
		return exitRuntime, err
	}
	if result != nil {
		fmt.Fprintf(out, "Game over: %s after %s\n", result.Outcome, presenter.FormatDuration(result.Elapsed))
	}
	return exitOK, nil
}

// play runs one game and prints the leaderboard of the session.
// A nil result means the game never started.
func play(ctx context.Context, logger *slog.Logger, config Config, voice *Voice, console *Console) (*domain.Result, error) {
	db, err := repositories.OpenInMemory()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	repository := repositories.NewGameRepository(db, logger, nil)
	views := presenter.NewPresenter(config.BotName)

	owner := domain.Identity("")
	if len(CLI.Players) > 0 {
		owner = domain.Identity(CLI.Players[0])
	}
	game := domain.NewGame(guildID, owner, textChannelID)
	timeline := sink.NewTimeline()
	engine := runtime.NewEngine(logger,
		runtime.EngineConfig{PollInterval: CLI.Poll, FetchRetries: CLI.Retries, FetchBackoff: CLI.Poll},
		game, voice, voice, views, console, runtime.SystemClock{},
		sink.NewHistorySink(repository, logger), timeline)

	status, err := engine.CaptureAndValidate(ctx)
	if err != nil {
		return nil, err
	}
	switch status {
	case domain.ContextNotInChannel:
		return nil, console.Say(ctx, textChannelID, views.NotInChannel(owner))
	case domain.ContextTooFewOccupants:
		return nil, console.Say(ctx, textChannelID, views.TooFewOccupants())
	}

	result, err := engine.Run(ctx)
	for _, entry := range timeline.Entries() {
		_ = console.Say(ctx, textChannelID, fmt.Sprintf("[%s] %s", entry.At.Format(time.TimeOnly), entry.Text))
	}
	if err != nil {
		return nil, err
	}

	entries, err := repository.Leaderboard(guildID)
	if err != nil {
		return nil, err
	}
	if _, err := console.Send(ctx, textChannelID, views.Leaderboard(entries)); err != nil {
		return nil, err
	}
	return &result, nil
}
