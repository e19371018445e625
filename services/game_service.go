package services

import (
	"caiu-perdeu/contract"
	"caiu-perdeu/domain"
	"caiu-perdeu/errors"
	"caiu-perdeu/runtime"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
)

type IGameService interface {
	Handle(ctx context.Context, cmd domain.Command) error
	Play(ctx context.Context, cmd domain.PlayCommand) (domain.ContextStatus, error)
	Running(guildID string) bool
}

// GameService runs at most one game per guild.
// Games outlive the command that started them: they run under the context given to Run.
type GameService struct {
	mu         sync.Mutex
	wg         sync.WaitGroup
	ctx        context.Context
	log        *slog.Logger
	cfg        runtime.EngineConfig
	source     contract.MembershipSource
	resolver   contract.ChannelResolver
	presenter  contract.Presenter
	publisher  contract.Publisher
	clock      contract.Clock
	repository contract.IGameRepository
	sinks      []contract.EventSink
	games      map[string]*runtime.Engine
}

func NewGameService(log *slog.Logger, cfg runtime.EngineConfig,
	source contract.MembershipSource, resolver contract.ChannelResolver,
	presenter contract.Presenter, publisher contract.Publisher, clock contract.Clock,
	repository contract.IGameRepository, sinks ...contract.EventSink) *GameService {
	return &GameService{
		log:        log,
		cfg:        cfg,
		source:     source,
		resolver:   resolver,
		presenter:  presenter,
		publisher:  publisher,
		clock:      clock,
		repository: repository,
		sinks:      sinks,
		games:      make(map[string]*runtime.Engine),
	}
}

// Run makes the service accept games until ctx is canceled,
// then waits for every running game to stop.
func (s *GameService) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	<-ctx.Done()
	s.log.Info("Waiting for running games to stop", "games", s.count())
	s.wg.Wait()
	return ctx.Err()
}

// Handle dispatches a parsed command.
// Invalid game contexts come back as ErrNotInVoiceChannel or ErrTooFewOccupants, after the user was told.
func (s *GameService) Handle(ctx context.Context, cmd domain.Command) error {
	switch c := cmd.(type) {
	case domain.PlayCommand:
		status, err := s.Play(ctx, c)
		if err != nil {
			return err
		}
		switch status {
		case domain.ContextNotInChannel:
			return errors.ErrNotInVoiceChannel
		case domain.ContextTooFewOccupants:
			return errors.ErrTooFewOccupants
		}
		return nil
	case domain.PingCommand:
		_, err := s.publisher.Send(ctx, c.TextChannelID, s.presenter.Pong(c.UserName, c.UserAvatarURL))
		return err
	case domain.LeaderboardCommand:
		entries, err := s.repository.Leaderboard(c.GuildID)
		if err != nil {
			return fmt.Errorf("leaderboard of guild %s: %w", c.GuildID, err)
		}
		_, err = s.publisher.Send(ctx, c.TextChannelID, s.presenter.Leaderboard(entries))
		return err
	default:
		return fmt.Errorf("%w: %T", errors.ErrUnknownCommand, cmd)
	}
}

// Play validates the owner's context and, when ready, starts the game in the background.
func (s *GameService) Play(ctx context.Context, cmd domain.PlayCommand) (domain.ContextStatus, error) {
	game := domain.NewGame(cmd.GuildID, cmd.OwnerID, cmd.TextChannelID)
	engine := runtime.NewEngine(s.log, s.cfg, game,
		s.source, s.resolver, s.presenter, s.publisher, s.clock, s.sinks...)

	runCtx, err := s.reserve(cmd.GuildID, engine)
	if stderrors.Is(err, errors.ErrGameAlreadyRunning) {
		s.log.Info("A game is already running", "guild_id", cmd.GuildID)
		return domain.ContextUnknown, s.say(ctx, cmd.TextChannelID, s.presenter.AlreadyRunning(), err)
	}
	if err != nil {
		return domain.ContextUnknown, err
	}

	status, err := engine.CaptureAndValidate(ctx)
	if err != nil {
		s.release(cmd.GuildID)
		return status, fmt.Errorf("couldn't check if the owner's context is valid: %w", err)
	}

	switch status {
	case domain.ContextNotInChannel:
		s.release(cmd.GuildID)
		return status, s.say(ctx, cmd.TextChannelID, s.presenter.NotInChannel(cmd.OwnerID), nil)
	case domain.ContextTooFewOccupants:
		s.release(cmd.GuildID)
		return status, s.say(ctx, cmd.TextChannelID, s.presenter.TooFewOccupants(), nil)
	}

	s.log.Info("Game context is valid, starting game...", "game_id", game.ID, "guild_id", cmd.GuildID)
	go func() {
		defer s.release(cmd.GuildID)

		result, err := engine.Run(runCtx)
		if err != nil {
			s.log.Error("Couldn't complete the game", "game_id", game.ID, "error", err)
			return
		}
		s.log.Info("The game has ended", "game_id", game.ID, "outcome", result.Outcome)
	}()
	return status, nil
}

func (s *GameService) Running(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.games[guildID]
	return ok
}

func (s *GameService) reserve(guildID string, engine *runtime.Engine) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil || s.ctx.Err() != nil {
		return nil, errors.ErrServiceStopped
	}
	if _, ok := s.games[guildID]; ok {
		return nil, errors.ErrGameAlreadyRunning
	}
	s.games[guildID] = engine
	s.wg.Add(1)
	return s.ctx, nil
}

// release frees the guild. It must be called exactly once per successful reserve.
func (s *GameService) release(guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, guildID)
	s.wg.Done()
}

func (s *GameService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// say tells the user something and returns reason unless the message itself failed.
func (s *GameService) say(ctx context.Context, channelID, content string, reason error) error {
	if err := s.publisher.Say(ctx, channelID, content); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPublish, err)
	}
	return reason
}
