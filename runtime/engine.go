// Package runtime drives games: it polls membership, applies eliminations
// and propagates lifecycle events. Message wording lives in the presenter.
package runtime

import (
	"caiu-perdeu/contract"
	"caiu-perdeu/domain"
	"caiu-perdeu/domain/event"
	"caiu-perdeu/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"
)

type EngineState int

const (
	StateIdle EngineState = iota
	StateAwaitingStart
	StatePolling
	StateFinished
)

func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateAwaitingStart:
		return "AWAITING_START"
	case StatePolling:
		return "POLLING"
	case StateFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

type EngineConfig struct {
	PollInterval time.Duration
	// FetchRetries is the number of extra attempts after a failed snapshot. Zero aborts on the first failure.
	FetchRetries int
	FetchBackoff time.Duration
}

// Engine runs a single game from validation to its terminal result.
// The poll loop is sequential: only Run touches the roster.
type Engine struct {
	log       *slog.Logger
	cfg       EngineConfig
	game      *domain.Game
	source    contract.MembershipSource
	resolver  contract.ChannelResolver
	presenter contract.Presenter
	publisher contract.Publisher
	clock     contract.Clock
	sinks     []contract.EventSink
	state     EngineState
}

func NewEngine(log *slog.Logger, cfg EngineConfig, game *domain.Game,
	source contract.MembershipSource, resolver contract.ChannelResolver,
	presenter contract.Presenter, publisher contract.Publisher,
	clock contract.Clock, sinks ...contract.EventSink) *Engine {
	return &Engine{
		log:       log.With("game_id", game.ID.String(), "guild_id", game.GuildID),
		cfg:       cfg,
		game:      game,
		source:    source,
		resolver:  resolver,
		presenter: presenter,
		publisher: publisher,
		clock:     clock,
		sinks:     sinks,
		state:     StateIdle,
	}
}

func (e *Engine) Game() *domain.Game {
	return e.game
}

func (e *Engine) State() EngineState {
	return e.state
}

// CaptureAndValidate checks that the owner sits in a voice channel with at least
// two occupants. The channel is resolved here once and kept for the whole game.
func (e *Engine) CaptureAndValidate(ctx context.Context) (domain.ContextStatus, error) {
	if e.state != StateIdle {
		return domain.ContextUnknown, fmt.Errorf("cannot validate a game in state %s", e.state)
	}

	ref, err := e.resolver.ResolveVoiceChannel(ctx, e.game.GuildID, e.game.OwnerID)
	if err != nil {
		return domain.ContextUnknown, fmt.Errorf("resolve voice channel: %w", err)
	}
	if ref == nil {
		e.log.Info("Owner is not in a voice channel", "owner", e.game.OwnerID)
		return domain.ContextNotInChannel, nil
	}

	snapshot, err := e.source.Snapshot(ctx, *ref)
	if err != nil {
		return domain.ContextUnknown, fmt.Errorf("%w: %v", errors.ErrMembershipFetch, err)
	}
	if snapshot.Distinct() < 2 {
		e.log.Info("Not enough players in the voice channel", "occupants", snapshot.Distinct())
		return domain.ContextTooFewOccupants, nil
	}

	e.game.VoiceChannel = *ref
	e.state = StateAwaitingStart
	return domain.ContextReady, nil
}

// Run plays the game until zero or one player is left.
// Any membership or publish fault aborts the run; eliminations already applied are kept.
func (e *Engine) Run(ctx context.Context) (domain.Result, error) {
	if e.state != StateAwaitingStart {
		return domain.Result{}, errors.ErrGameNotReady
	}
	e.state = StatePolling

	result, err := e.run(ctx)
	e.state = StateFinished
	if err != nil {
		e.emit(ctx, event.GameAborted{Header: e.header(), Reason: err})
		return domain.Result{}, err
	}
	e.emit(ctx, event.GameOver{Header: e.header(), Result: result})
	return result, nil
}

func (e *Engine) run(ctx context.Context) (domain.Result, error) {
	if err := e.say(ctx, e.presenter.Starting()); err != nil {
		return domain.Result{}, err
	}

	e.game.StartTime = e.clock.Now()
	snapshot, err := e.fetch(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	roster, err := domain.Capture(snapshot)
	if stderrors.Is(err, errors.ErrEmptyRoster) {
		e.log.Warn("Voice channel emptied before the roster was captured")
		return e.noContest(ctx, e.clock.Now())
	}
	if err != nil {
		return domain.Result{}, err
	}
	e.game.Roster = roster
	e.log.Info("Roster captured", "players", roster.Len())
	e.emit(ctx, event.GameStarted{Header: e.header(), Players: roster.Players()})

	for {
		e.log.Debug("Checking the alive players...")
		snapshot, err := e.fetch(ctx)
		if err != nil {
			return domain.Result{}, err
		}

		now := e.clock.Now()
		for _, player := range roster.MarkLeft(snapshot, now) {
			e.log.Info("Player has left the voice channel", "player", player.ID)
			if err := e.send(ctx, e.presenter.Leave(player, e.game.StartTime)); err != nil {
				return domain.Result{}, err
			}
			e.emit(ctx, event.PlayerEliminated{
				Header:   e.header(),
				Player:   player,
				Survived: player.Survived(e.game.StartTime, now),
			})
		}

		if err := e.publishStatus(ctx, now); err != nil {
			return domain.Result{}, err
		}

		// Checked after this cycle's eliminations so the game ends within the same cycle.
		if len(roster.Alive()) < 2 {
			break
		}

		if err := e.wait(ctx, e.cfg.PollInterval); err != nil {
			return domain.Result{}, err
		}
	}

	now := e.clock.Now()
	winner, ok := roster.Crown(now)
	if !ok {
		return e.noContest(ctx, now)
	}
	e.log.Info("Game won", "player", winner.ID)
	if err := e.send(ctx, e.presenter.Winner(winner, e.game.StartTime)); err != nil {
		return domain.Result{}, err
	}
	result := e.result(domain.OutcomeWinner, now)
	result.Winner = &winner
	return result, nil
}

func (e *Engine) noContest(ctx context.Context, now time.Time) (domain.Result, error) {
	e.log.Info("Nobody won the game")
	if err := e.say(ctx, e.presenter.NoContest()); err != nil {
		return domain.Result{}, err
	}
	return e.result(domain.OutcomeNoContest, now), nil
}

func (e *Engine) result(outcome domain.Outcome, now time.Time) domain.Result {
	result := domain.Result{
		GameID:    e.game.ID,
		GuildID:   e.game.GuildID,
		Outcome:   outcome,
		Elapsed:   now.Sub(e.game.StartTime),
		StartedAt: e.game.StartTime,
		EndedAt:   now,
	}
	if e.game.Roster != nil {
		result.Players = e.game.Roster.Players()
	}
	return result
}

// fetch reads the voice channel, retrying up to FetchRetries times.
// The returned snapshot always comes from a single successful read.
func (e *Engine) fetch(ctx context.Context) (domain.Snapshot, error) {
	var lastErr error
	for attempt := 0; attempt <= e.cfg.FetchRetries; attempt++ {
		if attempt > 0 {
			e.log.Warn("Retrying membership fetch", "attempt", attempt, "error", lastErr)
			if err := e.wait(ctx, e.cfg.FetchBackoff*time.Duration(attempt)); err != nil {
				return nil, err
			}
		}
		snapshot, err := e.source.Snapshot(ctx, e.game.VoiceChannel)
		if err == nil {
			return snapshot, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", errors.ErrMembershipFetch, lastErr)
}

// publishStatus sends the status message once, then edits it in place.
func (e *Engine) publishStatus(ctx context.Context, now time.Time) error {
	status := e.game.Status(now)
	message := e.presenter.Status(status)

	if e.game.StatusHandle == nil {
		handle, err := e.publisher.Send(ctx, e.game.TextChannelID, message)
		if err != nil {
			return fmt.Errorf("%w: %v", errors.ErrPublish, err)
		}
		e.game.StatusHandle = &handle
	} else if err := e.publisher.Edit(ctx, *e.game.StatusHandle, message); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPublish, err)
	}

	e.emit(ctx, event.StatusPublished{Header: e.header(), Status: status})
	return nil
}

func (e *Engine) say(ctx context.Context, content string) error {
	if err := e.publisher.Say(ctx, e.game.TextChannelID, content); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPublish, err)
	}
	return nil
}

func (e *Engine) send(ctx context.Context, message domain.Message) error {
	if _, err := e.publisher.Send(ctx, e.game.TextChannelID, message); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPublish, err)
	}
	return nil
}

// wait suspends the loop without blocking other games.
// Cancelling ctx aborts the wait.
func (e *Engine) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.clock.After(d):
		return nil
	}
}

// emit delivers an event to every sink. Sink failures are logged and never end the game.
func (e *Engine) emit(ctx context.Context, evt event.DomainEvent) {
	ctx = context.WithoutCancel(ctx)
	for _, sink := range e.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			e.log.Warn("Event sink failed", "event", evt.Type(), "error", err)
		}
	}
}

func (e *Engine) header() event.Header {
	return event.Header{GameID: e.game.ID, GuildID: e.game.GuildID, At: e.clock.Now()}
}
