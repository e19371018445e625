package event

import (
	"caiu-perdeu/domain"
	"time"
)

type Type string

const (
	GameStartedType      Type = "GAME_STARTED"
	PlayerEliminatedType Type = "PLAYER_ELIMINATED"
	StatusPublishedType  Type = "STATUS_PUBLISHED"
	GameOverType         Type = "GAME_OVER"
	GameAbortedType      Type = "GAME_ABORTED"
)

// DomainEvent is a lifecycle event emitted by a running game.
type DomainEvent interface {
	Type() Type
	Game() domain.GameID
	Guild() string
	OccurredAt() time.Time
}

// Header carries the fields shared by every game event.
type Header struct {
	GameID  domain.GameID
	GuildID string
	At      time.Time
}

func (h Header) Game() domain.GameID   { return h.GameID }
func (h Header) Guild() string         { return h.GuildID }
func (h Header) OccurredAt() time.Time { return h.At }

type GameStarted struct {
	Header
	Players []domain.Player
}

func (GameStarted) Type() Type { return GameStartedType }

type PlayerEliminated struct {
	Header
	Player   domain.Player
	Survived time.Duration
}

func (PlayerEliminated) Type() Type { return PlayerEliminatedType }

type StatusPublished struct {
	Header
	Status domain.Status
}

func (StatusPublished) Type() Type { return StatusPublishedType }

type GameOver struct {
	Header
	Result domain.Result
}

func (GameOver) Type() Type { return GameOverType }

// GameAborted is emitted when an I/O fault ends a game without a result.
type GameAborted struct {
	Header
	Reason error
}

func (GameAborted) Type() Type { return GameAbortedType }
