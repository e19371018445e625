package domain

import (
	"time"

	"github.com/google/uuid"
)

type GameID = uuid.UUID

// ChannelRef identifies the voice channel observed by a game.
type ChannelRef struct {
	GuildID   string
	ChannelID string
}

// Game is the state carried by one elimination game.
// VoiceChannel is resolved once before start and never re-resolved.
// StatusHandle is nil until the first status publish.
type Game struct {
	ID            GameID
	GuildID       string
	OwnerID       Identity
	TextChannelID string
	VoiceChannel  ChannelRef
	Roster        *Roster
	StartTime     time.Time
	StatusHandle  *MessageHandle
}

func NewGame(guildID string, ownerID Identity, textChannelID string) *Game {
	return &Game{
		ID:            uuid.New(),
		GuildID:       guildID,
		OwnerID:       ownerID,
		TextChannelID: textChannelID,
	}
}

// Status builds the ordered status of every original player at now.
func (g *Game) Status(now time.Time) Status {
	status := Status{Elapsed: now.Sub(g.StartTime)}
	if g.Roster == nil {
		return status
	}
	for _, p := range g.Roster.Players() {
		status.Entries = append(status.Entries, StatusEntry{
			Player:   p,
			Alive:    p.IsAlive(),
			Survived: p.Survived(g.StartTime, now),
		})
	}
	return status
}

// Status is what a presenter needs to render the game board.
type Status struct {
	Elapsed time.Duration
	Entries []StatusEntry
}

type StatusEntry struct {
	Player   Player
	Alive    bool
	Survived time.Duration
}
