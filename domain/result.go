package domain

import "time"

type Outcome string

const (
	OutcomeWinner    Outcome = "WINNER"
	OutcomeNoContest Outcome = "NO_CONTEST"
)

// Result is the terminal state of a finished game.
// Winner is nil for a no-contest.
type Result struct {
	GameID    GameID
	GuildID   string
	Outcome   Outcome
	Winner    *Player
	Elapsed   time.Duration
	StartedAt time.Time
	EndedAt   time.Time
	Players   []Player
}

func (r Result) HasWinner() bool {
	return r.Outcome == OutcomeWinner && r.Winner != nil
}

// LeaderboardEntry aggregates the results of one player in a guild.
type LeaderboardEntry struct {
	PlayerID    Identity
	DisplayName string
	Wins        int
	Games       int
	Best        time.Duration
}
