package repositories

import (
	"caiu-perdeu/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newResult(guild string, start time.Time, winner *domain.Player, players ...domain.Player) domain.Result {
	end := start.Add(10 * time.Minute)
	result := domain.Result{
		GameID:    uuid.New(),
		GuildID:   guild,
		Outcome:   domain.OutcomeNoContest,
		StartedAt: start,
		EndedAt:   end,
		Elapsed:   end.Sub(start),
		Players:   players,
	}
	if winner != nil {
		result.Outcome = domain.OutcomeWinner
		result.Winner = winner
	}
	return result
}

func eliminated(id, name string, at time.Time) domain.Player {
	return domain.Player{ID: domain.Identity(id), DisplayName: name, EliminatedAt: lo.ToPtr(at)}
}

func Test_Store_And_Get_Results(t *testing.T) {
	req := require.New(t)
	db, err := OpenInMemory()
	req.NoError(err)
	defer db.Close()

	repository := NewGameRepository(db, slog.Default(), nil)
	start := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	alice := eliminated("1", "Alice", start.Add(10*time.Minute))
	first := newResult("guild", start, &alice, alice, eliminated("2", "Bob", start.Add(time.Minute)))
	second := newResult("guild", start.Add(time.Hour), nil,
		eliminated("1", "Alice", start.Add(61*time.Minute)),
		eliminated("2", "Bob", start.Add(61*time.Minute)))

	req.NoError(repository.StoreResult(first))
	req.NoError(repository.StoreResult(second))
	req.NoError(repository.StoreResult(newResult("other", start, nil)))

	// Newest first, only the requested guild
	results, cursor, err := repository.GetResults("guild", nil)
	req.NoError(err)
	req.NotNil(cursor)
	req.Len(results, 2)
	req.Equal(second, results[0])
	req.Equal(first, results[1])
	req.Equal(domain.Identity("1"), results[1].Winner.ID)
}

func Test_Get_Results_With_Limit_And_Cursor(t *testing.T) {
	req := require.New(t)
	db, err := OpenInMemory()
	req.NoError(err)
	defer db.Close()

	limit := 2
	repository := NewGameRepository(db, slog.Default(), &limit)
	start := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		req.NoError(repository.StoreResult(newResult("guild", start.Add(time.Duration(i)*time.Hour), nil)))
	}

	page, cursor, err := repository.GetResults("guild", nil)
	req.NoError(err)
	req.Len(page, limit)

	rest, _, err := repository.GetResults("guild", cursor)
	req.NoError(err)
	req.Len(rest, 1)
	req.Equal(start, rest[0].StartedAt)
}

func Test_Leaderboard_Ranks_By_Wins_Then_Survival(t *testing.T) {
	req := require.New(t)
	db, err := OpenInMemory()
	req.NoError(err)
	defer db.Close()

	repository := NewGameRepository(db, slog.Default(), nil)
	start := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)

	// Given Bob wins twice and Alice once
	for i, winnerID := range []string{"2", "1", "2"} {
		gameStart := start.Add(time.Duration(i) * time.Hour)
		end := gameStart.Add(10 * time.Minute)
		alice := eliminated("1", "Alice", lo.Ternary(winnerID == "1", end, gameStart.Add(time.Minute)))
		bob := eliminated("2", "Bob", lo.Ternary(winnerID == "2", end, gameStart.Add(2*time.Minute)))
		carol := eliminated("3", "Carol", gameStart.Add(5*time.Minute))
		winner := lo.Ternary(winnerID == "1", alice, bob)
		req.NoError(repository.StoreResult(newResult("guild", gameStart, &winner, alice, bob, carol)))
	}

	board, err := repository.Leaderboard("guild")
	req.NoError(err)

	req.Len(board, 3)
	req.Equal(domain.Identity("2"), board[0].PlayerID)
	req.Equal(2, board[0].Wins)
	req.Equal(3, board[0].Games)
	req.Equal(10*time.Minute, board[0].Best)
	req.Equal(domain.Identity("1"), board[1].PlayerID)
	req.Equal(1, board[1].Wins)
	req.Equal(domain.Identity("3"), board[2].PlayerID)
	req.Equal(0, board[2].Wins)
	req.Equal(5*time.Minute, board[2].Best)

	empty, err := repository.Leaderboard("unknown")
	req.NoError(err)
	req.Empty(empty)
}
