package presenter

import (
	"caiu-perdeu/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	req := require.New(t)
	req.Equal("0H 0M 0S", FormatDuration(0))
	req.Equal("0H 0M 59S", FormatDuration(59*time.Second+900*time.Millisecond))
	req.Equal("1H 1M 1S", FormatDuration(time.Hour+time.Minute+time.Second))
	req.Equal("26H 0M 5S", FormatDuration(26*time.Hour+5*time.Second))
	req.Equal("0H 0M 0S", FormatDuration(-time.Second))
}

func TestStatus_Renders_Players_In_Order(t *testing.T) {
	req := require.New(t)
	p := NewPresenter("CaiuPerdeu")
	eliminated := time.Now()

	message := p.Status(domain.Status{
		Elapsed: 75 * time.Second,
		Entries: []domain.StatusEntry{
			{Player: domain.Player{ID: "1", DisplayName: "Alice"}, Alive: true, Survived: 75 * time.Second},
			{Player: domain.Player{ID: "2", DisplayName: "Bob", EliminatedAt: &eliminated}, Survived: 30 * time.Second},
		},
	})

	req.Equal("[0H 1M 15S] Game Status 🎮🎯:", message.Title)
	req.Equal("Current players:", message.Description)
	req.Equal([]domain.MessageField{
		{Name: "❤️ Alice", Value: "* Still alive."},
		{Name: "💔 Bob", Value: "* Has lost with 0H 0M 30S."},
	}, message.Fields)
}

func TestLeave_And_Winner_Contain_Timeline(t *testing.T) {
	req := require.New(t)
	p := NewPresenter("CaiuPerdeu")
	start := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	end := start.Add(2*time.Hour + 3*time.Second)
	player := domain.Player{ID: "42", DisplayName: "Bob", EliminatedAt: &end}

	leave := p.Leave(player, start)
	req.Contains(leave.Description, "The player <@42> has left.")
	req.Contains(leave.Description, "2026-10-17 20:00:00")
	req.Contains(leave.Description, "2026-10-17 22:00:03")
	req.Contains(leave.Description, "2H 0M 3S")

	winner := p.Winner(player, start)
	req.Equal("CONGRATULATIONS ✨🎉!", winner.Title)
	req.Contains(winner.Description, "The player <@42> has won the game.")
}

func TestNotInChannel_Mentions_Owner(t *testing.T) {
	req := require.New(t)
	req.Equal("<@7> you're not in a voice channel.", NewPresenter("x").NotInChannel("7"))
}

func TestLeaderboard(t *testing.T) {
	req := require.New(t)
	p := NewPresenter("CaiuPerdeu")

	empty := p.Leaderboard(nil)
	req.Equal("No game has been played yet.", empty.Description)

	message := p.Leaderboard([]domain.LeaderboardEntry{
		{PlayerID: "1", DisplayName: "Alice", Wins: 3, Games: 4, Best: time.Minute},
		{PlayerID: "2", DisplayName: "Bob", Wins: 1, Games: 4, Best: 30 * time.Second},
	})
	req.True(strings.HasPrefix(message.Description, "```\n"))
	req.Less(strings.Index(message.Description, "Alice"), strings.Index(message.Description, "Bob"))
	req.Contains(message.Description, "0H 1M 0S")
}
