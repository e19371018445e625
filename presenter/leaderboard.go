package presenter

import (
	"caiu-perdeu/domain"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Leaderboard renders the per-guild standings as a monospaced table.
// Entries are expected sorted already.
func (p Presenter) Leaderboard(entries []domain.LeaderboardEntry) domain.Message {
	if len(entries) == 0 {
		return domain.Message{
			Title:       "Leaderboard 🏆",
			Description: "No game has been played yet.",
		}
	}

	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"#", "Player", "Wins", "Games", "Best"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding(" ")

	for i, entry := range entries {
		table.Append([]string{
			strconv.Itoa(i + 1),
			entry.DisplayName,
			strconv.Itoa(entry.Wins),
			strconv.Itoa(entry.Games),
			FormatDuration(entry.Best),
		})
	}
	table.Render()

	return domain.Message{
		Title:       "Leaderboard 🏆",
		Description: "```\n" + b.String() + "```",
	}
}
