// Package presenter turns game data into the messages players read.
// Rendering is deterministic: the same status always produces the same message.
package presenter

import (
	"caiu-perdeu/domain"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02 15:04:05"

type Presenter struct {
	botName string
}

func NewPresenter(botName string) Presenter {
	return Presenter{botName: botName}
}

func (p Presenter) Starting() string {
	return "Starting game..."
}

func (p Presenter) NotInChannel(owner domain.Identity) string {
	return fmt.Sprintf("%s you're not in a voice channel.", Mention(owner))
}

func (p Presenter) TooFewOccupants() string {
	return "The current voice channel doesn't have enough players."
}

func (p Presenter) AlreadyRunning() string {
	return "A game is already running in this server."
}

func (p Presenter) NoContest() string {
	return "Nobody won the game."
}

// Leave announces a player who left the voice channel.
// The player must already be eliminated.
func (p Presenter) Leave(player domain.Player, start time.Time) domain.Message {
	return domain.Message{
		Title:       "Oh no... A player left the voice channel 🥺.",
		Description: fmt.Sprintf("The player %s has left.\n\n", Mention(player.ID)) + timeline(player, start),
	}
}

// Winner announces the last player standing.
func (p Presenter) Winner(player domain.Player, start time.Time) domain.Message {
	return domain.Message{
		Title:       "CONGRATULATIONS ✨🎉!",
		Description: fmt.Sprintf("The player %s has won the game.\n\n", Mention(player.ID)) + timeline(player, start),
	}
}

// Status renders the game board, one field per original player in roster order.
func (p Presenter) Status(status domain.Status) domain.Message {
	message := domain.Message{
		Title:       fmt.Sprintf("[%s] Game Status 🎮🎯:", FormatDuration(status.Elapsed)),
		Description: "Current players:",
	}
	for _, entry := range status.Entries {
		if entry.Alive {
			message.Fields = append(message.Fields, domain.MessageField{
				Name:  "❤️ " + entry.Player.DisplayName,
				Value: "* Still alive.",
			})
			continue
		}
		message.Fields = append(message.Fields, domain.MessageField{
			Name:  "💔 " + entry.Player.DisplayName,
			Value: fmt.Sprintf("* Has lost with %s.", FormatDuration(entry.Survived)),
		})
	}
	return message
}

func (p Presenter) Pong(userName, avatarURL string) domain.Message {
	return domain.Message{
		Author:      userName,
		AuthorIcon:  avatarURL,
		Description: fmt.Sprintf("%s is online.", p.botName),
	}
}

// FormatDuration renders a duration as "{h}H {m}M {s}S", truncated to the second.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dH %dM %dS", total/3600, (total%3600)/60, total%60)
}

// Mention renders a user mention understood by the chat client.
func Mention(id domain.Identity) string {
	return fmt.Sprintf("<@%s>", id)
}

func timeline(player domain.Player, start time.Time) string {
	end := start
	if player.EliminatedAt != nil {
		end = *player.EliminatedAt
	}
	var b strings.Builder
	fmt.Fprintf(&b, "* **🗓️ Game start**: %s\n", start.Format(dateLayout))
	fmt.Fprintf(&b, "* **🗓️ End time**:      %s\n", end.Format(dateLayout))
	fmt.Fprintf(&b, "* **🕘 Total time**: %s", FormatDuration(end.Sub(start)))
	return b.String()
}
