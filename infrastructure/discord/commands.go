package discord

import (
	"caiu-perdeu/domain"
	"caiu-perdeu/errors"
	"caiu-perdeu/services"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const processing = "Processing..."

// Responder is the part of *discordgo.Session used to acknowledge interactions.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Commands lists the slash commands registered on Ready.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: string(domain.PlayCommandName), Description: "Start a game with everyone in your voice channel"},
		{Name: string(domain.PingCommandName), Description: "Check that the bot is online"},
		{Name: string(domain.LeaderboardCommandName), Description: "Show the players with the most wins"},
	}
}

// CommandHandler turns slash command interactions into game service commands.
type CommandHandler struct {
	log       *slog.Logger
	responder Responder
	service   services.IGameService
}

func NewCommandHandler(log *slog.Logger, responder Responder, service services.IGameService) *CommandHandler {
	return &CommandHandler{log: log, responder: responder, service: service}
}

// Handle acknowledges the interaction then runs the command.
// Interactions from bots or outside a guild are ignored.
func (h *CommandHandler) Handle(ctx context.Context, i *discordgo.Interaction) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil || i.Member.User.Bot {
		h.log.Debug("Ignoring interaction", "channel_id", i.ChannelID)
		return nil
	}

	cmd, err := parse(i)
	if err != nil {
		return err
	}

	err = h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: processing},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPublish, err)
	}

	err = h.service.Handle(ctx, cmd)
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, errors.ErrNotInVoiceChannel),
		stderrors.Is(err, errors.ErrTooFewOccupants),
		stderrors.Is(err, errors.ErrGameAlreadyRunning):
		h.log.Info("Game not started", "guild_id", i.GuildID, "user_id", i.Member.User.ID, "reason", err)
		return nil
	default:
		return err
	}
}

func parse(i *discordgo.Interaction) (domain.Command, error) {
	user := i.Member.User
	switch domain.CommandName(i.ApplicationCommandData().Name) {
	case domain.PlayCommandName:
		return domain.PlayCommand{
			GuildID:       i.GuildID,
			OwnerID:       domain.Identity(user.ID),
			OwnerName:     displayName(i.Member, user.Username),
			TextChannelID: i.ChannelID,
		}, nil
	case domain.PingCommandName:
		return domain.PingCommand{
			GuildID:       i.GuildID,
			UserName:      displayName(i.Member, user.Username),
			UserAvatarURL: user.AvatarURL(""),
			TextChannelID: i.ChannelID,
		}, nil
	case domain.LeaderboardCommandName:
		return domain.LeaderboardCommand{GuildID: i.GuildID, TextChannelID: i.ChannelID}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, i.ApplicationCommandData().Name)
	}
}
