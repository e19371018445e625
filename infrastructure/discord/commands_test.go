package discord

import (
	"caiu-perdeu/domain"
	"caiu-perdeu/errors"
	"context"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

type fakeResponder struct {
	responses []*discordgo.InteractionResponse
}

func (r *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return nil
}

type fakeService struct {
	commands []domain.Command
	err      error
}

func (s *fakeService) Handle(_ context.Context, cmd domain.Command) error {
	s.commands = append(s.commands, cmd)
	return s.err
}

func (s *fakeService) Play(_ context.Context, cmd domain.PlayCommand) (domain.ContextStatus, error) {
	s.commands = append(s.commands, cmd)
	return domain.ContextReady, s.err
}

func (s *fakeService) Running(string) bool { return false }

func interaction(name string, user *discordgo.User) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   "guild",
		ChannelID: "text",
		Member:    &discordgo.Member{User: user},
		Data:      discordgo.ApplicationCommandInteractionData{Name: name},
	}
}

func TestCommandHandler_Play(t *testing.T) {
	req := require.New(t)
	responder, service := &fakeResponder{}, &fakeService{}
	handler := NewCommandHandler(slog.Default(), responder, service)

	// When Alice runs /play
	err := handler.Handle(context.Background(), interaction("play", &discordgo.User{ID: "1", Username: "alice"}))

	// Then the interaction is acknowledged and the game requested
	req.NoError(err)
	req.Len(responder.responses, 1)
	req.Equal("Processing...", responder.responses[0].Data.Content)
	req.Equal([]domain.Command{domain.PlayCommand{
		GuildID: "guild", OwnerID: "1", OwnerName: "alice", TextChannelID: "text",
	}}, service.commands)
}

func TestCommandHandler_Ping_And_Leaderboard(t *testing.T) {
	req := require.New(t)
	service := &fakeService{}
	handler := NewCommandHandler(slog.Default(), &fakeResponder{}, service)
	user := &discordgo.User{ID: "1", Username: "alice", GlobalName: "Alice"}

	req.NoError(handler.Handle(context.Background(), interaction("ping", user)))
	req.NoError(handler.Handle(context.Background(), interaction("leaderboard", user)))

	req.Equal([]domain.Command{
		domain.PingCommand{GuildID: "guild", UserName: "Alice", UserAvatarURL: user.AvatarURL(""), TextChannelID: "text"},
		domain.LeaderboardCommand{GuildID: "guild", TextChannelID: "text"},
	}, service.commands)
}

func TestCommandHandler_Ignores_Bots_And_DMs(t *testing.T) {
	req := require.New(t)
	responder, service := &fakeResponder{}, &fakeService{}
	handler := NewCommandHandler(slog.Default(), responder, service)

	bot := interaction("play", &discordgo.User{ID: "9", Bot: true})
	dm := interaction("play", &discordgo.User{ID: "1"})
	dm.GuildID = ""
	dm.Member = nil
	dm.User = &discordgo.User{ID: "1"}

	req.NoError(handler.Handle(context.Background(), bot))
	req.NoError(handler.Handle(context.Background(), dm))

	req.Empty(responder.responses)
	req.Empty(service.commands)
}

func TestCommandHandler_Invalid_Context_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	service := &fakeService{err: errors.ErrNotInVoiceChannel}
	handler := NewCommandHandler(slog.Default(), &fakeResponder{}, service)

	err := handler.Handle(context.Background(), interaction("play", &discordgo.User{ID: "1"}))

	req.NoError(err)
}

func TestCommandHandler_Unknown_Command(t *testing.T) {
	req := require.New(t)
	responder := &fakeResponder{}
	handler := NewCommandHandler(slog.Default(), responder, &fakeService{})

	err := handler.Handle(context.Background(), interaction("dance", &discordgo.User{ID: "1"}))

	req.ErrorIs(err, errors.ErrUnknownCommand)
	req.Empty(responder.responses)
}
