package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates

// NewSession builds a bot session tracking guilds and voice states in its state cache.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = intents
	session.StateEnabled = true
	session.State.TrackVoice = true
	session.State.TrackMembers = true
	return session, nil
}

// Gateway keeps the websocket connection open while its context lives.
type Gateway struct {
	log            *slog.Logger
	session        *discordgo.Session
	handler        *CommandHandler
	commandGuildID string
}

// NewGateway registers slash commands globally when commandGuildID is empty.
func NewGateway(log *slog.Logger, session *discordgo.Session, handler *CommandHandler, commandGuildID string) *Gateway {
	return &Gateway{log: log, session: session, handler: handler, commandGuildID: commandGuildID}
}

func (g *Gateway) Run(ctx context.Context) error {
	removeReady := g.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		g.onReady(ctx, s, r)
	})
	defer removeReady()
	removeInteraction := g.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := g.handler.Handle(ctx, i.Interaction); err != nil {
			g.log.Error("Failed to handle interaction", "guild_id", i.GuildID, "error", err)
		}
	})
	defer removeInteraction()

	if err := g.session.Open(); err != nil {
		return err
	}
	g.log.Info("Discord gateway connected")

	<-ctx.Done()
	if err := g.session.Close(); err != nil {
		g.log.Warn("Failed to close discord gateway", "error", err)
	}
	g.log.Info("Discord gateway closed")
	return nil
}

func (g *Gateway) onReady(ctx context.Context, s *discordgo.Session, r *discordgo.Ready) {
	g.log.Info("Logged in", "user", r.User.Username, "guilds", len(r.Guilds))
	_, err := s.ApplicationCommandBulkOverwrite(r.User.ID, g.commandGuildID, Commands(), discordgo.WithContext(ctx))
	if err != nil {
		g.log.Error("Failed to register slash commands", "error", err)
		return
	}
	g.log.Info("Slash commands registered", "guild_id", g.commandGuildID, "count", len(Commands()))
}
