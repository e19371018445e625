package discord

import (
	"caiu-perdeu/domain"
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Messenger is the part of *discordgo.Session the publisher needs.
type Messenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Publisher sends plain text and embeds to text channels.
type Publisher struct {
	messenger Messenger
}

func NewPublisher(messenger Messenger) *Publisher {
	return &Publisher{messenger: messenger}
}

func (p *Publisher) Say(ctx context.Context, channelID, content string) error {
	_, err := p.messenger.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	return err
}

func (p *Publisher) Send(ctx context.Context, channelID string, message domain.Message) (domain.MessageHandle, error) {
	sent, err := p.messenger.ChannelMessageSendEmbed(channelID, toEmbed(message), discordgo.WithContext(ctx))
	if err != nil {
		return domain.MessageHandle{}, err
	}
	return domain.MessageHandle{ChannelID: sent.ChannelID, MessageID: sent.ID}, nil
}

func (p *Publisher) Edit(ctx context.Context, handle domain.MessageHandle, message domain.Message) error {
	_, err := p.messenger.ChannelMessageEditEmbed(handle.ChannelID, handle.MessageID, toEmbed(message), discordgo.WithContext(ctx))
	return err
}

func toEmbed(message domain.Message) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       message.Title,
		Description: message.Description,
		Fields: lo.Map(message.Fields, func(f domain.MessageField, _ int) *discordgo.MessageEmbedField {
			return &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value}
		}),
	}
	if message.Author != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: message.Author, IconURL: message.AuthorIcon}
	}
	return embed
}
