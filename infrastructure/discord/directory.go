package discord

import (
	"caiu-perdeu/domain"
	"caiu-perdeu/errors"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// VoiceDirectory reads voice channel occupancy from the gateway state cache.
// It serves both as the membership source and the channel resolver of the game.
type VoiceDirectory struct {
	state *discordgo.State
}

func NewVoiceDirectory(state *discordgo.State) *VoiceDirectory {
	return &VoiceDirectory{state: state}
}

// Snapshot lists the non-bot occupants of the channel in join order.
func (d *VoiceDirectory) Snapshot(ctx context.Context, ref domain.ChannelRef) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guild, err := d.state.Guild(ref.GuildID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrGuildNotCached, ref.GuildID)
	}

	// Member lookups take the state lock themselves, collect the voice states first.
	d.state.RLock()
	voiceStates := make([]discordgo.VoiceState, 0, len(guild.VoiceStates))
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == ref.ChannelID {
			voiceStates = append(voiceStates, *vs)
		}
	}
	d.state.RUnlock()

	snapshot := make(domain.Snapshot, 0, len(voiceStates))
	for _, vs := range voiceStates {
		member := vs.Member
		if member == nil || member.User == nil {
			member, _ = d.state.Member(ref.GuildID, vs.UserID)
		}
		if member != nil && member.User != nil && member.User.Bot {
			continue
		}
		snapshot = append(snapshot, domain.Occupant{
			ID:          domain.Identity(vs.UserID),
			DisplayName: displayName(member, vs.UserID),
		})
	}
	return snapshot, nil
}

// ResolveVoiceChannel returns nil when the user is not connected to a voice channel.
func (d *VoiceDirectory) ResolveVoiceChannel(ctx context.Context, guildID string, userID domain.Identity) (*domain.ChannelRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := d.state.Guild(guildID); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrGuildNotCached, guildID)
	}
	vs, err := d.state.VoiceState(guildID, string(userID))
	if stderrors.Is(err, discordgo.ErrStateNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if vs.ChannelID == "" {
		return nil, nil
	}
	return &domain.ChannelRef{GuildID: guildID, ChannelID: vs.ChannelID}, nil
}

// displayName prefers the guild nickname, then the global name, then the username.
func displayName(member *discordgo.Member, fallback string) string {
	if member == nil || member.User == nil {
		return fallback
	}
	if name := member.DisplayName(); name != "" {
		return name
	}
	if member.User.Username != "" {
		return member.User.Username
	}
	return fallback
}
