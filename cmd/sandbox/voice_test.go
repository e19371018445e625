package main

import (
	"caiu-perdeu/domain"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoice_Apply(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	voice := NewVoice([]string{"alice", "bob", "alice"})

	// Given duplicated names, each occupant appears once
	snapshot, err := voice.Snapshot(ctx, domain.ChannelRef{})
	req.NoError(err)
	req.Equal(domain.Snapshot{{ID: "alice", DisplayName: "alice"}, {ID: "bob", DisplayName: "bob"}}, snapshot)

	// When bob leaves and carol joins
	req.NoError(voice.Apply("leave bob"))
	req.NoError(voice.Apply("join carol"))
	req.NoError(voice.Apply(""))

	snapshot, err = voice.Snapshot(ctx, domain.ChannelRef{})
	req.NoError(err)
	req.Equal(domain.Snapshot{{ID: "alice", DisplayName: "alice"}, {ID: "carol", DisplayName: "carol"}}, snapshot)

	// Then invalid lines are rejected
	req.Error(voice.Apply("dance bob"))
	req.Error(voice.Apply("leave"))
	req.Error(voice.Apply("fail many"))
}

func TestVoice_Scripted_Failures(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	voice := NewVoice([]string{"alice", "bob"})

	req.NoError(voice.Apply("fail 1"))

	_, err := voice.Snapshot(ctx, domain.ChannelRef{})
	req.Error(err)
	_, err = voice.Snapshot(ctx, domain.ChannelRef{})
	req.NoError(err)
}

func TestVoice_Resolve_And_Feed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	voice := NewVoice([]string{"alice", "bob"})

	ref, err := voice.ResolveVoiceChannel(ctx, guildID, "alice")
	req.NoError(err)
	req.Equal(&domain.ChannelRef{GuildID: guildID, ChannelID: voiceChannelID}, ref)

	var errs []error
	voice.Feed(ctx, strings.NewReader("leave alice\nwhat\n"), func(err error) { errs = append(errs, err) })

	ref, err = voice.ResolveVoiceChannel(ctx, guildID, "alice")
	req.NoError(err)
	req.Nil(ref)
	req.Len(errs, 1)
}
