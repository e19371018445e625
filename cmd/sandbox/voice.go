package main

import (
	"bufio"
	"caiu-perdeu/domain"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

const (
	guildID        = "sandbox"
	voiceChannelID = "voice"
	textChannelID  = "text"
)

// Voice is a scripted voice channel: occupants join and leave from typed commands.
type Voice struct {
	mu        sync.Mutex
	occupants []domain.Occupant
	failNext  int
}

func NewVoice(names []string) *Voice {
	v := &Voice{}
	for _, name := range names {
		v.join(name)
	}
	return v
}

func (v *Voice) Snapshot(ctx context.Context, _ domain.ChannelRef) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.failNext > 0 {
		v.failNext--
		return nil, fmt.Errorf("scripted fetch failure")
	}
	return slices.Clone(v.occupants), nil
}

func (v *Voice) ResolveVoiceChannel(_ context.Context, guild string, userID domain.Identity) (*domain.ChannelRef, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !domain.Snapshot(v.occupants).Contains(userID) {
		return nil, nil
	}
	return &domain.ChannelRef{GuildID: guild, ChannelID: voiceChannelID}, nil
}

// Apply runs one command: "join NAME", "leave NAME" or "fail N".
func (v *Voice) Apply(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) != 2 {
		return fmt.Errorf("expected '<join|leave|fail> <arg>', got %q", line)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	switch fields[0] {
	case "join":
		v.join(fields[1])
	case "leave":
		v.occupants = slices.DeleteFunc(v.occupants, func(o domain.Occupant) bool {
			return o.ID == domain.Identity(fields[1])
		})
	case "fail":
		var n int
		if _, err := fmt.Sscanf(fields[1], "%d", &n); err != nil {
			return fmt.Errorf("invalid failure count %q", fields[1])
		}
		v.failNext = n
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}

// Feed applies every line read from r until EOF or cancellation.
func (v *Voice) Feed(ctx context.Context, r io.Reader, onError func(error)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		if err := v.Apply(scanner.Text()); err != nil {
			onError(err)
		}
	}
}

func (v *Voice) join(name string) {
	if domain.Snapshot(v.occupants).Contains(domain.Identity(name)) {
		return
	}
	v.occupants = append(v.occupants, domain.Occupant{ID: domain.Identity(name), DisplayName: name})
}
