package sink

import (
	"caiu-perdeu/domain/event"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

type TimelineEntry struct {
	At   time.Time
	Type event.Type
	Text string
}

// Timeline holds a simple local timeline of the games it observed.
type Timeline struct {
	mu      sync.Mutex
	entries []TimelineEntry
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	var text string
	switch evt := e.(type) {
	case event.GameStarted:
		text = fmt.Sprintf("game started with %d players", len(evt.Players))
	case event.PlayerEliminated:
		text = fmt.Sprintf("%s left after %s", evt.Player.DisplayName, evt.Survived.Truncate(time.Second))
	case event.GameOver:
		if evt.Result.HasWinner() {
			text = fmt.Sprintf("%s won", evt.Result.Winner.DisplayName)
		} else {
			text = "nobody won"
		}
	case event.GameAborted:
		text = fmt.Sprintf("game aborted: %v", evt.Reason)
	default:
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, TimelineEntry{At: e.OccurredAt(), Type: e.Type(), Text: text})
	return nil
}

func (t *Timeline) Entries() []TimelineEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.entries)
}
