//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"caiu-perdeu/domain"
	"caiu-perdeu/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// MembershipSource returns who currently sits in a voice channel.
// Snapshots may be stale and the call may fail.
type MembershipSource interface {
	Snapshot(ctx context.Context, ref domain.ChannelRef) (domain.Snapshot, error)
}

// ChannelResolver finds the voice channel of a user.
// A nil reference means the user is not in any voice channel.
type ChannelResolver interface {
	ResolveVoiceChannel(ctx context.Context, guildID string, userID domain.Identity) (*domain.ChannelRef, error)
}

// Publisher delivers messages to a text channel.
type Publisher interface {
	Say(ctx context.Context, channelID string, content string) error
	Send(ctx context.Context, channelID string, message domain.Message) (domain.MessageHandle, error)
	Edit(ctx context.Context, handle domain.MessageHandle, message domain.Message) error
}

// Presenter renders game data into messages.
type Presenter interface {
	Starting() string
	NotInChannel(owner domain.Identity) string
	TooFewOccupants() string
	AlreadyRunning() string
	NoContest() string
	Leave(player domain.Player, start time.Time) domain.Message
	Winner(player domain.Player, start time.Time) domain.Message
	Status(status domain.Status) domain.Message
	Pong(userName, avatarURL string) domain.Message
	Leaderboard(entries []domain.LeaderboardEntry) domain.Message
}

// Clock abstracts time so the poll loop can be driven by tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IGameRepository interface {
	StoreResult(result domain.Result) error
	GetResults(guildID string, cursor *string) ([]domain.Result, *string, error)
	Leaderboard(guildID string) ([]domain.LeaderboardEntry, error)
}
