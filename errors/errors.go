package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrNotInVoiceChannel = fmt.Errorf("owner is not in a voice channel")
	ErrTooFewOccupants   = fmt.Errorf("voice channel doesn't have enough players")
	ErrEmptyRoster       = fmt.Errorf("roster needs at least two distinct players")

	ErrMembershipFetch = fmt.Errorf("failed to fetch voice channel members")
	ErrPublish         = fmt.Errorf("failed to publish game message")

	ErrGameNotReady       = fmt.Errorf("game context has not been validated")
	ErrGameAlreadyRunning = fmt.Errorf("a game is already running in this guild")
	ErrGuildNotCached     = fmt.Errorf("guild is not in the state cache")
	ErrServiceStopped     = fmt.Errorf("game service is not running")
	ErrUnknownCommand     = fmt.Errorf("unknown command")
	ErrEventDropped       = fmt.Errorf("event dropped, fanout buffer is full")
)
