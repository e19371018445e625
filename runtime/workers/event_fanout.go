package workers

import (
	"caiu-perdeu/contract"
	"caiu-perdeu/domain/event"
	"caiu-perdeu/errors"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// EventFanout broadcasts game events to multiple in-process consumers.
//
// Engines hand events over through Consume, which only queues them, so a slow
// sink never stalls a poll loop. Delivery is best-effort: an event is dropped
// when the buffer stays full for longer than the sink timeout.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	log         *slog.Logger
	events      chan event.DomainEvent
	sinkTimeout time.Duration
	sinks       []contract.EventSink
}

func NewEventFanout(log *slog.Logger, bufferSize int, sinkTimeout time.Duration, sinks ...contract.EventSink) *EventFanout {
	return &EventFanout{
		log:         log,
		events:      make(chan event.DomainEvent, bufferSize),
		sinkTimeout: sinkTimeout,
		sinks:       sinks,
	}
}

// Consume queues the event for the fanout loop.
func (f *EventFanout) Consume(ctx context.Context, evt event.DomainEvent) error {
	timer := time.NewTimer(f.sinkTimeout)
	defer timer.Stop()
	select {
	case f.events <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return fmt.Errorf("%w: %s", errors.ErrEventDropped, evt.Type())
	}
}

// Run delivers queued events until ctx is canceled, then flushes what is left.
func (f *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-f.events:
			f.Fanout(evt)
		case <-ctx.Done():
			f.drain()
			f.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

func (f *EventFanout) drain() {
	for {
		select {
		case evt := <-f.events:
			f.Fanout(evt)
		default:
			return
		}
	}
}

// Fanout delivers the event to every sink, each bounded by the sink timeout.
func (f *EventFanout) Fanout(evt event.DomainEvent) {
	for _, sink := range f.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), f.sinkTimeout)
		if err := sink.Consume(ctx, evt); err != nil {
			f.log.Warn("Sink failed to consume event",
				"sink", fmt.Sprintf("%T", sink), "type", evt.Type(), "game_id", evt.Game().String(), "error", err)
		}
		cancel()
	}
}
