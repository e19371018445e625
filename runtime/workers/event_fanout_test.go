package workers

import (
	"caiu-perdeu/domain/event"
	"caiu-perdeu/errors"
	"caiu-perdeu/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func started() event.GameStarted {
	return event.GameStarted{Header: event.Header{GameID: uuid.New(), GuildID: "guild", At: time.Now()}}
}

func TestEventFanout_Delivers_To_Every_Sink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	first := mocks.NewMockEventSink(ctrl)
	second := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(log, 10, time.Second, first, second)
	evt := started()

	done := make(chan struct{})
	// Given both sinks consume the event
	first.EXPECT().Consume(gomock.Any(), evt).Return(nil)
	second.EXPECT().Consume(gomock.Any(), evt).DoAndReturn(func(context.Context, event.DomainEvent) error {
		close(done)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	// When an event is queued
	req.NoError(fanout.Consume(context.Background(), evt))

	// Then it reaches the last sink
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Event was not delivered in time")
	}
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	slow := mocks.NewMockEventSink(ctrl)
	next := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(log, 1, 20*time.Millisecond, slow, next)

	// Given a sink blocking until its context expires
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.DomainEvent) error {
			<-ctx.Done()
			return ctx.Err()
		})
	next.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil)

	// When fanning out
	start := time.Now()
	fanout.Fanout(started())

	// Then the slow sink is abandoned and the next one still served
	req.Less(time.Since(start), time.Second)
}

func TestEventFanout_Drops_When_Buffer_Is_Full(t *testing.T) {
	req := require.New(t)
	fanout := NewEventFanout(slog.Default(), 1, 10*time.Millisecond)

	// Given no loop draining the buffer
	req.NoError(fanout.Consume(context.Background(), started()))

	// When another event is queued
	err := fanout.Consume(context.Background(), started())

	// Then it is dropped
	req.ErrorIs(err, errors.ErrEventDropped)
}

func TestEventFanout_Flushes_On_Stop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(slog.Default(), 4, time.Second, sink)

	// Given events queued before the loop starts
	req.NoError(fanout.Consume(context.Background(), started()))
	req.NoError(fanout.Consume(context.Background(), started()))
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// When the loop runs with an already canceled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.NoError(fanout.Run(ctx))
}
