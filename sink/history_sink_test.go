package sink

import (
	"caiu-perdeu/domain"
	"caiu-perdeu/domain/event"
	"caiu-perdeu/mocks"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistorySink_Stores_Finished_Games(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIGameRepository(ctrl)
	sink := NewHistorySink(repository, slog.Default())

	result := domain.Result{
		GameID:  uuid.New(),
		GuildID: "guild",
		Outcome: domain.OutcomeNoContest,
		Players: []domain.Player{{ID: "1"}, {ID: "2"}},
	}
	repository.EXPECT().StoreResult(result).Return(nil).Times(1)

	req.NoError(sink.Consume(context.Background(), event.GameOver{Result: result}))
}

func TestHistorySink_Propagates_Storage_Errors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIGameRepository(ctrl)
	sink := NewHistorySink(repository, slog.Default())

	boom := errors.New("badger closed")
	repository.EXPECT().StoreResult(gomock.Any()).Return(boom)

	err := sink.Consume(context.Background(), event.GameOver{Result: domain.Result{Players: []domain.Player{{ID: "1"}}}})
	req.ErrorIs(err, boom)
}

func TestHistorySink_Ignores_Other_Events(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIGameRepository(ctrl)
	sink := NewHistorySink(repository, slog.Default())

	// No call expected on the repository
	req.NoError(sink.Consume(context.Background(), event.PlayerEliminated{}))
	req.NoError(sink.Consume(context.Background(), event.GameAborted{Reason: errors.New("fetch")}))
	req.NoError(sink.Consume(context.Background(), event.GameOver{Result: domain.Result{Outcome: domain.OutcomeNoContest}}))
}
