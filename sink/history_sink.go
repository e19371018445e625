package sink

import (
	"caiu-perdeu/contract"
	"caiu-perdeu/domain/event"
	"context"
	"fmt"
	"log/slog"
)

// HistorySink records finished games. Aborted games are not results and are skipped.
type HistorySink struct {
	repository contract.IGameRepository
	log        *slog.Logger
}

func NewHistorySink(repository contract.IGameRepository, log *slog.Logger) HistorySink {
	return HistorySink{repository: repository, log: log}
}

func (h HistorySink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.GameOver:
		if len(evt.Result.Players) == 0 {
			h.log.Debug("Game ended before the roster was captured, nothing to record", "game_id", evt.GameID)
			return nil
		}
		return h.repository.StoreResult(evt.Result)
	default:
		h.log.Debug(fmt.Sprintf("Not recorded event : %s", evt.Type()))
		return nil
	}
}
