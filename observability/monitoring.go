package observability

import (
	"caiu-perdeu/domain"
	"caiu-perdeu/domain/event"
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// RecentGameInfo is a finished or aborted game kept for the heartbeat report.
type RecentGameInfo struct {
	ID        string `json:"id"`
	Guild     string `json:"guild"`
	Outcome   string `json:"outcome"`
	Timestamp string `json:"timestamp"`
}

// MonitoringStats aggregates the counters reported by the heartbeat.
type MonitoringStats struct {
	GamesStarted  uint64           `json:"games_started"`
	GamesFinished uint64           `json:"games_finished"`
	GamesAborted  uint64           `json:"games_aborted"`
	Eliminations  uint64           `json:"eliminations"`
	ActiveGames   int64            `json:"active_games"`
	AllocMemMb    uint64           `json:"alloc_mem_mb"`
	NumGC         uint32           `json:"num_gc"`
	RecentGames   []RecentGameInfo `json:"recent_games"`
}

// MonitoringManager counts game lifecycle events.
// It is an event sink, shared by every running engine.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	recentGames []RecentGameInfo
	activeGames map[domain.GameID]struct{}

	gamesStarted  uint64
	gamesFinished uint64
	gamesAborted  uint64
	eliminations  uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:         log,
		recentGames: make([]RecentGameInfo, 0),
		activeGames: make(map[domain.GameID]struct{}),
	}
}

func (mm *MonitoringManager) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.GameStarted:
		atomic.AddUint64(&mm.gamesStarted, 1)
		mm.mu.Lock()
		mm.activeGames[evt.GameID] = struct{}{}
		mm.mu.Unlock()
	case event.PlayerEliminated:
		atomic.AddUint64(&mm.eliminations, 1)
	case event.GameOver:
		atomic.AddUint64(&mm.gamesFinished, 1)
		mm.endGame(evt, string(evt.Result.Outcome))
	case event.GameAborted:
		atomic.AddUint64(&mm.gamesAborted, 1)
		mm.endGame(evt, "ABORTED")
	}
	return nil
}

func (mm *MonitoringManager) endGame(e event.DomainEvent, outcome string) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	delete(mm.activeGames, e.Game())

	info := RecentGameInfo{
		ID:        e.Game().String(),
		Guild:     e.Guild(),
		Outcome:   outcome,
		Timestamp: e.OccurredAt().Format(time.TimeOnly),
	}
	mm.recentGames = append([]RecentGameInfo{info}, mm.recentGames...)
	if len(mm.recentGames) > 20 {
		mm.recentGames = mm.recentGames[:20]
	}
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return MonitoringStats{
		GamesStarted:  atomic.LoadUint64(&mm.gamesStarted),
		GamesFinished: atomic.LoadUint64(&mm.gamesFinished),
		GamesAborted:  atomic.LoadUint64(&mm.gamesAborted),
		Eliminations:  atomic.LoadUint64(&mm.eliminations),
		ActiveGames:   int64(len(mm.activeGames)),
		AllocMemMb:    m.Alloc / 1024 / 1024,
		NumGC:         m.NumGC,
		RecentGames:   append([]RecentGameInfo(nil), mm.recentGames...),
	}
}
