package repositories

import (
	"caiu-perdeu/domain"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// GameRepository keeps finished game results in Badger.
// The database is opened in memory by the bot, so history lasts as long as the process.
type GameRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitResults *int
}

func NewGameRepository(db *badger.DB, log *slog.Logger, limitResults *int) GameRepository {
	return GameRepository{db: db, log: log, limitResults: limitResults}
}

// OpenInMemory opens a Badger instance that never touches the disk.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.WARNING))
}

// StoreResult persists a finished game.
// The key is formatted as "game:{guild_id}:{ended_at_padded}:{uuid}" to:
//  1. Keep results of a guild sorted by end time (19-digit zero padding).
//  2. Never overwrite two games ending at the same nanosecond.
func (g GameRepository) StoreResult(result domain.Result) error {
	key := fmt.Sprintf("game:%s:%019d:%s",
		result.GuildID,
		result.EndedAt.UnixNano(),
		result.GameID,
	)
	record, err := fromResult(result)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(record)
	if err != nil {
		return err
	}
	return g.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetResults returns the results of a guild, newest first.
// The returned cursor resumes right after the last returned result.
func (g GameRepository) GetResults(guildID string, cursor *string) ([]domain.Result, *string, error) {
	var byteResults [][]byte
	var lastKey string
	err := g.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("game:%s:", guildID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if g.limitResults != nil && len(byteResults) == *g.limitResults {
				g.log.Debug(fmt.Sprintf("Maximum of %d results reached", *g.limitResults))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(value []byte) error {
				byteResults = append(byteResults, value)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	results, err := decodeResults(byteResults)
	if err != nil {
		return nil, nil, err
	}
	return results, &lastKey, nil
}

// Leaderboard aggregates every stored result of a guild.
// Players are ranked by wins, then by their longest survival.
func (g GameRepository) Leaderboard(guildID string) ([]domain.LeaderboardEntry, error) {
	var byteResults [][]byte
	err := g.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("game:%s:", guildID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			byteResults = append(byteResults, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results, err := decodeResults(byteResults)
	if err != nil {
		return nil, err
	}

	entries := make(map[domain.Identity]*domain.LeaderboardEntry)
	for _, result := range results {
		for _, player := range result.Players {
			entry, ok := entries[player.ID]
			if !ok {
				entry = &domain.LeaderboardEntry{PlayerID: player.ID}
				entries[player.ID] = entry
			}
			// Results are read oldest first, the latest name wins
			entry.DisplayName = player.DisplayName
			entry.Games++
			if result.HasWinner() && result.Winner.ID == player.ID {
				entry.Wins++
			}
			if survived := player.Survived(result.StartedAt, result.EndedAt); survived > entry.Best {
				entry.Best = survived
			}
		}
	}

	board := lo.Map(lo.Values(entries), func(e *domain.LeaderboardEntry, _ int) domain.LeaderboardEntry {
		return *e
	})
	slices.SortStableFunc(board, func(a, b domain.LeaderboardEntry) int {
		switch {
		case a.Wins != b.Wins:
			return b.Wins - a.Wins
		case a.Best != b.Best:
			if a.Best > b.Best {
				return -1
			}
			return 1
		case a.DisplayName < b.DisplayName:
			return -1
		case a.DisplayName > b.DisplayName:
			return 1
		default:
			return 0
		}
	})
	return board, nil
}

func decodeResults(values [][]byte) ([]domain.Result, error) {
	var results []domain.Result
	for _, b := range values {
		var record structpb.Struct
		if err := proto.Unmarshal(b, &record); err != nil {
			return nil, err
		}
		result, err := toResult(&record)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func fromResult(result domain.Result) (*structpb.Struct, error) {
	players := lo.Map(result.Players, func(p domain.Player, _ int) any {
		player := map[string]any{
			"id":   string(p.ID),
			"name": p.DisplayName,
		}
		if p.EliminatedAt != nil {
			player["eliminated_at"] = formatTime(*p.EliminatedAt)
		}
		return player
	})
	record := map[string]any{
		"id":         result.GameID.String(),
		"guild":      result.GuildID,
		"outcome":    string(result.Outcome),
		"started_at": formatTime(result.StartedAt),
		"ended_at":   formatTime(result.EndedAt),
		"players":    players,
	}
	if result.Winner != nil {
		record["winner"] = string(result.Winner.ID)
	}
	return structpb.NewStruct(record)
}

func toResult(record *structpb.Struct) (domain.Result, error) {
	fields := record.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.Result{}, err
	}
	startedAt, err := parseTime(fields["started_at"].GetStringValue())
	if err != nil {
		return domain.Result{}, err
	}
	endedAt, err := parseTime(fields["ended_at"].GetStringValue())
	if err != nil {
		return domain.Result{}, err
	}

	result := domain.Result{
		GameID:    id,
		GuildID:   fields["guild"].GetStringValue(),
		Outcome:   domain.Outcome(fields["outcome"].GetStringValue()),
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Elapsed:   endedAt.Sub(startedAt),
	}

	winnerID := domain.Identity(fields["winner"].GetStringValue())
	for _, value := range fields["players"].GetListValue().GetValues() {
		playerFields := value.GetStructValue().GetFields()
		player := domain.Player{
			ID:          domain.Identity(playerFields["id"].GetStringValue()),
			DisplayName: playerFields["name"].GetStringValue(),
		}
		if raw, ok := playerFields["eliminated_at"]; ok {
			at, err := parseTime(raw.GetStringValue())
			if err != nil {
				return domain.Result{}, err
			}
			player.EliminatedAt = &at
		}
		result.Players = append(result.Players, player)
		if winnerID != "" && player.ID == winnerID {
			result.Winner = lo.ToPtr(player)
		}
	}
	return result, nil
}

// Times are stored as Unix nanoseconds in strings, structpb numbers being float64.
func formatTime(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10)
}

func parseTime(s string) (time.Time, error) {
	nanos, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, nanos).UTC(), nil
}
