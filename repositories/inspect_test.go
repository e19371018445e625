package repositories

import (
	"caiu-perdeu/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func Test_ResultMapper(t *testing.T) {
	req := require.New(t)
	start := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	alice := eliminated("1", "Alice", start.Add(10*time.Minute))
	result := newResult("guild", start, &alice, alice, eliminated("2", "Bob", start.Add(time.Minute)))

	record, err := fromResult(result)
	req.NoError(err)
	bytes, err := proto.Marshal(record)
	req.NoError(err)

	row := ResultMapper("game:guild:1", bytes)

	req.Equal(string(domain.OutcomeWinner), row.Type)
	req.Equal("Alice won against 1 players in 10m0s", row.Detail)

	row = ResultMapper("game:guild:2", []byte("not a record"))
	req.Equal("Error: unmarshal failed", row.Detail)
}
