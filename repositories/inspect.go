package repositories

import (
	"fmt"

	"github.com/mama165/sdk-go/database"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ResultMapper renders a stored game result as a row of the debug inspector.
func ResultMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var record structpb.Struct
	if err := proto.Unmarshal(val, &record); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	result, err := toResult(&record)
	if err != nil {
		row.Detail = fmt.Sprintf("Error: %v", err)
		return row
	}

	row.Type = string(result.Outcome)
	if result.Winner != nil {
		row.Detail = fmt.Sprintf("%s won against %d players in %s",
			result.Winner.DisplayName, len(result.Players)-1, result.Elapsed)
	} else {
		row.Detail = fmt.Sprintf("no contest between %d players", len(result.Players))
	}
	return row
}
