package theshow

import (
	"strconv"

	"github.com/Vicentealoise3/strike-latino-2a/internal/games"
)

// ParseHistory extracts the game_history array from a decoded response body.
// A missing or malformed array yields an empty slice, never an error.
func ParseHistory(payload map[string]interface{}) []games.Record {
	history := extractArray(payload, "game_history")
	records := make([]games.Record, 0, len(history))
	for _, item := range history {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		records = append(records, parseRecord(entry))
	}
	return records
}

func parseRecord(m map[string]interface{}) games.Record {
	return games.Record{
		ID:                extractString(m, "id"),
		GameMode:          extractString(m, "game_mode"),
		DisplayDate:       extractString(m, "display_date"),
		HomeFullName:      extractString(m, "home_full_name"),
		AwayFullName:      extractString(m, "away_full_name"),
		HomeName:          extractString(m, "home_name"),
		AwayName:          extractString(m, "away_name"),
		HomeDisplayResult: extractString(m, "home_display_result"),
		AwayDisplayResult: extractString(m, "away_display_result"),
		HomeRuns:          extractString(m, "home_runs"),
		AwayRuns:          extractString(m, "away_runs"),
		PitcherInfo:       extractString(m, "display_pitcher_info"),
	}
}

// extractString stringifies a field that the feed emits as either a JSON
// string or a number.
func extractString(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arr, ok := v.([]interface{}); ok {
			return arr
		}
	}
	return []interface{}{}
}
