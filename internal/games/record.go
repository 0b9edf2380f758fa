package games

import (
	"strings"

	"github.com/Vicentealoise3/strike-latino-2a/internal/league"
)

// Record is one fetched game from the history feed. All fields are kept as
// the feed's display strings; numeric fields arrive as either JSON strings or
// numbers and are stringified on ingest.
type Record struct {
	ID                string `json:"id"`
	GameMode          string `json:"game_mode"`
	DisplayDate       string `json:"display_date"`
	HomeFullName      string `json:"home_full_name"`
	AwayFullName      string `json:"away_full_name"`
	HomeName          string `json:"home_name"`
	AwayName          string `json:"away_name"`
	HomeDisplayResult string `json:"home_display_result"`
	AwayDisplayResult string `json:"away_display_result"`
	HomeRuns          string `json:"home_runs"`
	AwayRuns          string `json:"away_runs"`
	PitcherInfo       string `json:"display_pitcher_info"`
}

// Runs returns the run counts as display strings, defaulting empty values
// to "0".
func (r Record) Runs() (home, away string) {
	home, away = r.HomeRuns, r.AwayRuns
	if home == "" {
		home = "0"
	}
	if away == "" {
		away = "0"
	}
	return home, away
}

// ContentKey builds the composite key used to collapse duplicate records that
// resurface under different identifiers.
func (r Record) ContentKey() string {
	hr, ar := r.Runs()
	return strings.Join([]string{
		strings.TrimSpace(r.HomeFullName),
		strings.TrimSpace(r.AwayFullName),
		hr,
		ar,
		strings.TrimSpace(r.PitcherInfo),
	}, "\x1f")
}

// Outcome resolves the winning and losing team names from the display
// results. Exactly one side must be marked "W"; a record where neither or
// both sides claim the win resolves to no outcome.
func (r Record) Outcome() (winner, loser string, ok bool) {
	hw := strings.ToUpper(strings.TrimSpace(r.HomeDisplayResult)) == "W"
	aw := strings.ToUpper(strings.TrimSpace(r.AwayDisplayResult)) == "W"
	home := strings.TrimSpace(r.HomeFullName)
	away := strings.TrimSpace(r.AwayFullName)
	switch {
	case hw && !aw:
		return home, away, true
	case aw && !hw:
		return away, home, true
	}
	return "", "", false
}

// Features reports whether the given team plays in this record, as home or
// away, by normalized name.
func (r Record) Features(teamName string) bool {
	team := league.NormalizeTeam(teamName)
	return team == league.NormalizeTeam(r.HomeFullName) ||
		team == league.NormalizeTeam(r.AwayFullName)
}
