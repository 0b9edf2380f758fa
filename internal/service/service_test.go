package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
	"github.com/Vicentealoise3/strike-latino-2a/internal/games"
	"github.com/Vicentealoise3/strike-latino-2a/internal/ingest/theshow"
	"github.com/Vicentealoise3/strike-latino-2a/internal/league"
)

// newTestConfig returns a small three-team league with no adjustments and a
// single page per identity.
func newTestConfig() *config.Config {
	cfg := config.Default()
	cfg.League = []config.Entrant{
		{Identity: "mets_owner", Team: "Mets"},
		{Identity: "reds_owner", Team: "Reds"},
		{Identity: "rangers_owner", Team: "Rangers"},
	}
	cfg.Aliases = map[string][]string{}
	cfg.ExtraMembers = nil
	cfg.RecordAdjustments = map[string]config.RecordAdjustment{}
	cfg.PointAdjustments = map[string]config.PointAdjustment{}
	cfg.Pages = []int{1}
	cfg.Retries = 1
	cfg.RetryPause = time.Millisecond
	return cfg
}

// newTestService wires a service against a fake upstream serving the given
// page-1 history per identity. Record JSON tags already match the feed's
// field names, so the fixtures round-trip as-is.
func newTestService(t *testing.T, cfg *config.Config, histories map[string][]games.Record) *Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var records []games.Record
		if r.URL.Query().Get("page") == "1" {
			records = histories[r.URL.Query().Get("username")]
		}
		if records == nil {
			records = []games.Record{}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"game_history": records})
	}))
	t.Cleanup(srv.Close)

	cfg.APIBase = srv.URL
	svc, err := New(cfg, league.New(cfg), theshow.NewClient(cfg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

// leagueGame builds a finished league game with sensible defaults.
func leagueGame(id, date, home, away, homeName, awayName string, homeWon bool) games.Record {
	homeRes, awayRes := "L", "W"
	if homeWon {
		homeRes, awayRes = "W", "L"
	}
	return games.Record{
		ID:                id,
		GameMode:          "LEAGUE",
		DisplayDate:       date,
		HomeFullName:      home,
		AwayFullName:      away,
		HomeName:          homeName,
		AwayName:          awayName,
		HomeDisplayResult: homeRes,
		AwayDisplayResult: awayRes,
		HomeRuns:          "4",
		AwayRuns:          "2",
		PitcherInfo:       "SP " + id,
	}
}

func santiago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("loading America/Santiago: %v", err)
	}
	return loc
}
