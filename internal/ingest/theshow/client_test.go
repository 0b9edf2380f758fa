package theshow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
)

func testClient(baseURL string) *Client {
	cfg := config.Default()
	cfg.APIBase = baseURL
	cfg.Retries = 2
	cfg.RetryPause = time.Millisecond
	cfg.Timeout = 2 * time.Second
	return NewClient(cfg)
}

func TestFetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/apis/game_history.json" {
			t.Errorf("path = %q, want /apis/game_history.json", got)
		}
		q := r.URL.Query()
		if q.Get("username") != "THELSURICATO" || q.Get("platform") != "psn" || q.Get("page") != "2" {
			t.Errorf("unexpected query: %v", q)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"game_history": []map[string]interface{}{
				{
					"id":           12345, // numeric in the feed
					"game_mode":    "LEAGUE",
					"display_date": "08/30/2025 15:28",
					"home_full_name": "Mets", "away_full_name": "Reds",
					"home_name": "mets_owner", "away_name": "reds_owner",
					"home_display_result": "W", "away_display_result": "L",
					"home_runs": 4, "away_runs": "2",
					"display_pitcher_info": "deGrom vs Greene",
				},
			},
		})
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).FetchPage(context.Background(), "THELSURICATO", 2)
	if err != nil {
		t.Fatalf("FetchPage error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1", len(records))
	}

	g := records[0]
	if g.ID != "12345" {
		t.Errorf("numeric id not stringified: got %q", g.ID)
	}
	if g.HomeRuns != "4" || g.AwayRuns != "2" {
		t.Errorf("runs = (%q, %q), want (\"4\", \"2\")", g.HomeRuns, g.AwayRuns)
	}
	if g.HomeFullName != "Mets" || g.PitcherInfo != "deGrom vs Greene" {
		t.Errorf("unexpected record: %+v", g)
	}
}

func TestFetchPageMissingHistoryKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).FetchPage(context.Background(), "anyone", 1)
	if err != nil {
		t.Fatalf("FetchPage error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0 when game_history is absent", len(records))
	}
}

func TestFetchPageRetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"game_history": []}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchPage(context.Background(), "anyone", 1)
	if err != nil {
		t.Fatalf("FetchPage should recover on the second attempt, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestFetchPageExhaustsRetryBudget(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchPage(context.Background(), "anyone", 1)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2 (the configured attempt budget)", got)
	}
}

func TestFetchPageMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).FetchPage(context.Background(), "anyone", 1); err == nil {
		t.Fatal("expected error for a non-JSON body")
	}
}
