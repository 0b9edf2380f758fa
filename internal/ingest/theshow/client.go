package theshow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
	"github.com/Vicentealoise3/strike-latino-2a/internal/games"
)

const historyPath = "/apis/game_history.json"

// Client fetches paginated game history from The Show's public API.
type Client struct {
	baseURL    string
	platform   string
	http       *http.Client
	retries    int
	retryPause time.Duration
}

// NewClient creates a history client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.APIBase,
		platform:   cfg.Platform,
		http:       &http.Client{Timeout: cfg.Timeout},
		retries:    cfg.Retries,
		retryPause: cfg.RetryPause,
	}
}

// FetchPage fetches one history page for an identity, retrying transport and
// status failures up to the configured attempt budget with a short pause
// between attempts. Callers treat an exhausted budget as an empty page; one
// identity's outage must not abort a whole aggregation.
func (c *Client) FetchPage(ctx context.Context, identity string, page int) ([]games.Record, error) {
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryPause):
			}
		}

		records, err := c.fetchOnce(ctx, identity, page)
		if err == nil {
			return records, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("fetching %s page %d: %w", identity, page, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, identity string, page int) ([]games.Record, error) {
	params := url.Values{}
	params.Set("username", identity)
	params.Set("platform", c.platform)
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+historyPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return ParseHistory(payload), nil
}
