package service

import (
	"fmt"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
	"github.com/Vicentealoise3/strike-latino-2a/internal/ingest/theshow"
	"github.com/Vicentealoise3/strike-latino-2a/internal/league"
)

// Service is the aggregation core. It owns no mutable state: every call to
// ComputeRows or GamesToday is self-contained and idempotent for a given
// upstream snapshot and current time.
type Service struct {
	cfg    *config.Config
	league *league.League
	client *theshow.Client
	dumper *Dumper
	loc    *time.Location
	now    func() time.Time
}

// New creates the aggregation service.
func New(cfg *config.Config, lg *league.League, client *theshow.Client) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	return &Service{
		cfg:    cfg,
		league: lg,
		client: client,
		dumper: NewDumper(cfg),
		loc:    loc,
		now:    time.Now,
	}, nil
}
