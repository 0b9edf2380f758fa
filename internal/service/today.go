package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/games"
)

// GamesToday reports the league games played inside the current day window,
// chronologically, as rendered summary lines like
//
//	Yankees 1 - Brewers 2  - 30-08-2025 - 3:28 pm (hora Chile)
//
// Unlike the standings filter, both participants must be league members:
// a member's CPU game still moves their record but is not worth reporting
// as a game of the day. Records are deduplicated by identifier and by
// content key, since the feed can resurface the same game under different
// identifiers.
func (s *Service) GamesToday(ctx context.Context) ([]string, error) {
	window, err := s.DayWindow(time.Time{})
	if err != nil {
		return nil, err
	}

	all := s.fetchAll(ctx, s.league.IdentityPool())

	type item struct {
		at   time.Time
		line string
	}
	seenIDs := make(map[string]struct{})
	seenKeys := make(map[string]struct{})
	var items []item

	for _, g := range games.DedupByID(all) {
		if !games.ModeMatches(g, s.cfg.ModeFilter) {
			continue
		}
		d, ok := games.ParseDisplayDate(g.DisplayDate)
		if !ok {
			continue
		}
		local := d.In(s.loc)
		if !window.Contains(local) {
			continue
		}
		if !s.league.IsMember(g.HomeName) || !s.league.IsMember(g.AwayName) {
			continue
		}

		if g.ID != "" {
			if _, dup := seenIDs[g.ID]; dup {
				continue
			}
		}
		key := g.ContentKey()
		if _, dup := seenKeys[key]; dup {
			continue
		}
		if g.ID != "" {
			seenIDs[g.ID] = struct{}{}
		}
		seenKeys[key] = struct{}{}

		hr, ar := g.Runs()
		items = append(items, item{
			at: local,
			line: fmt.Sprintf("%s %s - %s %s  - %s (hora Chile)",
				strings.TrimSpace(g.HomeFullName), hr, strings.TrimSpace(g.AwayFullName), ar,
				local.Format("02-01-2006 - 3:04 pm")),
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].at.Before(items[j].at) })

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.line)
	}

	s.dumper.Write("games_today.json", map[string]interface{}{
		"generated_at": s.now().Format("2006-01-02 15:04:05"),
		"items":        lines,
	})
	return lines, nil
}
