package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/Vicentealoise3/strike-latino-2a/internal/games"
	"github.com/Vicentealoise3/strike-latino-2a/internal/league"
)

// Row is one team's line in the standings table, immutable once computed.
type Row struct {
	User         string   `json:"user"`
	Team         string   `json:"team"`
	Scheduled    int      `json:"scheduled"`
	Played       int      `json:"played"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Remaining    int      `json:"remaining"`
	Points       int      `json:"points"`
	PointsBase   int      `json:"points_base"`
	PointsExtra  int      `json:"points_extra"`
	PointsReason string   `json:"points_reason"`
	Detail       []string `json:"detail"`
}

// ComputeTeamRecord fetches the history for an entrant's primary identity and
// aliases, filters it, and produces the team's standings row. Wins and losses
// are credited by the team name marked "W", no matter which identity's page
// surfaced the record; a team's win can be discovered through any member's
// history.
func (s *Service) ComputeTeamRecord(ctx context.Context, identity, teamName string) Row {
	raw := s.fetchAll(ctx, s.league.FetchIdentities(identity))
	deduped := games.DedupByID(raw)

	considered := make([]games.Record, 0, len(deduped))
	for _, g := range deduped {
		if games.CountsForTeam(g, teamName, s.cfg.ModeFilter, s.cfg.Since, s.league) {
			considered = append(considered, g)
		}
	}

	if s.cfg.Profile.PrintCaptureSummary {
		log.Printf("    [capturas] %s (%s): raw=%d  dedup=%d  considerados=%d",
			teamName, identity, len(raw), len(deduped), len(considered))
	}
	base := SafeName(identity)
	s.dumper.Write(base+"_raw.json", raw)
	s.dumper.Write(base+"_dedup.json", deduped)
	s.dumper.Write(base+"_considered.json", considered)

	wins, losses := 0, 0
	detail := []string{}
	team := league.NormalizeTeam(teamName)
	for _, g := range considered {
		winner, loser, ok := g.Outcome()
		if !ok {
			continue
		}
		switch team {
		case league.NormalizeTeam(winner):
			wins++
		case league.NormalizeTeam(loser):
			losses++
		}
		if s.cfg.Profile.PrintDetails {
			detail = append(detail, fmt.Sprintf("%s  %s @ %s -> ganó %s",
				g.DisplayDate, g.AwayFullName, g.HomeFullName, winner))
		}
	}

	adj := s.cfg.RecordAdjustments[teamName]
	wins += adj.Wins
	losses += adj.Losses

	played := wins + losses
	if played < 0 {
		played = 0
	}
	remaining := s.cfg.ScheduledGames - played
	if remaining < 0 {
		remaining = 0
	}
	pointsBase := 3*wins + 2*losses
	extra := s.cfg.PointAdjustments[teamName]

	return Row{
		User:         identity,
		Team:         teamName,
		Scheduled:    s.cfg.ScheduledGames,
		Played:       played,
		Wins:         wins,
		Losses:       losses,
		Remaining:    remaining,
		Points:       pointsBase + extra.Points,
		PointsBase:   pointsBase,
		PointsExtra:  extra.Points,
		PointsReason: extra.Reason,
		Detail:       detail,
	}
}

// ComputeRows produces the full standings table: one row per entrant, sorted
// by points descending, wins descending, losses ascending. The sort is stable
// so deeper ties keep league order.
func (s *Service) ComputeRows(ctx context.Context) []Row {
	entrants := s.league.Entrants()
	take := len(entrants)
	if limit := s.cfg.Profile.MaxEntrants; limit > 0 && limit < take {
		take = limit
	}

	rows := make([]Row, 0, take)
	for _, e := range entrants[:take] {
		rows = append(rows, s.ComputeTeamRecord(ctx, e.Identity, e.Team))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].Losses < rows[j].Losses
	})

	s.dumper.Write("standings.json", rows)
	return rows
}
