package games

import (
	"strings"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/league"
)

// ModeMatches reports whether a record's game mode equals the configured
// mode filter, after trimming and upper-casing.
func ModeMatches(r Record, modeFilter string) bool {
	return strings.ToUpper(strings.TrimSpace(r.GameMode)) == modeFilter
}

// CountsForTeam decides whether a fetched record contributes to a team's
// standings record. All of the following must hold:
//
//  1. the game mode matches the filter;
//  2. the display date parses and is not before the inclusion threshold;
//  3. the team plays in the game, home or away;
//  4. both participants are league members, or one side is the CPU and the
//     other is a member. CPU-vs-CPU and outsider games never count.
//
// Cheap checks run first; an unparseable date is a plain rejection, never an
// error.
func CountsForTeam(r Record, teamName, modeFilter string, since time.Time, lg *league.League) bool {
	if !ModeMatches(r, modeFilter) {
		return false
	}
	d, ok := ParseDisplayDate(r.DisplayDate)
	if !ok || d.Before(since) {
		return false
	}
	if !r.Features(teamName) {
		return false
	}
	homeMember := lg.IsMember(r.HomeName)
	awayMember := lg.IsMember(r.AwayName)
	switch {
	case homeMember && awayMember:
		return true
	case league.IsCPU(r.HomeName) && awayMember:
		return true
	case league.IsCPU(r.AwayName) && homeMember:
		return true
	}
	return false
}
