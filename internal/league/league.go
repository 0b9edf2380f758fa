package league

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
)

// The API wraps some account names in a platform tag like "^b12^PlayerX".
// The tag is presentation noise and must be stripped before any comparison.
var tagPattern = regexp.MustCompile(`(?i)\^b\d+\^`)

// NormalizeIdentity strips platform tags, trims whitespace, and lower-cases
// an account identity for comparison. Idempotent.
func NormalizeIdentity(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(tagPattern.ReplaceAllString(raw, "")))
}

// IsCPU reports whether an account identity is the CPU sentinel.
func IsCPU(raw string) bool {
	return NormalizeIdentity(raw) == "cpu"
}

// NormalizeTeam normalizes a full team name for comparison.
func NormalizeTeam(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// League resolves entrants to their fetchable identities and answers
// membership queries against the normalized roster.
type League struct {
	order   []config.Entrant
	aliases map[string][]string
	members map[string]struct{}
}

// New builds the league roster from configuration. The membership set holds
// every entrant's primary identity, every alias, and the extra roster entries.
func New(cfg *config.Config) *League {
	l := &League{
		order:   cfg.League,
		aliases: cfg.Aliases,
		members: make(map[string]struct{}),
	}
	for _, e := range cfg.League {
		l.members[NormalizeIdentity(e.Identity)] = struct{}{}
	}
	for primary, alts := range cfg.Aliases {
		l.members[NormalizeIdentity(primary)] = struct{}{}
		for _, a := range alts {
			l.members[NormalizeIdentity(a)] = struct{}{}
		}
	}
	for _, m := range cfg.ExtraMembers {
		l.members[NormalizeIdentity(m)] = struct{}{}
	}
	return l
}

// Entrants returns the configured entrant list in league order.
func (l *League) Entrants() []config.Entrant {
	return l.order
}

// FetchIdentities returns the identities whose game history must be merged
// for a primary identity: the primary itself followed by its aliases,
// in configured order.
func (l *League) FetchIdentities(primary string) []string {
	ids := []string{primary}
	return append(ids, l.aliases[primary]...)
}

// IdentityPool returns every entrant's primary and alias identities,
// deduplicated and sorted so fan-out order is deterministic.
func (l *League) IdentityPool() []string {
	seen := make(map[string]struct{})
	var pool []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		pool = append(pool, id)
	}
	for _, e := range l.order {
		add(e.Identity)
	}
	for primary, alts := range l.aliases {
		add(primary)
		for _, a := range alts {
			add(a)
		}
	}
	sort.Strings(pool)
	return pool
}

// IsMember reports whether a raw account identity belongs to the league,
// after normalization.
func (l *League) IsMember(raw string) bool {
	_, ok := l.members[NormalizeIdentity(raw)]
	return ok
}
