package config

import (
	"fmt"
	"time"
)

// Run modes. Each selects a Profile of verbosity and day-window settings.
const (
	ModeDebug  = "debug"
	ModeOnline = "online"
)

// Day-window policies for the "games today" report.
const (
	WindowCalendar = "calendar" // 00:00-23:59 local
	WindowSports   = "sports"   // 06:00-05:59 local
)

// Entrant is one league participant: the exact account identity used for
// fetching and the team they play as.
type Entrant struct {
	Identity string
	Team     string
}

// RecordAdjustment is a fixed win/loss delta applied to a team's raw record,
// used for retroactive rulings (disconnections, replays).
type RecordAdjustment struct {
	Wins   int
	Losses int
}

// PointAdjustment is a fixed point delta applied after the base score, with
// the ruling that motivated it.
type PointAdjustment struct {
	Points int
	Reason string
}

// Profile groups the knobs that differ between run modes.
type Profile struct {
	PrintDetails        bool
	PrintCaptureSummary bool
	PrintCaptureList    bool
	DumpEnabled         bool
	MaxEntrants         int // 0 = all entrants
	DayWindowMode       string
}

// Profiles maps run mode to its settings.
var Profiles = map[string]Profile{
	ModeDebug: {
		PrintDetails:        false,
		PrintCaptureSummary: true,
		PrintCaptureList:    false,
		DumpEnabled:         true,
		MaxEntrants:         0,
		DayWindowMode:       WindowCalendar,
	},
	ModeOnline: {
		PrintDetails:        false,
		PrintCaptureSummary: false,
		PrintCaptureList:    false,
		DumpEnabled:         false,
		MaxEntrants:         0,
		DayWindowMode:       WindowSports,
	},
}

// Config carries every constant the aggregation core needs. It is built once
// at startup and passed into each component, so two configs with different
// profiles can coexist in the same process.
type Config struct {
	Mode    string
	Profile Profile

	// Upstream API
	APIBase    string
	Platform   string
	Timeout    time.Duration
	Retries    int
	RetryPause time.Duration
	Pages      []int

	// Filtering
	ModeFilter string
	Since      time.Time

	// Table metrics
	ScheduledGames int

	// Reporting
	Timezone string
	DumpDir  string

	// League roster
	League            []Entrant
	Aliases           map[string][]string
	RecordAdjustments map[string]RecordAdjustment
	PointAdjustments  map[string]PointAdjustment
	ExtraMembers      []string
}

// Default returns the production configuration: online profile, full league
// roster, and the current adjustment rulings.
func Default() *Config {
	cfg := &Config{
		APIBase:        "https://mlb25.theshow.com",
		Platform:       "psn",
		Timeout:        20 * time.Second,
		Retries:        2,
		RetryPause:     400 * time.Millisecond,
		Pages:          []int{1, 2, 3},
		ModeFilter:     "LEAGUE",
		Since:          time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC),
		ScheduledGames: 13,
		Timezone:       "America/Santiago",
		DumpDir:        "out",
		League: []Entrant{
			{"THELSURICATO", "Mets"},
			{"machado_seba-03", "Reds"},
			{"zancudo99", "Rangers"},
			{"havanavcr10", "Brewers"},
			{"Solbbracho", "Tigers"},
			{"WILZULIA", "Royals"},
			{"Daviddiaz030425", "Guardians"},
			{"Juanchojs28", "Giants"},
			{"me_dicencarlitos", "Marlins"},
			{"Bufon3-0", "Athletics"},
			{"edwar13-21", "Blue Jays"},
			{"mrguerrillas", "Pirates"},
			{"Diamondmanager", "Astros"},
			{"Tu_Pauta2000", "Braves"},
		},
		Aliases: map[string][]string{
			"Tu_Pauta2000": {"Lachi_1991"},
		},
		RecordAdjustments: map[string]RecordAdjustment{
			"Blue Jays": {Wins: 0, Losses: -1},
			"Brewers":   {Wins: -1, Losses: 0},
		},
		PointAdjustments: map[string]PointAdjustment{},
		ExtraMembers:     []string{"AiramReynoso_", "Yosoyreynoso_"},
	}
	cfg.SetMode(ModeOnline)
	return cfg
}

// SetMode applies the profile for the given run mode. Unknown modes fall back
// to the debug profile so a typo degrades to the safe, verbose settings.
func (c *Config) SetMode(mode string) {
	profile, ok := Profiles[mode]
	if !ok {
		mode = ModeDebug
		profile = Profiles[ModeDebug]
	}
	c.Mode = mode
	c.Profile = profile
}

// Validate catches deployment misconfigurations that would otherwise corrupt
// output silently. It must be called once at startup.
func (c *Config) Validate() error {
	switch c.Profile.DayWindowMode {
	case WindowCalendar, WindowSports:
	default:
		return fmt.Errorf("invalid day window mode %q", c.Profile.DayWindowMode)
	}
	if len(c.Pages) == 0 {
		return fmt.Errorf("no pages configured")
	}
	if c.Retries < 1 {
		return fmt.Errorf("retries must be at least 1, got %d", c.Retries)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return nil
}
