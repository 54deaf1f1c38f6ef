package tabelle

import (
	"fmt"
	"strings"
)

// Target identifies one (league, season) unit of extraction. Targets are
// supplied by the caller; the core never enumerates them itself.
type Target struct {
	// LeagueName is the human-readable league name as it appears on the
	// site (e.g., "Premier League"). Used for section lookup on schedule
	// pages, so it must match the site's presentation exactly.
	LeagueName string

	// LeagueSlug is the URL-friendly league identifier (e.g.,
	// "premier-league").
	LeagueSlug string

	// LeagueCode is the site's competition code (e.g., "GB1").
	LeagueCode string

	// SeasonYear is the starting year of the season (e.g., 2023 for the
	// 2023/24 season).
	SeasonYear int
}

// Validate returns an error if the target contains invalid fields.
func (t Target) Validate() error {
	if t.LeagueName == "" {
		return Errorf(EINVALID, "league name required")
	}
	if t.LeagueSlug == "" {
		return Errorf(EINVALID, "league slug required")
	}
	if t.LeagueCode == "" {
		return Errorf(EINVALID, "league code required")
	}
	if t.SeasonYear <= 0 {
		return Errorf(EINVALID, "season year required")
	}
	return nil
}

// Competitions that run within a single calendar year: the site keys their
// season_id by the previous year.
var calendarYearCodes = map[string]bool{
	"BRA1": true,
	"BRA2": true,
	"JAP1": true,
	"JAP2": true,
	"CLPD": true,
}

// StandingsURL returns the absolute URL of the season-end standings page
// for this target.
func (t Target) StandingsURL(baseURL string) string {
	year := t.SeasonYear
	if calendarYearCodes[t.LeagueCode] {
		year--
	}
	return fmt.Sprintf("%s/%s/tabelle/wettbewerb/%s/saison_id/%d",
		strings.TrimRight(baseURL, "/"), t.LeagueSlug, t.LeagueCode, year)
}

// ScheduleURL derives a team's full-season schedule URL from its homepage
// URL as extracted from the standings table. The fragment pins the page to
// the competition's section.
func ScheduleURL(teamURL, leagueCode string) string {
	return strings.Replace(teamURL, "/startseite/", "/spielplan/", 1) + "/plus/1#" + leagueCode
}
