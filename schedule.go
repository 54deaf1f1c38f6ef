package tabelle

import "context"

// AudienceUnknown marks a fixture whose attendance is missing or
// non-numeric on the source page. A real attendance is never negative, so
// the sentinel is unambiguous.
const AudienceUnknown = -1

// MatchRow is one fixture in a team's full-season schedule.
type MatchRow struct {
	Round     string
	Date      string
	Time      string
	HomeTeam  string
	AwayTeam  string
	Formation string
	Coach     string

	// Audience is the attendance count, or AudienceUnknown.
	Audience int

	Result string

	// MatchLink is the absolute URL of the match report. Empty when the
	// result cell carried no link.
	MatchLink string
}

// ScheduleExtractor decodes a fetched team schedule page into ordered
// fixtures in schedule appearance order (chronological by round).
type ScheduleExtractor interface {
	// ExtractSchedule locates the fixture table for the given competition
	// and decodes its rows. Malformed rows are skipped and logged; a page
	// without the fixture table at all returns ENOTFOUND.
	ExtractSchedule(html string, leagueName string, leagueCode string) ([]MatchRow, error)
}

// ScheduleWriter persists one team's season schedule.
type ScheduleWriter interface {
	WriteSchedule(ctx context.Context, target Target, team string, rows []MatchRow) error
}
