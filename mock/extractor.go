package mock

import "github.com/dcravo/tabelle"

var _ tabelle.StandingsExtractor = (*StandingsExtractor)(nil)

// StandingsExtractor is a mock implementation of tabelle.StandingsExtractor.
type StandingsExtractor struct {
	ExtractStandingsFn func(html string, leagueName string) ([]tabelle.StandingsRow, error)
}

func (e *StandingsExtractor) ExtractStandings(html string, leagueName string) ([]tabelle.StandingsRow, error) {
	return e.ExtractStandingsFn(html, leagueName)
}

var _ tabelle.ScheduleExtractor = (*ScheduleExtractor)(nil)

// ScheduleExtractor is a mock implementation of tabelle.ScheduleExtractor.
type ScheduleExtractor struct {
	ExtractScheduleFn func(html string, leagueName string, leagueCode string) ([]tabelle.MatchRow, error)
}

func (e *ScheduleExtractor) ExtractSchedule(html string, leagueName string, leagueCode string) ([]tabelle.MatchRow, error) {
	return e.ExtractScheduleFn(html, leagueName, leagueCode)
}
