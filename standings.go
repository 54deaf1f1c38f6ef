package tabelle

import "context"

// StandingsRow is one team's line in a season-end league table. Statistical
// columns are kept as the source's strings; the site uses non-numeric
// placeholders for seasons with incomplete records.
type StandingsRow struct {
	Position       string
	Team           string
	Played         string
	Won            string
	Drawn          string
	Lost           string
	GoalRatio      string
	GoalDifference string
	Points         string

	// TeamURL is the absolute URL of the team's homepage. Empty when the
	// table row carried no link.
	TeamURL string
}

// StandingsExtractor decodes a fetched standings page into ordered rows,
// one per team, in final rank order.
type StandingsExtractor interface {
	// ExtractStandings locates the ranking table for the named league and
	// decodes its rows. Structurally malformed rows are skipped and logged,
	// never fatal; a page without a ranking table at all returns ENOTFOUND.
	// The returned sequence preserves source order.
	ExtractStandings(html string, leagueName string) ([]StandingsRow, error)
}

// StandingsWriter persists one season's standings.
type StandingsWriter interface {
	WriteStandings(ctx context.Context, target Target, rows []StandingsRow) error
}
