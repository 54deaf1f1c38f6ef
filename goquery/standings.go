package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dcravo/tabelle"
)

// Standings table column positions on the site. Columns 2 (club crest) is
// decorative and skipped, matching the page layout.
const (
	colPosition       = 0
	colTeam           = 1
	colPlayed         = 3
	colWon            = 4
	colDrawn          = 5
	colLost           = 6
	colGoalRatio      = 7
	colGoalDifference = 8
	colPoints         = 9

	standingsColumns = 10
)

// Ensure StandingsExtractor implements tabelle.StandingsExtractor at
// compile time.
var _ tabelle.StandingsExtractor = (*StandingsExtractor)(nil)

// StandingsExtractor decodes season-end league tables. The section lookup
// matches the configured league name against h2 headings exactly; this is
// a deliberate coupling to the site's presentation, with the page's single
// ranking table as fallback.
type StandingsExtractor struct {
	baseURL string
	logger  *slog.Logger
}

// NewStandingsExtractor creates a StandingsExtractor that resolves team
// links against baseURL and reports skipped rows through logger.
func NewStandingsExtractor(baseURL string, logger *slog.Logger) *StandingsExtractor {
	return &StandingsExtractor{baseURL: baseURL, logger: logger}
}

// ExtractStandings decodes the ranking table into ordered rows, one per
// team, in final rank order. Rows missing expected columns are skipped
// with a warning; a page without a ranking table returns ENOTFOUND.
func (e *StandingsExtractor) ExtractStandings(html string, leagueName string) ([]tabelle.StandingsRow, error) {
	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table := e.findTable(doc, leagueName)
	if table == nil {
		return nil, tabelle.Errorf(tabelle.ENOTFOUND, "standings table not found for %q", leagueName)
	}

	trs := table.Find("tr")
	rows := make([]tabelle.StandingsRow, 0, trs.Length())

	trs.Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		cells := tr.Find("td")
		if cells.Length() < standingsColumns {
			e.logger.Warn("skipping malformed standings row",
				"league", leagueName,
				"row", i,
				"cells", cells.Length(),
			)
			return
		}

		teamCell := cells.Eq(colTeam)
		anchor := teamCell.Find("a[href]").First()

		team := cellText(teamCell)
		teamURL := ""
		if anchor.Length() > 0 {
			if title, ok := anchor.Attr("title"); ok && strings.TrimSpace(title) != "" {
				team = strings.TrimSpace(title)
			}
			href, _ := anchor.Attr("href")
			teamURL = resolveURL(e.baseURL, href)
		}

		rows = append(rows, tabelle.StandingsRow{
			Position:       cellText(cells.Eq(colPosition)),
			Team:           team,
			Played:         cellText(cells.Eq(colPlayed)),
			Won:            cellText(cells.Eq(colWon)),
			Drawn:          cellText(cells.Eq(colDrawn)),
			Lost:           cellText(cells.Eq(colLost)),
			GoalRatio:      cellText(cells.Eq(colGoalRatio)),
			GoalDifference: cellText(cells.Eq(colGoalDifference)),
			Points:         cellText(cells.Eq(colPoints)),
			TeamURL:        teamURL,
		})
	})

	return rows, nil
}

// findTable locates the ranking table, preferring the section whose h2
// heading equals leagueName, then falling back to the page's ranking table
// (standings pages carry exactly one "items" table).
func (e *StandingsExtractor) findTable(doc *goquery.Document, leagueName string) *goquery.Selection {
	var table *goquery.Selection

	doc.Find("h2").EachWithBreak(func(_ int, h2 *goquery.Selection) bool {
		if strings.TrimSpace(h2.Text()) != leagueName {
			return true
		}
		if t := nextTable(h2, "table.items"); t != nil {
			table = t
			return false
		}
		return true
	})
	if table != nil {
		return table
	}

	if t := doc.Find("table.items").First(); t.Length() > 0 {
		return t
	}
	return nil
}

// nextTable finds the table that follows a heading in document order:
// first within the heading's enclosing box, then among following siblings.
// Returns nil when no table matches.
func nextTable(heading *goquery.Selection, selector string) *goquery.Selection {
	if t := heading.Closest("div.box").Find(selector).First(); t.Length() > 0 {
		return t
	}
	if t := heading.NextAllFiltered(selector).First(); t.Length() > 0 {
		return t
	}
	if t := heading.NextAll().Find(selector).First(); t.Length() > 0 {
		return t
	}
	if t := heading.Parent().NextAll().Find(selector).First(); t.Length() > 0 {
		return t
	}
	return nil
}
