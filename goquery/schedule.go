package goquery

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dcravo/tabelle"
)

// Schedule table column positions on the site. Columns 3 and 5 (home/away
// crest cells) are decorative and skipped.
const (
	colRound     = 0
	colDate      = 1
	colTime      = 2
	colHomeTeam  = 4
	colAwayTeam  = 6
	colFormation = 7
	colCoach     = 8
	colAudience  = 9
	colResult    = 10

	scheduleColumns = 11
)

// Ensure ScheduleExtractor implements tabelle.ScheduleExtractor at compile
// time.
var _ tabelle.ScheduleExtractor = (*ScheduleExtractor)(nil)

// ScheduleExtractor decodes a team's full-season fixture list. The section
// lookup tries the competition-code container first, then scans h2
// headings for the league name; both are couplings to the site's layout.
type ScheduleExtractor struct {
	baseURL string
	logger  *slog.Logger
}

// NewScheduleExtractor creates a ScheduleExtractor that resolves match
// report links against baseURL and reports skipped rows through logger.
func NewScheduleExtractor(baseURL string, logger *slog.Logger) *ScheduleExtractor {
	return &ScheduleExtractor{baseURL: baseURL, logger: logger}
}

// ExtractSchedule decodes the fixture table into ordered match rows in
// schedule appearance order. Rows missing expected columns are skipped
// with a warning; an absent section or fixture table returns ENOTFOUND.
func (e *ScheduleExtractor) ExtractSchedule(html string, leagueName string, leagueCode string) ([]tabelle.MatchRow, error) {
	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table, err := e.findTable(doc, leagueName, leagueCode)
	if err != nil {
		return nil, err
	}

	trs := table.Find("tr")
	rows := make([]tabelle.MatchRow, 0, trs.Length())

	trs.Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		cells := tr.Find("td")
		if cells.Length() < scheduleColumns {
			e.logger.Warn("skipping malformed schedule row",
				"league", leagueName,
				"row", i,
				"cells", cells.Length(),
			)
			return
		}

		resultCell := cells.Eq(colResult)
		resultAnchor := resultCell.Find("a[href]").First()

		matchLink := ""
		if resultAnchor.Length() > 0 {
			href, _ := resultAnchor.Attr("href")
			matchLink = resolveURL(e.baseURL, href)
		}

		rows = append(rows, tabelle.MatchRow{
			Round:     anchorText(cells.Eq(colRound)),
			Date:      cellText(cells.Eq(colDate)),
			Time:      cellText(cells.Eq(colTime)),
			HomeTeam:  anchorTitleOrText(cells.Eq(colHomeTeam)),
			AwayTeam:  anchorText(cells.Eq(colAwayTeam)),
			Formation: cellText(cells.Eq(colFormation)),
			Coach:     anchorText(cells.Eq(colCoach)),
			Audience:  parseAudience(cellText(cells.Eq(colAudience))),
			Result:    anchorText(resultCell),
			MatchLink: matchLink,
		})
	})

	return rows, nil
}

// findTable locates the competition's fixture table: primary lookup by the
// container whose id is the competition code, fallback by scanning h2
// headings for the league name.
func (e *ScheduleExtractor) findTable(doc *goquery.Document, leagueName, leagueCode string) (*goquery.Selection, error) {
	section := doc.Find(fmt.Sprintf("div#%s", leagueCode)).First()
	if section.Length() > 0 {
		if t := section.Find("table").First(); t.Length() > 0 {
			return t, nil
		}
		return nil, tabelle.Errorf(tabelle.ENOTFOUND, "fixture table not found in section %q", leagueCode)
	}

	var table *goquery.Selection
	found := false
	doc.Find("h2").EachWithBreak(func(_ int, h2 *goquery.Selection) bool {
		if !strings.Contains(h2.Text(), leagueName) {
			return true
		}
		found = true
		table = nextTable(h2, "table")
		return false
	})

	if !found {
		return nil, tabelle.Errorf(tabelle.ENOTFOUND, "section for %q not found", leagueName)
	}
	if table == nil {
		return nil, tabelle.Errorf(tabelle.ENOTFOUND, "fixture table not found for %q", leagueName)
	}
	return table, nil
}

// parseAudience decodes the attendance cell. The site renders counts with
// dot thousands separators ("42.500"); missing or non-numeric values decode
// to the AudienceUnknown sentinel, never an error.
func parseAudience(s string) int {
	if s == "" {
		return tabelle.AudienceUnknown
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, ".", ""))
	if err != nil {
		return tabelle.AudienceUnknown
	}
	return n
}

// anchorText returns the first anchor's text in the cell, falling back to
// the cell's own text.
func anchorText(cell *goquery.Selection) string {
	if a := cell.Find("a").First(); a.Length() > 0 {
		return cellText(a)
	}
	return cellText(cell)
}

// anchorTitleOrText prefers the first anchor's title attribute, then its
// text, then the cell's own text. Team cells abbreviate the club name in
// the text and carry the full name in the title.
func anchorTitleOrText(cell *goquery.Selection) string {
	a := cell.Find("a").First()
	if a.Length() == 0 {
		return cellText(cell)
	}
	if title, ok := a.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	return cellText(a)
}
