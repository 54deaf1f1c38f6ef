// Package fs persists extracted records as CSV files in a per-league,
// per-season directory tree.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dcravo/tabelle"
)

// Ensure Writer implements both output interfaces at compile time.
var (
	_ tabelle.StandingsWriter = (*Writer)(nil)
	_ tabelle.ScheduleWriter  = (*Writer)(nil)
)

// Writer writes standings and schedules as CSV files under a root
// directory:
//
//	<root>/<slug>/<year>/final_standings/<slug>_<year>_standings.csv
//	<root>/<slug>/<year>/team_games/<slug>_<year>_<team>.csv
type Writer struct {
	root string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{root: dir}
}

var standingsHeader = []string{
	"position", "team", "played", "won", "drawn", "lost",
	"goal_ratio", "goal_difference", "points", "team_url",
}

// WriteStandings writes one season's standings CSV.
func (w *Writer) WriteStandings(ctx context.Context, target tabelle.Target, rows []tabelle.StandingsRow) error {
	dir := filepath.Join(w.seasonDir(target), "final_standings")
	name := fmt.Sprintf("%s_%d_standings.csv", Sanitize(target.LeagueSlug), target.SeasonYear)

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Position, row.Team, row.Played, row.Won, row.Drawn, row.Lost,
			row.GoalRatio, row.GoalDifference, row.Points, row.TeamURL,
		})
	}

	return writeCSV(filepath.Join(dir, name), standingsHeader, records)
}

var scheduleHeader = []string{
	"round", "date", "time", "home_team", "away_team",
	"formation", "coach", "audience", "result", "match_link",
}

// WriteSchedule writes one team's season schedule CSV. The audience
// sentinel is written as an empty field so downstream tooling sees an
// explicit absent value rather than a fake count.
func (w *Writer) WriteSchedule(ctx context.Context, target tabelle.Target, team string, rows []tabelle.MatchRow) error {
	dir := filepath.Join(w.seasonDir(target), "team_games")
	name := fmt.Sprintf("%s_%d_%s.csv", Sanitize(target.LeagueSlug), target.SeasonYear, Sanitize(team))

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		audience := ""
		if row.Audience != tabelle.AudienceUnknown {
			audience = strconv.Itoa(row.Audience)
		}
		records = append(records, []string{
			row.Round, row.Date, row.Time, row.HomeTeam, row.AwayTeam,
			row.Formation, row.Coach, audience, row.Result, row.MatchLink,
		})
	}

	return writeCSV(filepath.Join(dir, name), scheduleHeader, records)
}

func (w *Writer) seasonDir(target tabelle.Target) string {
	return filepath.Join(w.root, Sanitize(target.LeagueSlug), strconv.Itoa(target.SeasonYear))
}

// writeCSV creates the parent directory and writes header plus records to
// path, replacing any previous file.
func writeCSV(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return tabelle.Errorf(tabelle.EINTERNAL, "create output directory: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return tabelle.Errorf(tabelle.EINTERNAL, "create %s: %v", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return tabelle.Errorf(tabelle.EINTERNAL, "write %s: %v", path, err)
	}
	if err := cw.WriteAll(records); err != nil {
		return tabelle.Errorf(tabelle.EINTERNAL, "write %s: %v", path, err)
	}

	if err := f.Close(); err != nil {
		return tabelle.Errorf(tabelle.EINTERNAL, "close %s: %v", path, err)
	}
	return nil
}
