package mock

import (
	"context"

	"github.com/dcravo/tabelle"
)

var _ tabelle.StandingsWriter = (*StandingsWriter)(nil)

// StandingsWriter is a mock implementation of tabelle.StandingsWriter.
type StandingsWriter struct {
	WriteStandingsFn func(ctx context.Context, target tabelle.Target, rows []tabelle.StandingsRow) error
}

func (w *StandingsWriter) WriteStandings(ctx context.Context, target tabelle.Target, rows []tabelle.StandingsRow) error {
	return w.WriteStandingsFn(ctx, target, rows)
}

var _ tabelle.ScheduleWriter = (*ScheduleWriter)(nil)

// ScheduleWriter is a mock implementation of tabelle.ScheduleWriter.
type ScheduleWriter struct {
	WriteScheduleFn func(ctx context.Context, target tabelle.Target, team string, rows []tabelle.MatchRow) error
}

func (w *ScheduleWriter) WriteSchedule(ctx context.Context, target tabelle.Target, team string, rows []tabelle.MatchRow) error {
	return w.WriteScheduleFn(ctx, target, team, rows)
}
