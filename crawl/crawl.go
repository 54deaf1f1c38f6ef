// Package crawl provides season scraping orchestration: politeness-paced
// fetching with retry, the standings-to-schedules fan-out, and the pacing
// primitives both build on.
package crawl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dcravo/tabelle"
)

// Scraper orchestrates the extraction of one league season: the standings
// table first, then every listed team's schedule. Every logical fetch
// passes through the shared Limiter before its first attempt, so the
// aggregate request rate honors the politeness contract regardless of
// Concurrency; retry backoff stacks on top of that pacing, never replaces
// it.
type Scraper struct {
	Fetcher   tabelle.Fetcher
	Limiter   tabelle.Limiter
	Standings tabelle.StandingsExtractor
	Schedules tabelle.ScheduleExtractor

	StandingsOut tabelle.StandingsWriter
	ScheduleOut  tabelle.ScheduleWriter

	Config tabelle.Config
	Logger *slog.Logger

	// Concurrency bounds the parallel schedule fetches. Values below 1
	// mean single-flow processing, the reference politeness posture.
	Concurrency int

	// Sleep, if set, replaces the real backoff sleep. Tests use this to
	// observe the retry schedule without waiting it out.
	Sleep SleepFunc
}

// Result summarizes one season's extraction.
type Result struct {
	// Teams is the number of teams whose schedule was extracted and
	// written.
	Teams int

	// TeamsSkipped counts teams dropped by the recovery policy: no team
	// URL in the standings, a failed schedule fetch, or an empty/absent
	// fixture table.
	TeamsSkipped int

	// Matches is the total number of fixture rows written.
	Matches int
}

// Season extracts standings and per-team schedules for one target.
// Standings-level failures (unreachable page, table absent) abort the
// season with a typed error; team-level failures are logged and counted
// in TeamsSkipped, never propagated, so one bad team cannot sink a season.
func (s *Scraper) Season(ctx context.Context, target tabelle.Target) (*Result, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	logger := s.logger()
	standingsURL := target.StandingsURL(s.Config.BaseURL)

	logger.Info("starting season extraction",
		"league", target.LeagueName,
		"season", target.SeasonYear,
		"url", standingsURL,
	)

	html, err := s.fetch(ctx, standingsURL)
	if err != nil {
		return nil, err
	}

	rows, err := s.Standings.ExtractStandings(html, target.LeagueName)
	if err != nil {
		return nil, err
	}

	logger.Info("extracted league table", "teams", len(rows))

	if err := s.StandingsOut.WriteStandings(ctx, target, rows); err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var teams, matches, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, row := range rows {
		row := row
		g.Go(func() error {
			if row.TeamURL == "" {
				logger.Warn("no URL for team, skipping", "team", row.Team)
				skipped.Add(1)
				return nil
			}

			scheduleURL := tabelle.ScheduleURL(row.TeamURL, target.LeagueCode)
			logger.Info("fetching games", "team", row.Team, "url", scheduleURL)

			html, err := s.fetch(gctx, scheduleURL)
			if err != nil {
				logger.Error("failed to fetch schedule",
					"team", row.Team,
					"code", tabelle.ErrorCode(err),
					"error", err,
				)
				skipped.Add(1)
				return nil
			}

			games, err := s.Schedules.ExtractSchedule(html, target.LeagueName, target.LeagueCode)
			if err != nil {
				logger.Error("failed to extract schedule",
					"team", row.Team,
					"code", tabelle.ErrorCode(err),
					"error", err,
				)
				skipped.Add(1)
				return nil
			}
			if len(games) == 0 {
				logger.Warn("no games extracted", "team", row.Team)
				skipped.Add(1)
				return nil
			}

			// Output failures are local disk problems, not scrape
			// failures: they abort the season.
			if err := s.ScheduleOut.WriteSchedule(gctx, target, row.Team, games); err != nil {
				return err
			}

			teams.Add(1)
			matches.Add(int64(len(games)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Teams:        int(teams.Load()),
		TeamsSkipped: int(skipped.Load()),
		Matches:      int(matches.Load()),
	}

	logger.Info("season extraction finished",
		"league", target.LeagueName,
		"season", target.SeasonYear,
		"teams", result.Teams,
		"teams_skipped", result.TeamsSkipped,
		"matches", result.Matches,
	)

	return result, nil
}

// fetch performs one polite, retrying fetch: the shared limiter paces the
// request, then transient failures are retried with backoff.
func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	sleep := s.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	return FetchWithRetrySleep(ctx, url, s.Config, s.Fetcher.Fetch, s.logger(), sleep)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
