package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dcravo/tabelle"
	"github.com/dcravo/tabelle/crawl"
	"github.com/dcravo/tabelle/fs"
	tabellegoquery "github.com/dcravo/tabelle/goquery"
	tabellehttp "github.com/dcravo/tabelle/http"
	tabelleslog "github.com/dcravo/tabelle/slog"
)

// Dependencies holds values injected into command Run methods via Kong
// binding.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape standings and schedules for one or all leagues."`
	Leagues LeaguesCmd `cmd:"" help:"List the built-in league catalogue."`
}

// LeaguesCmd lists the league catalogue.
type LeaguesCmd struct{}

// Run executes the leagues command.
func (c *LeaguesCmd) Run(deps *Dependencies) error {
	for _, l := range leagues {
		fmt.Fprintf(deps.Stdout, "%-20s %-35s %-5s since %d\n", l.Key, l.Name, l.Code, l.StartYear)
	}
	return nil
}

// ScrapeCmd scrapes one league (or the whole catalogue) season by season.
type ScrapeCmd struct {
	League string `arg:"" optional:"" help:"League key (see 'tabelle leagues'). Empty means every league."`

	From int    `help:"First season to scrape. Defaults to the league's first recorded season."`
	To   int    `default:"2024" help:"Last season to scrape."`
	Out  string `default:"data/raw" type:"path" help:"Output directory root."`

	DelayMin    time.Duration `default:"3s" help:"Minimum politeness delay before each request."`
	DelayMax    time.Duration `default:"12s" help:"Maximum politeness delay before each request."`
	Retries     int           `default:"5" help:"Retry attempts for transient failures."`
	Concurrency int           `default:"1" help:"Parallel schedule fetches, paced by one shared limiter."`
	SeasonPause time.Duration `default:"30s" help:"Pause between seasons of the same league."`

	Verbose bool `short:"v" help:"Enable debug logging."`
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := tabelle.DefaultConfig()
	cfg.MaxRetries = c.Retries
	cfg.DelayMin = c.DelayMin
	cfg.DelayMax = c.DelayMax
	if err := cfg.Validate(); err != nil {
		return err
	}

	selected, err := selectLeagues(c.League)
	if err != nil {
		return err
	}

	fetcher := tabellehttp.NewFetcher(
		tabellehttp.WithTimeout(cfg.Timeout),
		tabellehttp.WithHeaders(cfg.Headers),
	)
	defer fetcher.Close()

	writer := fs.NewWriter(c.Out)

	scraper := &crawl.Scraper{
		Fetcher:      tabelleslog.NewLoggingFetcher(fetcher, logger),
		Limiter:      crawl.NewPoliteLimiter(cfg.DelayMin, cfg.DelayMax),
		Standings:    tabellegoquery.NewStandingsExtractor(cfg.BaseURL, logger),
		Schedules:    tabellegoquery.NewScheduleExtractor(cfg.BaseURL, logger),
		StandingsOut: writer,
		ScheduleOut:  writer,
		Config:       cfg,
		Logger:       logger,
		Concurrency:  c.Concurrency,
	}

	for _, league := range selected {
		if err := c.scrapeLeague(deps, scraper, logger, league); err != nil {
			return err
		}
	}
	return nil
}

// scrapeLeague runs every requested season of one league. Season-level
// failures are logged and the loop moves on; a not-found season means the
// remaining seasons have not been played yet, so the loop stops early.
func (c *ScrapeCmd) scrapeLeague(deps *Dependencies, scraper *crawl.Scraper, logger *slog.Logger, league League) error {
	from := c.From
	if from == 0 {
		from = league.StartYear
	}
	if from < minStartYear {
		from = minStartYear
	}

	logger.Info("starting league", "league", league.Name, "from", from, "to", c.To)

	for year := from; year <= c.To; year++ {
		result, err := scraper.Season(deps.Ctx, league.Target(year))
		if err != nil {
			if deps.Ctx.Err() != nil {
				return deps.Ctx.Err()
			}
			logger.Error("season extraction failed",
				"league", league.Key,
				"season", year,
				"code", tabelle.ErrorCode(err),
				"error", err,
			)
			if tabelle.ErrorCode(err) == tabelle.ENOTFOUND {
				// No standings table means the season has not been played;
				// later seasons will be empty too.
				break
			}
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s %d: %d teams, %d matches (%d teams skipped)\n",
			league.Key, year, result.Teams, result.Matches, result.TeamsSkipped)

		if year < c.To {
			select {
			case <-deps.Ctx.Done():
				return deps.Ctx.Err()
			case <-time.After(c.SeasonPause):
			}
		}
	}
	return nil
}
