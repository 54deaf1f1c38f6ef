package tabelle_test

import (
	"testing"

	"github.com/dcravo/tabelle"
	"github.com/stretchr/testify/assert"
)

func TestTarget_Validate(t *testing.T) {
	t.Parallel()

	valid := tabelle.Target{
		LeagueName: "Premier League",
		LeagueSlug: "premier-league",
		LeagueCode: "GB1",
		SeasonYear: 2023,
	}

	t.Run("valid target", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		target := valid
		target.LeagueName = ""
		assert.Equal(t, tabelle.EINVALID, tabelle.ErrorCode(target.Validate()))
	})

	t.Run("missing slug", func(t *testing.T) {
		t.Parallel()
		target := valid
		target.LeagueSlug = ""
		assert.Equal(t, tabelle.EINVALID, tabelle.ErrorCode(target.Validate()))
	})

	t.Run("missing code", func(t *testing.T) {
		t.Parallel()
		target := valid
		target.LeagueCode = ""
		assert.Equal(t, tabelle.EINVALID, tabelle.ErrorCode(target.Validate()))
	})

	t.Run("missing season year", func(t *testing.T) {
		t.Parallel()
		target := valid
		target.SeasonYear = 0
		assert.Equal(t, tabelle.EINVALID, tabelle.ErrorCode(target.Validate()))
	})
}

func TestTarget_StandingsURL(t *testing.T) {
	t.Parallel()

	t.Run("european season", func(t *testing.T) {
		t.Parallel()

		target := tabelle.Target{
			LeagueName: "Premier League",
			LeagueSlug: "premier-league",
			LeagueCode: "GB1",
			SeasonYear: 2023,
		}

		got := target.StandingsURL("https://www.transfermarkt.com.br")
		assert.Equal(t, "https://www.transfermarkt.com.br/premier-league/tabelle/wettbewerb/GB1/saison_id/2023", got)
	})

	t.Run("calendar-year competition uses previous season id", func(t *testing.T) {
		t.Parallel()

		target := tabelle.Target{
			LeagueName: "Campeonato Brasileiro Série A",
			LeagueSlug: "campeonato-brasileiro-serie-a",
			LeagueCode: "BRA1",
			SeasonYear: 2020,
		}

		got := target.StandingsURL("https://www.transfermarkt.com.br")
		assert.Equal(t, "https://www.transfermarkt.com.br/campeonato-brasileiro-serie-a/tabelle/wettbewerb/BRA1/saison_id/2019", got)
	})

	t.Run("trims trailing slash from base", func(t *testing.T) {
		t.Parallel()

		target := tabelle.Target{
			LeagueName: "LaLiga",
			LeagueSlug: "laliga",
			LeagueCode: "ES1",
			SeasonYear: 2021,
		}

		got := target.StandingsURL("https://www.transfermarkt.com.br/")
		assert.Equal(t, "https://www.transfermarkt.com.br/laliga/tabelle/wettbewerb/ES1/saison_id/2021", got)
	})
}

func TestScheduleURL(t *testing.T) {
	t.Parallel()

	got := tabelle.ScheduleURL("https://www.transfermarkt.com.br/fc-arsenal/startseite/verein/11/saison_id/2023", "GB1")
	assert.Equal(t, "https://www.transfermarkt.com.br/fc-arsenal/spielplan/verein/11/saison_id/2023/plus/1#GB1", got)
}
