package main

import "github.com/dcravo/tabelle"

// minStartYear floors how far back season scraping goes; earlier seasons
// have too little data on the site to be worth the requests.
const minStartYear = 1990

// League is one entry in the built-in league catalogue.
type League struct {
	Key       string
	Name      string
	Slug      string
	Code      string
	StartYear int
}

// Target returns the scrape target for one of the league's seasons.
func (l League) Target(seasonYear int) tabelle.Target {
	return tabelle.Target{
		LeagueName: l.Name,
		LeagueSlug: l.Slug,
		LeagueCode: l.Code,
		SeasonYear: seasonYear,
	}
}

// leagues is the built-in catalogue, ordered by country. StartYear is the
// first season the site has usable records for.
var leagues = []League{
	{Key: "premierleague", Name: "Premier League", Slug: "premier-league", Code: "GB1", StartYear: 1992},
	{Key: "championship", Name: "Championship", Slug: "championship", Code: "GB2", StartYear: 2004},
	{Key: "laliga", Name: "LaLiga", Slug: "laliga", Code: "ES1", StartYear: 2000},
	{Key: "laliga2", Name: "LaLiga2", Slug: "laliga2", Code: "ES2", StartYear: 2007},
	{Key: "bundesliga", Name: "Bundesliga", Slug: "bundesliga", Code: "L1", StartYear: 1963},
	{Key: "2bundesliga", Name: "2. Bundesliga", Slug: "2-bundesliga", Code: "L2", StartYear: 1981},
	{Key: "seriea", Name: "Serie A", Slug: "serie-a", Code: "IT1", StartYear: 1946},
	{Key: "serieb", Name: "Serie B", Slug: "serie-b", Code: "IT2", StartYear: 2002},
	{Key: "ligue1", Name: "Ligue 1", Slug: "ligue-1", Code: "FR1", StartYear: 1948},
	{Key: "ligue2", Name: "Ligue 2", Slug: "ligue-2", Code: "FR2", StartYear: 1994},
	{Key: "brasileiraoseriea", Name: "Campeonato Brasileiro Série A", Slug: "campeonato-brasileiro-serie-a", Code: "BRA1", StartYear: 2006},
	{Key: "brasileiraoserieb", Name: "Campeonato Brasileiro Série B", Slug: "campeonato-brasileiro-serie-b", Code: "BRA2", StartYear: 2009},
	{Key: "ligaportugal", Name: "Liga Portugal", Slug: "liga-portugal", Code: "PO1", StartYear: 1996},
	{Key: "ligaportugal2", Name: "Liga Portugal 2", Slug: "liga-portugal-2", Code: "PO2", StartYear: 2007},
	{Key: "jupilerproleague", Name: "Jupiler Pro League", Slug: "jupiler-pro-league", Code: "BE1", StartYear: 2008},
	{Key: "challenger", Name: "Challenger Pro League", Slug: "challenger-pro-league", Code: "BE2", StartYear: 2006},
	{Key: "j1league", Name: "J1 League", Slug: "j1-league", Code: "JAP1", StartYear: 2005},
	{Key: "j2league", Name: "J2 League", Slug: "j2-league", Code: "JAP2", StartYear: 2010},
	{Key: "superlig", Name: "Süper Lig", Slug: "super-lig", Code: "TR1", StartYear: 2014},
}

// selectLeagues returns the whole catalogue for an empty key, or the one
// matching league.
func selectLeagues(key string) ([]League, error) {
	if key == "" {
		return leagues, nil
	}
	for _, l := range leagues {
		if l.Key == key {
			return []League{l}, nil
		}
	}
	return nil, tabelle.Errorf(tabelle.EINVALID, "unknown league %q, run 'tabelle leagues' for the catalogue", key)
}
