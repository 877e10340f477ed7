package apifootball

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/calcioscope/calcio-data/internal/normalized"
	"github.com/calcioscope/calcio-data/internal/provider"
)

// Name identifies this provider in config and logs.
const Name = "apifootball"

// Adapter binds the API-Football client to the canonical converters.
type Adapter struct {
	client *client
	logger *slog.Logger
}

var _ provider.Adapter = (*Adapter)(nil)

// New creates an API-Football adapter.
func New(cfg Config, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		client: newClient(cfg, logger),
		logger: logger,
	}
}

// Name implements provider.Adapter.
func (a *Adapter) Name() string { return Name }

// fetch wraps a client call with the layer's failure contract: any error is
// logged and surfaces to the caller as absent data.
func (a *Adapter) fetch(ctx context.Context, op, path string, params url.Values) []provider.Doc {
	items, err := a.client.get(ctx, path, params)
	if err != nil {
		a.logger.Error("fetch failed", "provider", Name, "op", op, "error", err)
		return nil
	}
	return items
}

func (a *Adapter) FetchMatch(ctx context.Context, matchID string) *normalized.Match {
	items := a.fetch(ctx, "match", "/fixtures", url.Values{"id": {matchID}})
	if len(items) == 0 {
		return nil
	}
	m := convertMatch(items[0])
	return &m
}

func (a *Adapter) FetchTeam(ctx context.Context, teamID string) *normalized.Team {
	items := a.fetch(ctx, "team", "/teams", url.Values{"id": {teamID}})
	if len(items) == 0 {
		return nil
	}
	t := convertTeam(items[0])
	return &t
}

func (a *Adapter) FetchTeams(ctx context.Context, seasonID, leagueID string) []normalized.Team {
	items := a.fetch(ctx, "teams", "/teams", url.Values{
		"season": {seasonID},
		"league": {leagueID},
	})
	teams := make([]normalized.Team, 0, len(items))
	for _, item := range items {
		teams = append(teams, convertTeam(item))
	}
	return teams
}

func (a *Adapter) FetchPlayer(ctx context.Context, playerID string) *normalized.Player {
	items := a.fetch(ctx, "player", "/players/profiles", url.Values{"player": {playerID}})
	if len(items) == 0 {
		return nil
	}
	doc := items[0].Get("player")
	if doc == nil {
		doc = items[0]
	}
	p := convertPlayer(doc)
	return &p
}

func (a *Adapter) FetchCoach(ctx context.Context, coachID string) *normalized.Coach {
	items := a.fetch(ctx, "coach", "/coachs", url.Values{"id": {coachID}})
	if len(items) == 0 {
		return nil
	}
	c := convertCoach(items[0])
	return &c
}

// FetchSquad ignores seasonID: the squads endpoint reports the current
// squad only.
func (a *Adapter) FetchSquad(ctx context.Context, teamID, seasonID string) []normalized.Player {
	items := a.fetch(ctx, "squad", "/players/squads", url.Values{"team": {teamID}})
	if len(items) == 0 {
		return []normalized.Player{}
	}
	return convertSquad(items[0])
}

func (a *Adapter) FetchStandings(ctx context.Context, seasonID, leagueID string) []normalized.Standing {
	params := url.Values{"season": {seasonID}}
	if leagueID != "" {
		params.Set("league", leagueID)
	}
	items := a.fetch(ctx, "standings", "/standings", params)
	if len(items) == 0 {
		return []normalized.Standing{}
	}
	standings := convertStandings(items[0])
	if standings == nil {
		return []normalized.Standing{}
	}
	return standings
}

func (a *Adapter) FetchFixtures(ctx context.Context, seasonID string, opts provider.FixtureOptions) []normalized.Match {
	params := url.Values{"season": {seasonID}}
	if opts.TeamID != "" {
		params.Set("team", opts.TeamID)
	}
	if opts.LeagueID != "" {
		params.Set("league", opts.LeagueID)
	}
	items := a.fetch(ctx, "fixtures", "/fixtures", params)
	matches := make([]normalized.Match, 0, len(items))
	for _, item := range items {
		matches = append(matches, convertMatch(item))
	}
	return matches
}

func (a *Adapter) FetchLeaders(ctx context.Context, seasonID, leagueID string) []normalized.Leader {
	items := a.fetch(ctx, "leaders", "/players/topscorers", url.Values{
		"season": {seasonID},
		"league": {leagueID},
	})
	leaders := make([]normalized.Leader, 0, len(items))
	for i, item := range items {
		leader := convertLeader(item)
		leader.Position = i + 1 // upstream list is rank-ordered but unnumbered
		leaders = append(leaders, leader)
	}
	return leaders
}

func (a *Adapter) FetchVenue(ctx context.Context, venueID string) *normalized.Venue {
	items := a.fetch(ctx, "venue", "/venues", url.Values{"id": {venueID}})
	if len(items) == 0 {
		return nil
	}
	v := convertVenue(items[0])
	return &v
}

func (a *Adapter) FetchH2H(ctx context.Context, team1ID, team2ID string) *normalized.H2H {
	items := a.fetch(ctx, "h2h", "/fixtures/headtohead", url.Values{
		"h2h": {team1ID + "-" + team2ID},
	})
	if items == nil {
		return nil
	}
	h := convertH2H(items, team1ID)
	return &h
}

func (a *Adapter) FetchMatchEvents(ctx context.Context, matchID string) []normalized.MatchEvent {
	items := a.fetch(ctx, "events", "/fixtures/events", url.Values{"fixture": {matchID}})
	return convertEvents(items)
}

func (a *Adapter) FetchMatchStats(ctx context.Context, matchID string) *normalized.MatchStats {
	items := a.fetch(ctx, "stats", "/fixtures/statistics", url.Values{"fixture": {matchID}})
	if len(items) == 0 {
		return nil
	}
	stats := convertStats(items)
	return &stats
}

func (a *Adapter) FetchMatchLineups(ctx context.Context, matchID string) *normalized.MatchLineups {
	items := a.fetch(ctx, "lineups", "/fixtures/lineups", url.Values{"fixture": {matchID}})
	if len(items) == 0 {
		return nil
	}
	lineups := convertLineups(items)
	return &lineups
}

func (a *Adapter) FetchLeagues(ctx context.Context, country string) []normalized.League {
	items := a.fetch(ctx, "leagues", "/leagues", url.Values{"country": {country}})
	leagues := make([]normalized.League, 0, len(items))
	for _, item := range items {
		leagues = append(leagues, convertLeague(item))
	}
	return leagues
}

func (a *Adapter) FetchLeague(ctx context.Context, leagueID string) *normalized.League {
	items := a.fetch(ctx, "league", "/leagues", url.Values{"id": {leagueID}})
	if len(items) == 0 {
		return nil
	}
	l := convertLeague(items[0])
	return &l
}

// FetchCountryID resolves a country name to the identifier /leagues expects.
// API-Football keys leagues by country name directly, so this is the name
// itself and costs no upstream request.
func (a *Adapter) FetchCountryID(ctx context.Context, countryName string) string {
	return countryName
}
