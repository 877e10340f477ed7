package soccersapi

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/calcioscope/calcio-data/internal/normalized"
	"github.com/calcioscope/calcio-data/internal/provider"
)

// Name identifies this provider in config and logs.
const Name = "soccersapi"

// Adapter binds the SoccersAPI client to the canonical converters.
type Adapter struct {
	client *client
	logger *slog.Logger
}

var _ provider.Adapter = (*Adapter)(nil)

// New creates a SoccersAPI adapter.
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

func (a *Adapter) logErr(op string, err error) {
	a.logger.Error("fetch failed", "provider", Name, "op", op, "error", err)
}

func (a *Adapter) FetchMatch(ctx context.Context, matchID string) *normalized.Match {
	doc, err := a.client.getDoc(ctx, "/fixtures", url.Values{"id": {matchID}, "t": {"info"}})
	if err != nil {
		a.logErr("match", err)
		return nil
	}
	m := convertMatch(doc)
	return &m
}

func (a *Adapter) FetchTeam(ctx context.Context, teamID string) *normalized.Team {
	doc, err := a.client.getDoc(ctx, "/teams", url.Values{"id": {teamID}, "t": {"info"}})
	if err != nil {
		a.logErr("team", err)
		return nil
	}
	t := convertTeam(doc)
	return &t
}

func (a *Adapter) FetchTeams(ctx context.Context, seasonID, leagueID string) []normalized.Team {
	// Like standings, leagueID is already baked into the season identifier.
	items, err := a.client.getList(ctx, "/teams", url.Values{"season_id": {seasonID}, "t": {"season"}})
	if err != nil {
		a.logErr("teams", err)
		return []normalized.Team{}
	}
	teams := make([]normalized.Team, 0, len(items))
	for _, item := range items {
		teams = append(teams, convertTeam(item))
	}
	return teams
}

func (a *Adapter) FetchPlayer(ctx context.Context, playerID string) *normalized.Player {
	doc, err := a.client.getDoc(ctx, "/players", url.Values{"id": {playerID}, "t": {"info"}})
	if err != nil {
		a.logErr("player", err)
		return nil
	}
	p := convertPlayer(doc)
	return &p
}

func (a *Adapter) FetchCoach(ctx context.Context, coachID string) *normalized.Coach {
	doc, err := a.client.getDoc(ctx, "/coaches", url.Values{"id": {coachID}, "t": {"info"}})
	if err != nil {
		a.logErr("coach", err)
		return nil
	}
	c := convertCoach(doc)
	return &c
}

func (a *Adapter) FetchSquad(ctx context.Context, teamID, seasonID string) []normalized.Player {
	params := url.Values{"id": {teamID}, "t": {"squad"}}
	if seasonID != "" {
		params.Set("season_id", seasonID)
	}
	doc, err := a.client.getDoc(ctx, "/teams", params)
	if err != nil {
		a.logErr("squad", err)
		return []normalized.Player{}
	}
	return convertSquad(doc)
}

func (a *Adapter) FetchStandings(ctx context.Context, seasonID, leagueID string) []normalized.Standing {
	// SoccersAPI keys standings by season alone; leagueID is already baked
	// into the season identifier.
	items, err := a.client.getList(ctx, "/standings", url.Values{"season_id": {seasonID}, "t": {"total"}})
	if err != nil {
		a.logErr("standings", err)
		return []normalized.Standing{}
	}
	standings := make([]normalized.Standing, 0, len(items))
	for _, item := range items {
		standings = append(standings, convertStanding(item))
	}
	return standings
}

func (a *Adapter) FetchFixtures(ctx context.Context, seasonID string, opts provider.FixtureOptions) []normalized.Match {
	params := url.Values{"season_id": {seasonID}, "t": {"season"}}
	if opts.TeamID != "" {
		params.Set("team_id", opts.TeamID)
	}
	items, err := a.client.getList(ctx, "/fixtures", params)
	if err != nil {
		a.logErr("fixtures", err)
		return []normalized.Match{}
	}
	matches := make([]normalized.Match, 0, len(items))
	for _, item := range items {
		matches = append(matches, convertMatch(item))
	}
	return matches
}

func (a *Adapter) FetchLeaders(ctx context.Context, seasonID, leagueID string) []normalized.Leader {
	items, err := a.client.getList(ctx, "/leaders", url.Values{"season_id": {seasonID}, "t": {"topscorers"}})
	if err != nil {
		a.logErr("leaders", err)
		return []normalized.Leader{}
	}
	leaders := make([]normalized.Leader, 0, len(items))
	for i, item := range items {
		leader := convertLeader(item)
		if leader.Position == 0 {
			leader.Position = i + 1
		}
		leaders = append(leaders, leader)
	}
	return leaders
}

func (a *Adapter) FetchVenue(ctx context.Context, venueID string) *normalized.Venue {
	doc, err := a.client.getDoc(ctx, "/venues", url.Values{"id": {venueID}, "t": {"info"}})
	if err != nil {
		a.logErr("venue", err)
		return nil
	}
	v := convertVenue(doc)
	return &v
}

func (a *Adapter) FetchH2H(ctx context.Context, team1ID, team2ID string) *normalized.H2H {
	doc, err := a.client.getDoc(ctx, "/h2h", url.Values{
		"team1": {team1ID},
		"team2": {team2ID},
		"t":     {"teams"},
	})
	if err != nil {
		a.logErr("h2h", err)
		return nil
	}
	h := convertH2H(doc, team1ID)
	return &h
}

func (a *Adapter) FetchMatchEvents(ctx context.Context, matchID string) []normalized.MatchEvent {
	items, err := a.client.getList(ctx, "/fixtures/events", url.Values{"match_id": {matchID}, "t": {"info"}})
	if err != nil {
		a.logErr("events", err)
		return []normalized.MatchEvent{}
	}
	return convertEvents(items)
}

func (a *Adapter) FetchMatchStats(ctx context.Context, matchID string) *normalized.MatchStats {
	doc, err := a.client.getDoc(ctx, "/stats", url.Values{"match_id": {matchID}, "t": {"info"}})
	if err != nil {
		a.logErr("stats", err)
		return nil
	}
	stats := convertStats(doc)
	return &stats
}

func (a *Adapter) FetchMatchLineups(ctx context.Context, matchID string) *normalized.MatchLineups {
	doc, err := a.client.getDoc(ctx, "/fixtures/lineups", url.Values{"match_id": {matchID}, "t": {"info"}})
	if err != nil {
		a.logErr("lineups", err)
		return nil
	}
	lineups := convertLineups(doc)
	return &lineups
}

func (a *Adapter) FetchLeagues(ctx context.Context, country string) []normalized.League {
	items, err := a.client.getList(ctx, "/leagues", url.Values{"country_id": {country}, "t": {"info"}})
	if err != nil {
		a.logErr("leagues", err)
		return []normalized.League{}
	}
	leagues := make([]normalized.League, 0, len(items))
	for _, item := range items {
		leagues = append(leagues, convertLeague(item))
	}
	return leagues
}

func (a *Adapter) FetchLeague(ctx context.Context, leagueID string) *normalized.League {
	doc, err := a.client.getDoc(ctx, "/leagues", url.Values{"id": {leagueID}, "t": {"info"}})
	if err != nil {
		a.logErr("league", err)
		return nil
	}
	l := convertLeague(doc)
	return &l
}

// FetchCountryID resolves a country name to its numeric ID via the
// /countries listing — the extra lookup step this provider forces before
// fetching leagues by country.
func (a *Adapter) FetchCountryID(ctx context.Context, countryName string) string {
	items, err := a.client.getList(ctx, "/countries", url.Values{"t": {"list"}})
	if err != nil {
		a.logErr("country", err)
		return ""
	}
	for _, item := range items {
		if strings.EqualFold(item.String("name"), countryName) {
			return item.ID("id")
		}
	}
	return ""
}
