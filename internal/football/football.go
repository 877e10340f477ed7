// Package football is the single import surface for normalized football
// data. It holds the one provider adapter selected at startup and re-exposes
// its fetch operations; consumers never import a provider package directly,
// so switching providers touches nothing but the wiring in main.
package football

import (
	"context"
	"sync"

	"github.com/calcioscope/calcio-data/internal/normalized"
	"github.com/calcioscope/calcio-data/internal/provider"
)

// fetchChunkSize bounds how many per-team requests run at once in the batch
// consumers. Chunks run sequentially to stay inside the upstream request
// quota.
const fetchChunkSize = 5

// API is the normalized facade over the active provider adapter.
type API struct {
	adapter provider.Adapter
}

// New creates the facade around the configured adapter.
func New(adapter provider.Adapter) *API {
	return &API{adapter: adapter}
}

// Provider returns the active provider's name.
func (a *API) Provider() string { return a.adapter.Name() }

// The fetch surface mirrors provider.Adapter one-for-one: identical names,
// identical canonical return types, regardless of which adapter is bound.

func (a *API) FetchMatch(ctx context.Context, matchID string) *normalized.Match {
	return a.adapter.FetchMatch(ctx, matchID)
}

func (a *API) FetchTeam(ctx context.Context, teamID string) *normalized.Team {
	return a.adapter.FetchTeam(ctx, teamID)
}

func (a *API) FetchTeams(ctx context.Context, seasonID, leagueID string) []normalized.Team {
	return a.adapter.FetchTeams(ctx, seasonID, leagueID)
}

func (a *API) FetchPlayer(ctx context.Context, playerID string) *normalized.Player {
	return a.adapter.FetchPlayer(ctx, playerID)
}

func (a *API) FetchCoach(ctx context.Context, coachID string) *normalized.Coach {
	return a.adapter.FetchCoach(ctx, coachID)
}

func (a *API) FetchSquad(ctx context.Context, teamID, seasonID string) []normalized.Player {
	return a.adapter.FetchSquad(ctx, teamID, seasonID)
}

func (a *API) FetchStandings(ctx context.Context, seasonID, leagueID string) []normalized.Standing {
	return a.adapter.FetchStandings(ctx, seasonID, leagueID)
}

func (a *API) FetchFixtures(ctx context.Context, seasonID string, opts provider.FixtureOptions) []normalized.Match {
	return a.adapter.FetchFixtures(ctx, seasonID, opts)
}

func (a *API) FetchLeaders(ctx context.Context, seasonID, leagueID string) []normalized.Leader {
	return a.adapter.FetchLeaders(ctx, seasonID, leagueID)
}

func (a *API) FetchVenue(ctx context.Context, venueID string) *normalized.Venue {
	return a.adapter.FetchVenue(ctx, venueID)
}

func (a *API) FetchH2H(ctx context.Context, team1ID, team2ID string) *normalized.H2H {
	return a.adapter.FetchH2H(ctx, team1ID, team2ID)
}

func (a *API) FetchMatchEvents(ctx context.Context, matchID string) []normalized.MatchEvent {
	return a.adapter.FetchMatchEvents(ctx, matchID)
}

func (a *API) FetchMatchStats(ctx context.Context, matchID string) *normalized.MatchStats {
	return a.adapter.FetchMatchStats(ctx, matchID)
}

func (a *API) FetchMatchLineups(ctx context.Context, matchID string) *normalized.MatchLineups {
	return a.adapter.FetchMatchLineups(ctx, matchID)
}

func (a *API) FetchLeagues(ctx context.Context, country string) []normalized.League {
	return a.adapter.FetchLeagues(ctx, country)
}

func (a *API) FetchLeague(ctx context.Context, leagueID string) *normalized.League {
	return a.adapter.FetchLeague(ctx, leagueID)
}

func (a *API) FetchCountryID(ctx context.Context, countryName string) string {
	return a.adapter.FetchCountryID(ctx, countryName)
}

// ItalianLeagues resolves the country identifier first, then lists its
// leagues — the two-step lookup some providers force.
func (a *API) ItalianLeagues(ctx context.Context) []normalized.League {
	countryID := a.adapter.FetchCountryID(ctx, "Italy")
	if countryID == "" {
		return []normalized.League{}
	}
	return a.adapter.FetchLeagues(ctx, countryID)
}

// MatchDetails is the aggregate a match page renders from.
type MatchDetails struct {
	Match   *normalized.Match
	H2H     *normalized.H2H
	Events  []normalized.MatchEvent
	Stats   *normalized.MatchStats
	Lineups *normalized.MatchLineups
}

// MatchDetails fetches a match and its related entities. The related
// fetches run concurrently and are awaited jointly; each leg fails
// independently into its safe empty value, so a single upstream hiccup
// degrades one panel instead of the whole page.
func (a *API) MatchDetails(ctx context.Context, matchID string) MatchDetails {
	details := MatchDetails{
		Match: a.adapter.FetchMatch(ctx, matchID),
	}
	if details.Match == nil {
		return details
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		details.H2H = a.adapter.FetchH2H(ctx, details.Match.HomeTeam.ID, details.Match.AwayTeam.ID)
	}()
	go func() {
		defer wg.Done()
		details.Events = a.adapter.FetchMatchEvents(ctx, matchID)
	}()
	go func() {
		defer wg.Done()
		details.Stats = a.adapter.FetchMatchStats(ctx, matchID)
	}()
	go func() {
		defer wg.Done()
		details.Lineups = a.adapter.FetchMatchLineups(ctx, matchID)
	}()
	wg.Wait()
	return details
}

// FixturesForTeams fetches each team's season fixtures in fixed-size chunks:
// requests inside a chunk run concurrently, chunks run sequentially. This is
// throttling discipline for the upstream quota, not a correctness concern.
func (a *API) FixturesForTeams(ctx context.Context, seasonID string, teamIDs []string) map[string][]normalized.Match {
	results := make(map[string][]normalized.Match, len(teamIDs))
	var mu sync.Mutex

	forEachTeamChunked(teamIDs, func(teamID string) {
		matches := a.adapter.FetchFixtures(ctx, seasonID, provider.FixtureOptions{TeamID: teamID})
		mu.Lock()
		results[teamID] = matches
		mu.Unlock()
	})
	return results
}

// SquadsForTeams fetches each team's squad with the same chunked discipline
// as FixturesForTeams — the batch a league roster page renders from.
func (a *API) SquadsForTeams(ctx context.Context, seasonID string, teamIDs []string) map[string][]normalized.Player {
	results := make(map[string][]normalized.Player, len(teamIDs))
	var mu sync.Mutex

	forEachTeamChunked(teamIDs, func(teamID string) {
		squad := a.adapter.FetchSquad(ctx, teamID, seasonID)
		mu.Lock()
		results[teamID] = squad
		mu.Unlock()
	})
	return results
}

// forEachTeamChunked runs fn per team ID: concurrently inside a fixed-size
// chunk, chunks strictly one after another.
func forEachTeamChunked(teamIDs []string, fn func(teamID string)) {
	for start := 0; start < len(teamIDs); start += fetchChunkSize {
		end := start + fetchChunkSize
		if end > len(teamIDs) {
			end = len(teamIDs)
		}

		var wg sync.WaitGroup
		for _, teamID := range teamIDs[start:end] {
			wg.Add(1)
			go func(teamID string) {
				defer wg.Done()
				fn(teamID)
			}(teamID)
		}
		wg.Wait()
	}
}
