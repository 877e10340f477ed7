// Package provider defines the adapter contract every upstream football API
// implementation satisfies, plus the loose-payload accessors adapters share.
//
// Exactly one adapter is active per process; swapping providers means
// constructing a different implementation at startup. Method names, argument
// lists and canonical return types are identical across implementations —
// that is the contract that keeps callers provider-agnostic.
package provider

import (
	"context"

	"github.com/calcioscope/calcio-data/internal/normalized"
)

// Adapter is the uniform fetch surface over one upstream provider.
//
// Every method absorbs its own transport and decode failures: a failed or
// cancelled fetch logs the cause and returns nil (single entity) or an empty
// slice (list) — callers never see an error from this layer. Partial data is
// preferable to a failed page render in a best-effort display system, so
// presence/absence of data is the only signal. Each method issues at most
// one upstream request, except where the provider forces a lookup step
// (country name to ID) which takes two sequential requests.
type Adapter interface {
	// Name identifies the provider in logs and config.
	Name() string

	FetchMatch(ctx context.Context, matchID string) *normalized.Match
	FetchTeam(ctx context.Context, teamID string) *normalized.Team
	FetchTeams(ctx context.Context, seasonID, leagueID string) []normalized.Team
	FetchPlayer(ctx context.Context, playerID string) *normalized.Player
	FetchCoach(ctx context.Context, coachID string) *normalized.Coach
	FetchSquad(ctx context.Context, teamID, seasonID string) []normalized.Player
	FetchStandings(ctx context.Context, seasonID, leagueID string) []normalized.Standing
	FetchFixtures(ctx context.Context, seasonID string, opts FixtureOptions) []normalized.Match
	FetchLeaders(ctx context.Context, seasonID, leagueID string) []normalized.Leader
	FetchVenue(ctx context.Context, venueID string) *normalized.Venue
	FetchH2H(ctx context.Context, team1ID, team2ID string) *normalized.H2H
	FetchMatchEvents(ctx context.Context, matchID string) []normalized.MatchEvent
	FetchMatchStats(ctx context.Context, matchID string) *normalized.MatchStats
	FetchMatchLineups(ctx context.Context, matchID string) *normalized.MatchLineups
	FetchLeagues(ctx context.Context, country string) []normalized.League
	FetchLeague(ctx context.Context, leagueID string) *normalized.League
	FetchCountryID(ctx context.Context, countryName string) string
}

// FixtureOptions narrows a season fixture listing.
type FixtureOptions struct {
	TeamID   string
	LeagueID string
}
