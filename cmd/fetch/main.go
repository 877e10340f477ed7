// Command fetch is the Calcio Data CLI. It exercises the normalized facade
// against the configured provider and prints canonical entities as JSON.
//
// Usage:
//
//	calcio-fetch match 215662
//	calcio-fetch standings --season 2024 --league 135
//	calcio-fetch h2h 489 496
//	calcio-fetch details 215662
//	PROVIDER=soccersapi calcio-fetch leagues italy
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/calcioscope/calcio-data/internal/config"
	"github.com/calcioscope/calcio-data/internal/football"
	"github.com/calcioscope/calcio-data/internal/provider"
	"github.com/calcioscope/calcio-data/internal/provider/apifootball"
	"github.com/calcioscope/calcio-data/internal/provider/soccersapi"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "calcio-fetch",
		Short: "Fetch normalized football data from the configured provider",
	}

	root.AddCommand(matchCmd())
	root.AddCommand(teamCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(playerCmd())
	root.AddCommand(coachCmd())
	root.AddCommand(squadCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(fixturesCmd())
	root.AddCommand(leadersCmd())
	root.AddCommand(venueCmd())
	root.AddCommand(h2hCmd())
	root.AddCommand(eventsCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(lineupsCmd())
	root.AddCommand(leaguesCmd())
	root.AddCommand(leagueCmd())
	root.AddCommand(countryCmd())
	root.AddCommand(detailsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newAPI wires the facade to the adapter named in config. This is the single
// binding that selects the active provider.
func newAPI() (*football.API, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var adapter provider.Adapter
	switch cfg.Provider {
	case config.ProviderSoccersAPI:
		adapter = soccersapi.New(soccersapi.Config{
			User:              cfg.SoccersAPIUser,
			Token:             cfg.SoccersAPIToken,
			RequestsPerMinute: cfg.UpstreamRequestsPerMinute,
		}, logger)
	default:
		adapter = apifootball.New(apifootball.Config{
			APIKey:            cfg.APIFootballKey,
			RequestsPerMinute: cfg.UpstreamRequestsPerMinute,
		}, logger)
	}
	return football.New(adapter), nil
}

// run loads config, builds the facade, and prints the fetched value.
func run(fetch func(ctx context.Context, api *football.API) interface{}) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	result := fetch(context.Background(), api)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Fetch a single match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchMatch(ctx, args[0])
			})
		},
	}
}

func teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <id>",
		Short: "Fetch a team profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchTeam(ctx, args[0])
			})
		},
	}
}

func teamsCmd() *cobra.Command {
	var season, league string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Fetch all teams in a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchTeams(ctx, season, league)
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season identifier")
	cmd.Flags().StringVar(&league, "league", "", "League identifier")
	_ = cmd.MarkFlagRequired("season")
	return cmd
}

func playerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Fetch a player profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchPlayer(ctx, args[0])
			})
		},
	}
}

func coachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coach <id>",
		Short: "Fetch a coach profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchCoach(ctx, args[0])
			})
		},
	}
}

func squadCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "squad <teamID>",
		Short: "Fetch a team's squad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchSquad(ctx, args[0], season)
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season identifier")
	return cmd
}

func standingsCmd() *cobra.Command {
	var season, league string
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Fetch a league table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchStandings(ctx, season, league)
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season identifier")
	cmd.Flags().StringVar(&league, "league", "", "League identifier")
	_ = cmd.MarkFlagRequired("season")
	return cmd
}

func fixturesCmd() *cobra.Command {
	var season, team, league string
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Fetch a season fixture list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchFixtures(ctx, season, provider.FixtureOptions{TeamID: team, LeagueID: league})
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season identifier")
	cmd.Flags().StringVar(&team, "team", "", "Restrict to one team")
	cmd.Flags().StringVar(&league, "league", "", "Restrict to one league")
	_ = cmd.MarkFlagRequired("season")
	return cmd
}

func leadersCmd() *cobra.Command {
	var season, league string
	cmd := &cobra.Command{
		Use:   "leaders",
		Short: "Fetch top scorers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchLeaders(ctx, season, league)
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season identifier")
	cmd.Flags().StringVar(&league, "league", "", "League identifier")
	_ = cmd.MarkFlagRequired("season")
	return cmd
}

func venueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "venue <id>",
		Short: "Fetch a venue profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchVenue(ctx, args[0])
			})
		},
	}
}

func h2hCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "h2h <team1> <team2>",
		Short: "Fetch head-to-head history between two teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchH2H(ctx, args[0], args[1])
			})
		},
	}
}

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events <matchID>",
		Short: "Fetch a match's event timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchMatchEvents(ctx, args[0])
			})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <matchID>",
		Short: "Fetch a match's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchMatchStats(ctx, args[0])
			})
		},
	}
}

func lineupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lineups <matchID>",
		Short: "Fetch a match's lineups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchMatchLineups(ctx, args[0])
			})
		},
	}
}

func leaguesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leagues <country>",
		Short: "Fetch a country's leagues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchLeagues(ctx, args[0])
			})
		},
	}
}

func leagueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "league <id>",
		Short: "Fetch a single league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchLeague(ctx, args[0])
			})
		},
	}
}

func countryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "country <name>",
		Short: "Resolve a country name to the provider's identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.FetchCountryID(ctx, args[0])
			})
		},
	}
}

func detailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <matchID>",
		Short: "Fetch a match with its related entities (H2H, events, stats, lineups)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, api *football.API) interface{} {
				return api.MatchDetails(ctx, args[0])
			})
		},
	}
}
