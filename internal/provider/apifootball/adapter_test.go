package apifootball

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calcioscope/calcio-data/internal/provider"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestAdapter points an adapter at a stub upstream.
func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{APIKey: "test-key", BaseURL: srv.URL}, discardLogger())
}

func TestAdapterSendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-apisports-key")
		w.Write([]byte(`{"response": []}`))
	})

	a.FetchMatch(context.Background(), "1")
	if gotKey != "test-key" {
		t.Fatalf("expected credential header, got %q", gotKey)
	}
}

func TestFetchMatchDecodesEnvelope(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fixtures" || r.URL.Query().Get("id") != "215662" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`{"response": [{
			"fixture": {"id": 215662, "date": "2024-05-26T20:45:00+02:00", "status": {"short": "FT"}},
			"teams": {"home": {"id": 489, "name": "AC Milan"}, "away": {"id": 496, "name": "Juventus"}},
			"goals": {"home": 2, "away": 1}
		}]}`))
	})

	m := a.FetchMatch(context.Background(), "215662")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.ID != "215662" || m.HomeTeam.Name != "AC Milan" {
		t.Fatalf("unexpected match %+v", m)
	}
}

func TestAdapterAbsorbsUpstreamFailures(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	ctx := context.Background()

	if m := a.FetchMatch(ctx, "1"); m != nil {
		t.Fatalf("failed fetch must return nil, got %+v", m)
	}
	if h := a.FetchH2H(ctx, "1", "2"); h != nil {
		t.Fatalf("failed fetch must return nil, got %+v", h)
	}
	if fixtures := a.FetchFixtures(ctx, "2024", provider.FixtureOptions{}); fixtures == nil || len(fixtures) != 0 {
		t.Fatalf("failed list fetch must return an empty slice, got %v", fixtures)
	}
	if standings := a.FetchStandings(ctx, "2024", "135"); standings == nil || len(standings) != 0 {
		t.Fatalf("failed standings fetch must return an empty slice, got %v", standings)
	}
	if leagues := a.FetchLeagues(ctx, "Italy"); leagues == nil || len(leagues) != 0 {
		t.Fatalf("failed leagues fetch must return an empty slice, got %v", leagues)
	}
}

func TestAdapterAbsorbsMalformedPayloads(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	if m := a.FetchMatch(context.Background(), "1"); m != nil {
		t.Fatalf("malformed payload must read as absent data, got %+v", m)
	}
}

func TestFetchLeadersNumbersPositions(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": [
			{"player": {"id": 1, "name": "First"}, "statistics": [{"goals": {"total": 24}}]},
			{"player": {"id": 2, "name": "Second"}, "statistics": [{"goals": {"total": 19}}]}
		]}`))
	})

	leaders := a.FetchLeaders(context.Background(), "2024", "135")
	if len(leaders) != 2 {
		t.Fatalf("expected 2 leaders, got %d", len(leaders))
	}
	if leaders[0].Position != 1 || leaders[1].Position != 2 {
		t.Fatalf("positions must follow upstream order, got %d and %d", leaders[0].Position, leaders[1].Position)
	}
	if leaders[0].Goals != 24 {
		t.Fatalf("unexpected goals %d", leaders[0].Goals)
	}
}

func TestFetchSquadListsPlayers(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/squads" || r.URL.Query().Get("team") != "489" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`{"response": [{
			"team": {"id": 489, "name": "AC Milan"},
			"players": [
				{"id": 1, "name": "Keeper", "number": 16, "position": "Goalkeeper"},
				{"id": 2, "name": "Striker", "number": 9, "position": "Attacker"}
			]
		}]}`))
	})

	squad := a.FetchSquad(context.Background(), "489", "2024")
	if len(squad) != 2 {
		t.Fatalf("expected 2 players, got %d", len(squad))
	}
	if squad[0].Name != "Keeper" || squad[0].Number == nil || *squad[0].Number != 16 {
		t.Fatalf("unexpected first player %+v", squad[0])
	}
	if squad[1].Position != "Attacker" {
		t.Fatalf("unexpected second player %+v", squad[1])
	}
}

func TestFetchPlayerUnwrapsProfile(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/profiles" || r.URL.Query().Get("player") != "874" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`{"response": [{
			"player": {"id": 874, "name": "R. Leao", "firstname": "Rafael", "nationality": "Portugal", "height": "188 cm"}
		}]}`))
	})

	p := a.FetchPlayer(context.Background(), "874")
	if p == nil {
		t.Fatal("expected a player")
	}
	if p.ID != "874" || p.Nationality != "Portugal" || p.Height != "188 cm" {
		t.Fatalf("unexpected player %+v", p)
	}
}

func TestFetchCoach(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coachs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"response": [{"id": 40, "name": "S. Pioli", "nationality": "Italy"}]}`))
	})

	c := a.FetchCoach(context.Background(), "40")
	if c == nil || c.ID != "40" || c.Nationality != "Italy" {
		t.Fatalf("unexpected coach %+v", c)
	}
}

func TestFetchTeamsBySeasonAndLeague(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/teams" || q.Get("season") != "2024" || q.Get("league") != "135" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`{"response": [
			{"team": {"id": 489, "name": "AC Milan"}, "venue": {"id": 910, "name": "San Siro"}},
			{"team": {"id": 505, "name": "Inter"}}
		]}`))
	})

	teams := a.FetchTeams(context.Background(), "2024", "135")
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Name != "AC Milan" || teams[0].Venue == nil || teams[0].Venue.Name != "San Siro" {
		t.Fatalf("unexpected first team %+v", teams[0])
	}
}

func TestFetchCountryIDIsIdentity(t *testing.T) {
	a := New(Config{APIKey: "k"}, discardLogger())
	if got := a.FetchCountryID(context.Background(), "Italy"); got != "Italy" {
		t.Fatalf("leagues are keyed by country name directly, got %q", got)
	}
}
