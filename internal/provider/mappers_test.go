package provider

import (
	"testing"

	"github.com/calcioscope/calcio-data/internal/normalized"
)

func intPtr(n int) *int { return &n }

func TestMapEventTypeCoversVariants(t *testing.T) {
	cases := []struct {
		kind   string
		detail string
		want   normalized.EventType
	}{
		{"Goal", "Normal Goal", normalized.EventGoal},
		{"Goal", "Goal - Header", normalized.EventGoal},
		{"goal", "Own Goal", normalized.EventOwnGoal},
		{"Goal", "Penalty", normalized.EventPenalty},
		{"Card", "Yellow Card", normalized.EventYellowCard},
		{"Card", "Red Card", normalized.EventRedCard},
		{"subst", "Substitution 3", normalized.EventSubstitution},
		{"Var", "", normalized.EventVAR},
		{"something else", "", normalized.EventOther},
	}
	for _, tc := range cases {
		if got := MapEventType(tc.kind, tc.detail); got != tc.want {
			t.Fatalf("MapEventType(%q, %q) = %s, want %s", tc.kind, tc.detail, got, tc.want)
		}
	}
}

func TestMapEventTypeTieBreaks(t *testing.T) {
	// Own-goal check precedes the penalty check: a text carrying both
	// qualifiers resolves to own_goal.
	if got := MapEventType("goal", "Own goal from penalty rebound"); got != normalized.EventOwnGoal {
		t.Fatalf("own+penalty should resolve to own_goal, got %s", got)
	}
	// Penalty precedes the generic goal check.
	if got := MapEventType("goal", "Penalty Goal"); got != normalized.EventPenalty {
		t.Fatalf("penalty+goal should resolve to penalty, got %s", got)
	}
	// Red takes priority over yellow when both substrings appear.
	if got := MapEventType("card", "Second yellow card (red)"); got != normalized.EventRedCard {
		t.Fatalf("yellow+red should resolve to red_card, got %s", got)
	}
}

func TestMapEventTypeKindIsAuthoritative(t *testing.T) {
	// VAR review details routinely carry goal-family text; the kind field
	// decides, never the detail.
	cases := []struct {
		kind   string
		detail string
		want   normalized.EventType
	}{
		{"Var", "Goal cancelled", normalized.EventVAR},
		{"Var", "Penalty confirmed", normalized.EventVAR},
		{"Var", "Goal Disallowed - offside", normalized.EventVAR},
		{"subst", "Substitution 1 (Goal scorer off)", normalized.EventSubstitution},
		{"Card", "Argument after goal", normalized.EventYellowCard},
	}
	for _, tc := range cases {
		if got := MapEventType(tc.kind, tc.detail); got != tc.want {
			t.Fatalf("MapEventType(%q, %q) = %s, want %s", tc.kind, tc.detail, got, tc.want)
		}
	}
}

func h2hFixture() []normalized.Match {
	// Three finished matches relative to team "10": a win as home, a loss
	// as away, and a draw — plus one scheduled fixture that must not count.
	return []normalized.Match{
		{
			Status:   normalized.StatusFinished,
			HomeTeam: normalized.TeamBasic{ID: "10"},
			AwayTeam: normalized.TeamBasic{ID: "20"},
			Score:    normalized.Score{Home: intPtr(2), Away: intPtr(0)},
		},
		{
			Status:   normalized.StatusFinished,
			HomeTeam: normalized.TeamBasic{ID: "20"},
			AwayTeam: normalized.TeamBasic{ID: "10"},
			Score:    normalized.Score{Home: intPtr(3), Away: intPtr(1)},
		},
		{
			Status:   normalized.StatusFinished,
			HomeTeam: normalized.TeamBasic{ID: "20"},
			AwayTeam: normalized.TeamBasic{ID: "10"},
			Score:    normalized.Score{Home: intPtr(1), Away: intPtr(1)},
		},
		{
			Status:   normalized.StatusScheduled,
			HomeTeam: normalized.TeamBasic{ID: "10"},
			AwayTeam: normalized.TeamBasic{ID: "20"},
			Score:    normalized.Score{},
		},
	}
}

func TestTallyH2HResolvesOrientationPerMatch(t *testing.T) {
	wins, losses, draws := TallyH2H(h2hFixture(), "10")
	if wins != 1 || losses != 1 || draws != 1 {
		t.Fatalf("expected 1/1/1, got %d/%d/%d", wins, losses, draws)
	}

	// Flipping the reference team swaps wins and losses, draws unchanged.
	wins, losses, draws = TallyH2H(h2hFixture(), "20")
	if wins != 1 || losses != 1 || draws != 1 {
		t.Fatalf("expected 1/1/1 for opposite reference, got %d/%d/%d", wins, losses, draws)
	}
}

func TestTallyH2HIgnoresUnfinishedMatches(t *testing.T) {
	matches := []normalized.Match{
		{
			Status:   normalized.StatusLive,
			HomeTeam: normalized.TeamBasic{ID: "10"},
			AwayTeam: normalized.TeamBasic{ID: "20"},
			Score:    normalized.Score{Home: intPtr(4), Away: intPtr(0)},
		},
	}
	wins, losses, draws := TallyH2H(matches, "10")
	if wins != 0 || losses != 0 || draws != 0 {
		t.Fatalf("live match must not contribute a result, got %d/%d/%d", wins, losses, draws)
	}
}
