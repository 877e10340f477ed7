package provider

import (
	"strings"

	"github.com/calcioscope/calcio-data/internal/normalized"
)

// MapEventType derives a canonical event type from a provider's free-text
// type/detail pair. Providers are inconsistent about capitalization and
// qualifiers ("Goal - Header", "Second yellow card"), so classification is
// case-insensitive substring matching.
//
// The kind field is authoritative for the var, substitution, and card
// families: a VAR event's detail often carries goal-family text
// ("Goal cancelled", "Penalty confirmed") and must never classify as a goal.
// Only the goal family falls through to scanning kind and detail combined,
// where the check order is load-bearing: own-goal before penalty before
// generic goal. Within cards, red beats yellow.
func MapEventType(kind, detail string) normalized.EventType {
	k := strings.ToLower(kind)
	d := strings.ToLower(detail)

	switch {
	case strings.Contains(k, "var"):
		return normalized.EventVAR
	case strings.Contains(k, "sub"):
		return normalized.EventSubstitution
	case strings.Contains(k, "card"):
		if strings.Contains(k, "red") || strings.Contains(d, "red") {
			return normalized.EventRedCard
		}
		return normalized.EventYellowCard
	}

	s := k + " " + d
	switch {
	case strings.Contains(s, "own"):
		return normalized.EventOwnGoal
	case strings.Contains(s, "pen"):
		return normalized.EventPenalty
	case strings.Contains(s, "goal"):
		return normalized.EventGoal
	case strings.Contains(s, "red"):
		return normalized.EventRedCard
	case strings.Contains(s, "yellow"):
		return normalized.EventYellowCard
	case strings.Contains(s, "sub"):
		return normalized.EventSubstitution
	case strings.Contains(s, "var"):
		return normalized.EventVAR
	default:
		return normalized.EventOther
	}
}

// SplitDateTime splits a combined timestamp into date ("YYYY-MM-DD") and
// time ("HH:mm") components. Accepts both ISO "2024-08-31T20:45:00+02:00"
// and "2024-08-31 20:45:00" spellings; an already date-only value comes back
// with an empty time.
func SplitDateTime(s string) (date, clock string) {
	sep := strings.IndexAny(s, "T ")
	if sep < 0 {
		return s, ""
	}
	date = s[:sep]
	rest := s[sep+1:]
	if len(rest) >= 5 {
		clock = rest[:5]
	}
	return date, clock
}

// TallyH2H counts head-to-head results relative to a reference team. Only
// finished matches with a recorded score contribute; a fixture that has not
// produced a result cannot yield a win or a draw. Wins are attributed by
// resolving, per match, whether the reference team played home or away —
// never by a fixed team1/team2 role.
func TallyH2H(matches []normalized.Match, refTeamID string) (refWins, oppWins, draws int) {
	for _, m := range matches {
		if m.Status != normalized.StatusFinished || m.Score.Home == nil || m.Score.Away == nil {
			continue
		}
		refIsHome := m.HomeTeam.ID == refTeamID
		home, away := *m.Score.Home, *m.Score.Away
		switch {
		case home > away:
			if refIsHome {
				refWins++
			} else {
				oppWins++
			}
		case away > home:
			if refIsHome {
				oppWins++
			} else {
				refWins++
			}
		default:
			draws++
		}
	}
	return refWins, oppWins, draws
}
