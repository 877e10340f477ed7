package soccersapi

import (
	"strings"

	"github.com/calcioscope/calcio-data/internal/normalized"
	"github.com/calcioscope/calcio-data/internal/provider"
)

// Converters are pure functions from raw SoccersAPI payload shapes to
// canonical entities. SoccersAPI flattens relations on some plan tiers
// (home_team_id next to teams.home), so most converters read the nested
// shape first and fall back to the flat fields.

const logoCDN = "https://cdn.soccersapi.com/images/soccer/teams/100/"

func convertTeamBasic(d provider.Doc) normalized.TeamBasic {
	t := normalized.TeamBasic{
		ID:   d.ID("id"),
		Name: d.StringOr("Unknown", "name"),
		Logo: d.String("img"),
	}
	if t.Logo == "" && t.ID != "" {
		t.Logo = logoCDN + t.ID + ".png"
	}
	return t
}

// teamRef resolves a team reference that is either nested under key or
// flattened into <prefix>_team_id / <prefix>_team_name fields.
func teamRef(d provider.Doc, key, prefix string) provider.Doc {
	if nested := d.Get("teams").Get(key); nested != nil {
		return nested
	}
	return provider.Doc{
		"id":   d[prefix+"_team_id"],
		"name": d[prefix+"_team_name"],
	}
}

func convertPlayer(d provider.Doc) normalized.Player {
	return normalized.Player{
		ID:          d.ID("id"),
		Name:        d.StringOr("Unknown", "name", "common_name"),
		FirstName:   d.String("firstname"),
		LastName:    d.String("lastname"),
		Nationality: d.Get("country").String("name"),
		Position:    d.String("position"),
		Number:      d.IntPtr("number"),
		Age:         d.IntPtr("age"),
		Height:      d.String("height"),
		Weight:      d.String("weight"),
		Photo:       d.String("img"),
	}
}

// parseHalftime splits a "1-0" halftime score string.
func parseHalftime(s string) (home, away *int) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, nil
	}
	h, hok := provider.StatValue(strings.TrimSpace(parts[0]))
	a, aok := provider.StatValue(strings.TrimSpace(parts[1]))
	if !hok || !aok {
		return nil, nil
	}
	return &h, &a
}

func convertMatch(d provider.Doc) normalized.Match {
	scores := d.Get("scores")
	league := d.Get("league")

	// Split time.date/time.time fields, combined startdate fallback.
	date := d.Get("time").String("date")
	clock := d.Get("time").String("time")
	if date == "" {
		date, clock = provider.SplitDateTime(d.String("startdate"))
	}

	score := normalized.Score{}
	if h, ok := scores.IntOK("home_score"); ok {
		score.Home = &h
	} else {
		score.Home = d.IntPtr("home_score")
	}
	if a, ok := scores.IntOK("away_score"); ok {
		score.Away = &a
	} else {
		score.Away = d.IntPtr("away_score")
	}
	score.HalftimeHome, score.HalftimeAway = parseHalftime(scores.String("ht_score"))

	m := normalized.Match{
		ID:       d.ID("id"),
		Status:   mapStatus(d.Int("status")),
		Date:     date,
		Time:     clock,
		HomeTeam: convertTeamBasic(teamRef(d, "home", "home")),
		AwayTeam: convertTeamBasic(teamRef(d, "away", "away")),
		Score:    score,
		League: normalized.MatchLeague{
			ID:   league.StringOr(d.String("league_id"), "id"),
			Name: league.StringOr(d.String("league_name"), "name"),
			Logo: league.String("img"),
		},
		Round:    d.StringOr(d.Get("round").String("name"), "round_name"),
		SeasonID: d.ID("season_id"),
	}

	if venueID := d.ID("venue_id"); venueID != "" {
		m.Venue = &normalized.MatchVenue{
			ID:   venueID,
			Name: d.String("venue_name"),
		}
	}
	return m
}

func convertCoordinates(d provider.Doc) *normalized.Coordinates {
	if d == nil {
		return nil
	}
	return &normalized.Coordinates{
		Lat: d.String("lat"),
		Lng: d.StringOr("", "long", "lng"),
	}
}

func convertTeam(d provider.Doc) normalized.Team {
	t := normalized.Team{
		ID:        d.ID("id"),
		Name:      d.StringOr("Unknown", "name"),
		ShortName: d.String("short_name"),
		Logo:      d.String("img"),
		Country:   d.Get("country").String("name"),
		Founded:   d.IntPtr("founded"),
	}
	if t.Logo == "" && t.ID != "" {
		t.Logo = logoCDN + t.ID + ".png"
	}
	if venue := d.Get("venue"); venue != nil {
		t.Venue = &normalized.Venue{
			ID:          venue.ID("id"),
			Name:        venue.String("name"),
			City:        venue.String("city"),
			Capacity:    venue.IntPtr("capacity"),
			Address:     venue.String("address"),
			Coordinates: convertCoordinates(venue.Get("coordinates")),
		}
	}
	if coach := d.Get("coach"); coach != nil {
		c := convertCoach(coach)
		t.Coach = &c
	}
	return t
}

func convertCoach(d provider.Doc) normalized.Coach {
	return normalized.Coach{
		ID:          d.ID("id"),
		Name:        d.StringOr("Unknown", "name"),
		Nationality: d.Get("country").String("name"),
	}
}

// convertSquad maps the {squad: [...]} payload of the teams squad view.
// Slots either nest the player or are the player object itself.
func convertSquad(d provider.Doc) []normalized.Player {
	slots := d.Slice("squad")
	out := make([]normalized.Player, 0, len(slots))
	for _, slot := range slots {
		playerDoc := slot.Get("player")
		if playerDoc == nil {
			playerDoc = slot
		}
		out = append(out, convertPlayer(playerDoc))
	}
	return out
}

func convertStanding(d provider.Doc) normalized.Standing {
	overall := d.Get("overall")

	num := func(flat, nested string) int {
		if n, ok := d.IntOK(flat); ok {
			return n
		}
		return overall.Int(nested)
	}

	s := normalized.Standing{
		Position:     num("position", "position"),
		Team:         convertTeamBasic(standingTeam(d)),
		Played:       num("played", "games_played"),
		Won:          num("won", "won"),
		Drawn:        num("draw", "draw"),
		Lost:         num("lost", "lost"),
		GoalsFor:     num("goals_for", "goals_for"),
		GoalsAgainst: num("goals_against", "goals_against"),
		Points:       num("points", "points"),
		Form:         d.String("recent_form"),
		Description:  d.String("description"),
	}
	if s.Position == 0 {
		s.Position = d.Int("rank")
	}
	// Provider-supplied difference wins; derive only when absent.
	if gd, ok := d.IntOK("goal_diff"); ok {
		s.GoalDifference = gd
	} else {
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	}
	return s
}

// standingTeam resolves a team nested directly under "team" (standings,
// leaders, events) with the flat team_id/team_name fallback.
func standingTeam(d provider.Doc) provider.Doc {
	if nested := d.Get("team"); nested != nil {
		return nested
	}
	return provider.Doc{
		"id":   d["team_id"],
		"name": d["team_name"],
	}
}

func convertLeader(d provider.Doc) normalized.Leader {
	playerDoc := d.Get("player")
	if playerDoc == nil {
		playerDoc = d
	}
	goals, ok := provider.StatValue(d["goals"])
	if !ok {
		goals = 0
	}
	return normalized.Leader{
		Position: d.Int("position"),
		Player:   convertPlayer(playerDoc),
		Team:     convertTeamBasic(standingTeam(d)),
		Goals:    goals,
		Assists:  d.IntPtr("assists"),
		Matches:  firstIntPtr(d, "matches", "games_played"),
	}
}

func firstIntPtr(d provider.Doc, keys ...string) *int {
	for _, key := range keys {
		if n, ok := d.IntOK(key); ok {
			return &n
		}
	}
	return nil
}

func convertVenue(d provider.Doc) normalized.Venue {
	return normalized.Venue{
		ID:          d.ID("id"),
		Name:        d.StringOr("Unknown", "name"),
		City:        d.String("city"),
		Country:     d.Get("country").String("name"),
		Capacity:    d.IntPtr("capacity"),
		Address:     d.String("address"),
		Coordinates: convertCoordinates(d.Get("coordinates")),
		Image:       d.String("img"),
	}
}

func convertLeague(d provider.Doc) normalized.League {
	return normalized.League{
		ID:              d.ID("id"),
		Name:            d.StringOr("Unknown", "name"),
		Country:         d.Get("country").String("name"),
		Logo:            d.String("img"),
		IsCup:           d.Bool("is_cup"),
		CurrentSeasonID: d.ID("current_season_id"),
	}
}

// convertH2H tallies wins relative to the reference team from the finished
// matches in the raw list. The endpoint's own aggregate block is ignored:
// providers disagree on how "home" is attributed there.
func convertH2H(d provider.Doc, refTeamID string) normalized.H2H {
	items := d.Slice("h2h")
	matches := make([]normalized.Match, 0, len(items))
	for _, item := range items {
		matches = append(matches, convertMatch(item))
	}
	refWins, oppWins, draws := provider.TallyH2H(matches, refTeamID)
	return normalized.H2H{
		Matches:      matches,
		HomeTeamWins: refWins,
		AwayTeamWins: oppWins,
		Draws:        draws,
	}
}

func convertEvent(d provider.Doc) normalized.MatchEvent {
	kind := d.StringOr("", "type", "event_type")
	ev := normalized.MatchEvent{
		ID:     d.ID("id"),
		Minute: d.Int("minute"),
		Type:   provider.MapEventType(kind, ""),
		Team:   convertTeamBasic(standingTeam(d)),
		Detail: d.StringOr("", "detail", "comment"),
	}
	if p := d.Get("player"); p != nil {
		player := convertPlayer(p)
		ev.Player = &player
	}
	if in := d.Get("player_in"); in != nil {
		player := convertPlayer(in)
		ev.PlayerIn = &player
	}
	if assist := d.Get("assist"); assist != nil && ev.Type != normalized.EventSubstitution {
		player := convertPlayer(assist)
		ev.Assist = &player
	}
	return ev
}

func convertEvents(items []provider.Doc) []normalized.MatchEvent {
	out := make([]normalized.MatchEvent, 0, len(items))
	for _, item := range items {
		out = append(out, convertEvent(item))
	}
	return out
}

// statPair reads a {home, away} stat object, nil when the provider omits
// the metric entirely.
func statPair(d provider.Doc, key string) *normalized.StatPair {
	stat := d.Get(key)
	if stat == nil {
		return nil
	}
	return &normalized.StatPair{
		Home: stat.Int("home"),
		Away: stat.Int("away"),
	}
}

// convertStats maps the per-match stats object. Possession defaults to
// 50/50 when unreported — unknown, assume even.
func convertStats(d provider.Doc) normalized.MatchStats {
	stats := normalized.MatchStats{
		Possession:    normalized.StatPair{Home: 50, Away: 50},
		ShotsTotal:    statPair(d, "shots_total"),
		ShotsOnTarget: statPair(d, "shots_on_target"),
		Corners:       statPair(d, "corners"),
		Fouls:         statPair(d, "fouls"),
		YellowCards:   statPair(d, "yellow_cards"),
		RedCards:      statPair(d, "red_cards"),
		Offsides:      statPair(d, "offsides"),
	}
	if possession := d.Get("possession"); possession != nil {
		if h, ok := possession.IntOK("home"); ok {
			stats.Possession.Home = h
		}
		if a, ok := possession.IntOK("away"); ok {
			stats.Possession.Away = a
		}
	}
	return stats
}

func convertLineup(d provider.Doc) normalized.Lineup {
	lineup := normalized.Lineup{
		Formation: d.String("formation"),
		Players:   []normalized.LineupPlayer{},
	}
	for i, slot := range d.Slice("squad") {
		playerDoc := slot.Get("player")
		if playerDoc == nil {
			playerDoc = slot
		}
		number := slot.Int("number")
		if number == 0 {
			number = i + 1
		}
		lineup.Players = append(lineup.Players, normalized.LineupPlayer{
			Player:    convertPlayer(playerDoc),
			Position:  slot.String("position"),
			Number:    number,
			IsCaptain: slot.Bool("captain"),
		})
	}
	return lineup
}

// convertLineups maps the {home, away} lineups object. An absent squad
// array yields an empty player list, never a failure.
func convertLineups(d provider.Doc) normalized.MatchLineups {
	return normalized.MatchLineups{
		Home: convertLineup(d.Get("home")),
		Away: convertLineup(d.Get("away")),
	}
}
