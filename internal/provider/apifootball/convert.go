package apifootball

import (
	"github.com/calcioscope/calcio-data/internal/normalized"
	"github.com/calcioscope/calcio-data/internal/provider"
)

// Converters are pure functions from raw API-Football payload shapes to
// canonical entities. They never perform I/O and tolerate missing nested
// objects at every level: absent IDs become "", absent names "Unknown",
// absent numeric stats 0.

func convertTeamBasic(d provider.Doc) normalized.TeamBasic {
	return normalized.TeamBasic{
		ID:   d.ID("id"),
		Name: d.StringOr("Unknown", "name"),
		Logo: d.String("logo"),
	}
}

func convertPlayer(d provider.Doc) normalized.Player {
	return normalized.Player{
		ID:          d.ID("id"),
		Name:        d.StringOr("Unknown", "name"),
		FirstName:   d.String("firstname"),
		LastName:    d.String("lastname"),
		Nationality: d.String("nationality"),
		Position:    d.StringOr("", "pos", "position"),
		Number:      d.IntPtr("number"),
		Age:         d.IntPtr("age"),
		Height:      d.String("height"),
		Weight:      d.String("weight"),
		Photo:       d.String("photo"),
	}
}

func convertMatch(d provider.Doc) normalized.Match {
	fixture := d.Get("fixture")
	if fixture == nil {
		fixture = d
	}
	teams := d.Get("teams")
	goals := d.Get("goals")
	score := d.Get("score")
	league := d.Get("league")

	date, clock := provider.SplitDateTime(fixture.String("date"))

	m := normalized.Match{
		ID:       fixture.ID("id"),
		Status:   mapStatus(fixture.Get("status").String("short")),
		Date:     date,
		Time:     clock,
		HomeTeam: convertTeamBasic(teams.Get("home")),
		AwayTeam: convertTeamBasic(teams.Get("away")),
		Score: normalized.Score{
			Home:         goals.IntPtr("home"),
			Away:         goals.IntPtr("away"),
			HalftimeHome: score.Get("halftime").IntPtr("home"),
			HalftimeAway: score.Get("halftime").IntPtr("away"),
		},
		League: normalized.MatchLeague{
			ID:   league.ID("id"),
			Name: league.String("name"),
			Logo: league.String("logo"),
		},
		Round:    league.String("round"),
		SeasonID: league.ID("season"),
	}

	if venue := fixture.Get("venue"); venue.ID("id") != "" {
		m.Venue = &normalized.MatchVenue{
			ID:   venue.ID("id"),
			Name: venue.String("name"),
		}
	}
	return m
}

func convertTeam(d provider.Doc) normalized.Team {
	team := d.Get("team")
	if team == nil {
		team = d
	}
	t := normalized.Team{
		ID:        team.ID("id"),
		Name:      team.StringOr("Unknown", "name"),
		ShortName: team.String("code"),
		Logo:      team.String("logo"),
		Country:   team.String("country"),
		Founded:   team.IntPtr("founded"),
	}
	if venue := d.Get("venue"); venue != nil {
		t.Venue = &normalized.Venue{
			ID:       venue.ID("id"),
			Name:     venue.String("name"),
			City:     venue.String("city"),
			Capacity: venue.IntPtr("capacity"),
			Address:  venue.String("address"),
			Image:    venue.String("image"),
		}
	}
	return t
}

func convertCoach(d provider.Doc) normalized.Coach {
	return normalized.Coach{
		ID:          d.ID("id"),
		Name:        d.StringOr("Unknown", "name"),
		Nationality: d.String("nationality"),
	}
}

// convertSquad maps a squads response entry's players list.
func convertSquad(d provider.Doc) []normalized.Player {
	items := d.Slice("players")
	out := make([]normalized.Player, 0, len(items))
	for _, item := range items {
		out = append(out, convertPlayer(item))
	}
	return out
}

func convertStanding(d provider.Doc) normalized.Standing {
	all := d.Get("all")
	s := normalized.Standing{
		Position:     d.Int("rank"),
		Team:         convertTeamBasic(d.Get("team")),
		Played:       all.Int("played"),
		Won:          all.Int("win"),
		Drawn:        all.Int("draw"),
		Lost:         all.Int("lose"),
		GoalsFor:     all.Get("goals").Int("for"),
		GoalsAgainst: all.Get("goals").Int("against"),
		Points:       d.Int("points"),
		Form:         d.String("form"),
		Description:  d.String("description"),
	}
	// Provider-supplied difference wins; derive only when absent.
	if gd, ok := d.IntOK("goalsDiff"); ok {
		s.GoalDifference = gd
	} else {
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	}
	return s
}

// convertStandings digs the double-nested league.standings[0] group out of
// a /standings response entry.
func convertStandings(d provider.Doc) []normalized.Standing {
	league := d.Get("league")
	if league == nil {
		return nil
	}
	groups, ok := league["standings"].([]interface{})
	if !ok || len(groups) == 0 {
		return nil
	}
	rows, ok := groups[0].([]interface{})
	if !ok {
		return nil
	}
	out := make([]normalized.Standing, 0, len(rows))
	for _, row := range rows {
		if m, ok := row.(map[string]interface{}); ok {
			out = append(out, convertStanding(provider.Doc(m)))
		}
	}
	return out
}

func convertLeader(d provider.Doc) normalized.Leader {
	var stats provider.Doc
	if list := d.Slice("statistics"); len(list) > 0 {
		stats = list[0]
	}
	goals := stats.Get("goals")
	return normalized.Leader{
		Player:  convertPlayer(d.Get("player")),
		Team:    convertTeamBasic(stats.Get("team")),
		Goals:   goals.Int("total"),
		Assists: goals.IntPtr("assists"),
		Matches: stats.Get("games").IntPtr("appearences"),
	}
}

func convertVenue(d provider.Doc) normalized.Venue {
	return normalized.Venue{
		ID:       d.ID("id"),
		Name:     d.StringOr("Unknown", "name"),
		City:     d.String("city"),
		Country:  d.String("country"),
		Capacity: d.IntPtr("capacity"),
		Address:  d.String("address"),
		Image:    d.String("image"),
	}
}

func convertLeague(d provider.Doc) normalized.League {
	league := d.Get("league")
	if league == nil {
		league = d
	}
	l := normalized.League{
		ID:      league.ID("id"),
		Name:    league.StringOr("Unknown", "name"),
		Country: d.Get("country").StringOr(league.String("country"), "name"),
		Logo:    league.String("logo"),
		IsCup:   league.String("type") == "Cup",
	}
	for _, season := range d.Slice("seasons") {
		if season.Bool("current") {
			l.CurrentSeasonID = season.ID("year")
			break
		}
	}
	return l
}

// convertH2H tallies wins relative to the reference team from the finished
// matches in the raw list. Upstream pre-aggregated tallies are never
// trusted: providers disagree on how "home" is attributed.
func convertH2H(items []provider.Doc, refTeamID string) normalized.H2H {
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
	kind := d.String("type")
	detail := d.String("detail")
	ev := normalized.MatchEvent{
		Minute: d.Get("time").Int("elapsed"),
		Type:   provider.MapEventType(kind, detail),
		Team:   convertTeamBasic(d.Get("team")),
		Detail: detail,
	}
	if p := d.Get("player"); p.ID("id") != "" || p.String("name") != "" {
		player := convertPlayer(p)
		ev.Player = &player
	}
	// API-Football reuses the assist slot for the player coming on during a
	// substitution; split that into the unambiguous PlayerIn field.
	if a := d.Get("assist"); a.ID("id") != "" || a.String("name") != "" {
		second := convertPlayer(a)
		if ev.Type == normalized.EventSubstitution {
			ev.PlayerIn = &second
		} else {
			ev.Assist = &second
		}
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

// Stat type labels as API-Football spells them.
const (
	statPossession    = "Ball Possession"
	statShotsTotal    = "Total Shots"
	statShotsOnTarget = "Shots on Goal"
	statCorners       = "Corner Kicks"
	statFouls         = "Fouls"
	statYellowCards   = "Yellow Cards"
	statRedCards      = "Red Cards"
	statOffsides      = "Offsides"
)

// statValue finds a stat by its type label. Percent strings parse to their
// numeric part; a missing stat is 0.
func statValue(stats []provider.Doc, label string) (int, bool) {
	for _, s := range stats {
		if s.String("type") == label {
			if n, ok := provider.StatValue(s["value"]); ok {
				return n, true
			}
			return 0, false
		}
	}
	return 0, false
}

// convertStats maps the two-element statistics response (home first, away
// second) onto the canonical paired metrics. Possession defaults to 50/50
// when unreported — unknown, assume even.
func convertStats(items []provider.Doc) normalized.MatchStats {
	var home, away []provider.Doc
	if len(items) > 0 {
		home = items[0].Slice("statistics")
	}
	if len(items) > 1 {
		away = items[1].Slice("statistics")
	}

	pair := func(label string) *normalized.StatPair {
		h, hok := statValue(home, label)
		a, aok := statValue(away, label)
		if !hok && !aok {
			return nil
		}
		return &normalized.StatPair{Home: h, Away: a}
	}

	stats := normalized.MatchStats{
		Possession:    normalized.StatPair{Home: 50, Away: 50},
		ShotsTotal:    pair(statShotsTotal),
		ShotsOnTarget: pair(statShotsOnTarget),
		Corners:       pair(statCorners),
		Fouls:         pair(statFouls),
		YellowCards:   pair(statYellowCards),
		RedCards:      pair(statRedCards),
		Offsides:      pair(statOffsides),
	}
	if p := pair(statPossession); p != nil {
		stats.Possession = *p
	}
	return stats
}

func convertLineup(d provider.Doc) normalized.Lineup {
	lineup := normalized.Lineup{
		Formation: d.String("formation"),
		Players:   []normalized.LineupPlayer{},
	}
	for _, slot := range d.Slice("startXI") {
		p := slot.Get("player")
		lineup.Players = append(lineup.Players, normalized.LineupPlayer{
			Player:    convertPlayer(p),
			Position:  p.StringOr("", "pos", "position"),
			Number:    p.Int("number"),
			IsCaptain: p.Bool("captain"),
		})
	}
	return lineup
}

// convertLineups maps the two-element lineups response. An absent startXI
// array yields an empty player list, never a failure.
func convertLineups(items []provider.Doc) normalized.MatchLineups {
	lineups := normalized.MatchLineups{
		Home: normalized.Lineup{Players: []normalized.LineupPlayer{}},
		Away: normalized.Lineup{Players: []normalized.LineupPlayer{}},
	}
	if len(items) > 0 {
		lineups.Home = convertLineup(items[0])
	}
	if len(items) > 1 {
		lineups.Away = convertLineup(items[1])
	}
	return lineups
}
