// Package normalized defines the canonical football data types that every
// provider adapter converts into. These structs are the contract between
// provider adapters and every consumer — adapters output these, the facade
// and the fetch CLI read them.
//
// Adding a new provider means implementing an adapter that returns these
// types. Consumers never change.
//
// All entities are immutable value snapshots: each fetch builds a fresh
// instance and nothing mutates one after construction. IDs are always the
// upstream numeric ID coerced to string so that comparison stays uniform
// across providers.
package normalized

// MatchStatus is the canonical six-value match state. Every provider status
// code maps to exactly one of these; unknown codes map to StatusScheduled.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusHalftime  MatchStatus = "halftime"
	StatusFinished  MatchStatus = "finished"
	StatusPostponed MatchStatus = "postponed"
	StatusCancelled MatchStatus = "cancelled"
)

// TeamBasic is the minimal team reference embedded in matches, standings,
// events and leader rows.
type TeamBasic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Score holds a match's goal tally. Home/Away are nil exactly while the
// match has not produced a tally yet (scheduled fixtures).
type Score struct {
	Home         *int `json:"home"`
	Away         *int `json:"away"`
	HalftimeHome *int `json:"halftimeHome,omitempty"`
	HalftimeAway *int `json:"halftimeAway,omitempty"`
}

// MatchLeague is the league reference embedded in a match.
type MatchLeague struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// MatchVenue is the venue reference embedded in a match.
type MatchVenue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is a single fixture snapshot.
type Match struct {
	ID       string      `json:"id"`
	Status   MatchStatus `json:"status"`
	Date     string      `json:"date"` // YYYY-MM-DD
	Time     string      `json:"time"` // HH:mm
	HomeTeam TeamBasic   `json:"homeTeam"`
	AwayTeam TeamBasic   `json:"awayTeam"`
	Score    Score       `json:"score"`
	League   MatchLeague `json:"league"`
	Venue    *MatchVenue `json:"venue,omitempty"`
	Round    string      `json:"round,omitempty"`
	SeasonID string      `json:"seasonId,omitempty"`
}

// Coordinates is a venue location.
type Coordinates struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Venue is a stadium profile.
type Venue struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	City        string       `json:"city,omitempty"`
	Country     string       `json:"country,omitempty"`
	Capacity    *int         `json:"capacity,omitempty"`
	Address     string       `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Image       string       `json:"image,omitempty"`
}

// Coach is the coach reference embedded in a team profile.
type Coach struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
}

// Team is the extended team profile.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	Logo      string `json:"logo"`
	Country   string `json:"country,omitempty"`
	Founded   *int   `json:"founded,omitempty"`
	Venue     *Venue `json:"venue,omitempty"`
	Coach     *Coach `json:"coach,omitempty"`
}

// Standing is one row of a league table. GoalDifference passes through the
// provider value when one is supplied; it is only derived from
// GoalsFor-GoalsAgainst as a fallback (point adjustments can make the
// provider value diverge from raw counts).
type Standing struct {
	Position       int       `json:"position"`
	Team           TeamBasic `json:"team"`
	Played         int       `json:"played"`
	Won            int       `json:"won"`
	Drawn          int       `json:"drawn"`
	Lost           int       `json:"lost"`
	GoalsFor       int       `json:"goalsFor"`
	GoalsAgainst   int       `json:"goalsAgainst"`
	GoalDifference int       `json:"goalDifference"`
	Points         int       `json:"points"`
	Form           string    `json:"form,omitempty"`
	Description    string    `json:"description,omitempty"`
}

// Player is a player profile. Name is never empty — converters fall back to
// "Unknown" when the upstream payload carries no usable name.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Position    string `json:"position,omitempty"`
	Number      *int   `json:"number,omitempty"`
	Age         *int   `json:"age,omitempty"`
	Height      string `json:"height,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

// Leader is a ranked top-scorer entry.
type Leader struct {
	Position int       `json:"position"`
	Player   Player    `json:"player"`
	Team     TeamBasic `json:"team"`
	Goals    int       `json:"goals"`
	Assists  *int      `json:"assists,omitempty"`
	Matches  *int      `json:"matches,omitempty"`
}

// League is a competition profile.
type League struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Country         string `json:"country,omitempty"`
	Logo            string `json:"logo,omitempty"`
	IsCup           bool   `json:"isCup"`
	CurrentSeasonID string `json:"currentSeasonId,omitempty"`
}

// H2H is a head-to-head summary between two teams. Matches keeps the
// upstream order (most recent first); the win/draw tally is recomputed from
// the finished matches relative to the caller-supplied reference team, never
// trusted from a pre-aggregated upstream field.
type H2H struct {
	Matches      []Match `json:"matches"`
	HomeTeamWins int     `json:"homeTeamWins"`
	AwayTeamWins int     `json:"awayTeamWins"`
	Draws        int     `json:"draws"`
}

// EventType classifies a match event.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventOwnGoal      EventType = "own_goal"
	EventPenalty      EventType = "penalty"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventSubstitution EventType = "substitution"
	EventVAR          EventType = "var"
	EventOther        EventType = "other"
)

// MatchEvent is a timeline entry. For substitutions Player is the player
// coming off and PlayerIn the replacement; Assist is only ever a goal
// assist.
type MatchEvent struct {
	ID       string    `json:"id,omitempty"`
	Minute   int       `json:"minute"`
	Type     EventType `json:"type"`
	Player   *Player   `json:"player,omitempty"`
	Assist   *Player   `json:"assist,omitempty"`
	PlayerIn *Player   `json:"playerIn,omitempty"`
	Team     TeamBasic `json:"team"`
	Detail   string    `json:"detail,omitempty"`
}

// StatPair is a home/away metric pair.
type StatPair struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// MatchStats is the fixed set of paired match metrics. Possession is always
// present (50/50 when the provider reports nothing); the rest are nil when
// the provider does not support them.
type MatchStats struct {
	Possession    StatPair  `json:"possession"`
	ShotsTotal    *StatPair `json:"shotsTotal,omitempty"`
	ShotsOnTarget *StatPair `json:"shotsOnTarget,omitempty"`
	Corners       *StatPair `json:"corners,omitempty"`
	Fouls         *StatPair `json:"fouls,omitempty"`
	YellowCards   *StatPair `json:"yellowCards,omitempty"`
	RedCards      *StatPair `json:"redCards,omitempty"`
	Offsides      *StatPair `json:"offsides,omitempty"`
}

// LineupPlayer is one slot in a lineup, in announced order.
type LineupPlayer struct {
	Player    Player `json:"player"`
	Position  string `json:"position"`
	Number    int    `json:"number"`
	IsCaptain bool   `json:"isCaptain"`
}

// Lineup is one side's starting eleven.
type Lineup struct {
	Formation string         `json:"formation,omitempty"`
	Players   []LineupPlayer `json:"players"`
}

// MatchLineups pairs both sides' lineups.
type MatchLineups struct {
	Home Lineup `json:"home"`
	Away Lineup `json:"away"`
}
