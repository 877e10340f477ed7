package apifootball

import (
	"strings"

	"github.com/calcioscope/calcio-data/internal/normalized"
)

// statusTable maps API-Football short status codes onto the canonical
// six-value enum. The upstream docs list more codes than any one plan ever
// returns; anything not listed here resolves to scheduled so that new codes
// degrade gracefully instead of failing.
var statusTable = map[string]normalized.MatchStatus{
	"TBD": normalized.StatusScheduled,
	"NS":  normalized.StatusScheduled,

	"1H":   normalized.StatusLive,
	"2H":   normalized.StatusLive,
	"ET":   normalized.StatusLive,
	"BT":   normalized.StatusLive,
	"P":    normalized.StatusLive,
	"SUSP": normalized.StatusLive,
	"INT":  normalized.StatusLive,
	"LIVE": normalized.StatusLive,

	"HT": normalized.StatusHalftime,

	"FT":  normalized.StatusFinished,
	"AET": normalized.StatusFinished,
	"PEN": normalized.StatusFinished,

	"PST": normalized.StatusPostponed,

	"CANC": normalized.StatusCancelled,
	"ABD":  normalized.StatusCancelled,
	"AWD":  normalized.StatusCancelled,
	"WO":   normalized.StatusCancelled,
}

// mapStatus is total: unknown codes map to scheduled.
func mapStatus(short string) normalized.MatchStatus {
	if s, ok := statusTable[strings.ToUpper(short)]; ok {
		return s
	}
	return normalized.StatusScheduled
}
