package soccersapi

import "github.com/calcioscope/calcio-data/internal/normalized"

// statusTable maps SoccersAPI numeric status codes onto the canonical
// six-value enum.
var statusTable = map[int]normalized.MatchStatus{
	0: normalized.StatusScheduled,
	1: normalized.StatusLive,
	2: normalized.StatusHalftime,
	3: normalized.StatusFinished,
	4: normalized.StatusPostponed,
	5: normalized.StatusCancelled,
}

// mapStatus is total: unknown codes map to scheduled.
func mapStatus(code int) normalized.MatchStatus {
	if s, ok := statusTable[code]; ok {
		return s
	}
	return normalized.StatusScheduled
}
