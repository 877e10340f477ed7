// Package cachepolicy assigns cache lifetimes to proxied upstream requests
// based on inferred data volatility. The classification is heuristic by
// design: a wrong bucket degrades freshness, never correctness, and the
// bounded staleness window is the price of staying inside the upstream
// request quota.
package cachepolicy

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Cache lifetimes by volatility bucket.
const (
	TTLLive      = 60 * time.Second   // live score collections, in-play fixtures
	TTLMatchData = 5 * time.Minute    // lineups/events/stats for one match
	TTLDefault   = 1 * time.Hour      // unclassified, not-yet-started fixtures
	TTLFixtures  = 6 * time.Hour      // season fixture lists
	TTLDaily     = 24 * time.Hour     // standings, leaders, h2h, finished fixtures
	TTLStatic    = 7 * 24 * time.Hour // teams, venues, coaches, leagues
)

// Resolver computes a cache lifetime for one proxied request. Resolution is
// two-phase: classify by path and query first (cheap, always available),
// then peek at the parsed response body only for the single-fixture branch
// that needs the match status. Path rules are evaluated in order — the
// substrings overlap (a fixture list path also contains "fixtures"), so
// first match wins.
type Resolver interface {
	// Resolve returns the cache lifetime for a request. body is the upstream
	// response body and may be nil when unavailable.
	Resolve(path, rawQuery string, body []byte) time.Duration
}

// ForProvider returns the resolver matching a provider name, defaulting to
// the API-Football profile.
func ForProvider(name string) Resolver {
	if name == "soccersapi" {
		return SoccersAPI{}
	}
	return APIFootball{}
}

// Header renders a lifetime as the shared-cache directive applied to proxy
// responses: fresh for S seconds, then served stale for up to 2S more while
// the CDN revalidates.
func Header(ttl time.Duration) string {
	s := int(ttl.Seconds())
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", s, 2*s)
}

func queryHas(rawQuery, key string) bool {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	return q.Get(key) != ""
}

// APIFootball classifies API-Football v3 paths. Match state in the body
// peek is the short status code under response[0].fixture.status.short.
type APIFootball struct{}

var (
	afLiveStatuses     = map[string]bool{"1H": true, "2H": true, "HT": true, "ET": true, "P": true, "BT": true, "SUSP": true, "INT": true, "LIVE": true}
	afFinishedStatuses = map[string]bool{"FT": true, "AET": true, "PEN": true}
)

func (APIFootball) Resolve(path, rawQuery string, body []byte) time.Duration {
	switch {
	case strings.Contains(path, "fixtures/live"),
		strings.Contains(path, "fixtures") && strings.Contains(rawQuery, "live=all"):
		return TTLLive
	case strings.Contains(path, "headtohead"):
		// Checked before the single-fixture and fixture-list rules: the
		// path contains "fixtures" too and would never reach its own bucket
		// otherwise.
		return TTLDaily
	case strings.Contains(path, "fixtures") && queryHas(rawQuery, "id"):
		return byStatus(apiFootballStatus(body))
	case strings.Contains(path, "lineups"),
		strings.Contains(path, "events"),
		strings.Contains(path, "statistics"):
		// Live-ness here would need a second fixture lookup; a flat
		// moderate lifetime is the deliberate tradeoff.
		return TTLMatchData
	case strings.Contains(path, "standings"),
		strings.Contains(path, "topscorers"):
		return TTLDaily
	case strings.Contains(path, "fixtures"):
		return TTLFixtures
	case strings.Contains(path, "teams"),
		strings.Contains(path, "venues"),
		strings.Contains(path, "coachs"),
		strings.Contains(path, "coaches"):
		return TTLStatic
	case strings.Contains(path, "leagues"):
		return TTLStatic
	default:
		return TTLDefault
	}
}

func byStatus(state matchState) time.Duration {
	switch state {
	case stateLive:
		return TTLLive
	case stateFinished:
		return TTLDaily
	default:
		return TTLDefault
	}
}

type matchState int

const (
	stateUpcoming matchState = iota
	stateLive
	stateFinished
)

// apiFootballStatus digs response[0].fixture.status.short out of a fixture
// body. Any decode failure reads as not-yet-started.
func apiFootballStatus(body []byte) matchState {
	var payload struct {
		Response []struct {
			Fixture struct {
				Status struct {
					Short string `json:"short"`
				} `json:"status"`
			} `json:"fixture"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Response) == 0 {
		return stateUpcoming
	}
	short := payload.Response[0].Fixture.Status.Short
	switch {
	case afLiveStatuses[short]:
		return stateLive
	case afFinishedStatuses[short]:
		return stateFinished
	default:
		return stateUpcoming
	}
}

// SoccersAPI classifies SoccersAPI v2.2 paths. Match state in the body peek
// is the numeric code under data.status.
type SoccersAPI struct{}

func (SoccersAPI) Resolve(path, rawQuery string, body []byte) time.Duration {
	switch {
	case strings.Contains(path, "livescores"):
		return TTLLive
	case strings.Contains(path, "lineups"),
		strings.Contains(path, "events"),
		strings.Contains(path, "stats"):
		// Checked before the single-fixture rule: these paths live under
		// /fixtures and carry a match_id too.
		return TTLMatchData
	case strings.Contains(path, "fixtures") && queryHas(rawQuery, "match_id"),
		strings.Contains(path, "fixtures") && queryHas(rawQuery, "id"):
		return byStatus(soccersAPIStatus(body))
	case strings.Contains(path, "standings"),
		strings.Contains(path, "leaders"):
		return TTLDaily
	case strings.Contains(path, "h2h"):
		return TTLDaily
	case strings.Contains(path, "fixtures"):
		return TTLFixtures
	case strings.Contains(path, "teams"),
		strings.Contains(path, "venues"),
		strings.Contains(path, "coaches"):
		return TTLStatic
	case strings.Contains(path, "leagues"):
		return TTLStatic
	default:
		return TTLDefault
	}
}

// soccersAPIStatus digs data.status out of a fixture body. Codes 1 and 2
// are the in-play family, 3 is finished.
func soccersAPIStatus(body []byte) matchState {
	var payload struct {
		Data struct {
			Status json.Number `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return stateUpcoming
	}
	code, err := payload.Data.Status.Int64()
	if err != nil {
		return stateUpcoming
	}
	switch code {
	case 1, 2:
		return stateLive
	case 3:
		return stateFinished
	default:
		return stateUpcoming
	}
}
