package analysis

import (
	"strconv"
	"strings"
)

// expiredClocks are the feed's end-of-period displays. They score nothing.
var expiredClocks = map[string]bool{"0:00": true, "0:01": true}

const (
	twoMinuteDrill = 120
	fiveMinuteMark = 300

	twoMinuteBonus  = 8.0
	fiveMinuteBonus = 4.0
)

// PaceBonus scores end-of-period urgency from a "MM:SS" clock. Malformed clocks score 0.
func PaceBonus(clock string) float64 {
	if expiredClocks[clock] {
		return 0
	}
	seconds, ok := clockSeconds(clock)
	if !ok {
		return 0
	}
	switch {
	case seconds < twoMinuteDrill:
		return twoMinuteBonus
	case seconds < fiveMinuteMark:
		return fiveMinuteBonus
	default:
		return 0
	}
}

func clockSeconds(clock string) (int, bool) {
	mins, secs, found := strings.Cut(clock, ":")
	if !found || strings.Contains(secs, ":") {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(mins))
	if err != nil {
		return 0, false
	}
	s, err := strconv.Atoi(strings.TrimSpace(secs))
	if err != nil {
		return 0, false
	}
	return m*60 + s, true
}
