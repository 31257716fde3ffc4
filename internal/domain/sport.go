package domain

import "strings"

// Sport identifies a league vertical the monitor aggregates.
type Sport string

const (
	SportNBA    Sport = "nba"
	SportMLB    Sport = "mlb"
	SportSoccer Sport = "soccer"
)

// AllSports lists the supported sports in report order.
func AllSports() []Sport {
	return []Sport{SportNBA, SportMLB, SportSoccer}
}

// ParseSport maps a raw string onto a known Sport.
func ParseSport(raw string) (Sport, bool) {
	switch Sport(strings.ToLower(strings.TrimSpace(raw))) {
	case SportNBA:
		return SportNBA, true
	case SportMLB:
		return SportMLB, true
	case SportSoccer:
		return SportSoccer, true
	default:
		return "", false
	}
}

// Valid reports whether the sport is one the monitor knows about.
func (s Sport) Valid() bool {
	_, ok := ParseSport(string(s))
	return ok
}
