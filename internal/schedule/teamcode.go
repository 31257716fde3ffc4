package schedule

import "strings"

// TeamsMatch reports whether an injury feed's team label refers to the
// same club as a schedule entry. Feeds disagree on form ("Memphis
// Grizzlies" vs "Grizzlies" vs "MEM"), so matching falls through exact
// name, containment, nickname, and abbreviation-initial checks.
func TeamsMatch(feedTeam, scheduleTeam string) bool {
	a := canonicalTeam(feedTeam)
	b := canonicalTeam(scheduleTeam)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	if nickname(a) == nickname(b) {
		return true
	}
	return abbreviationMatches(a, b) || abbreviationMatches(b, a)
}

func canonicalTeam(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// nickname is the final word of a team name, the form fans and feeds
// most often shorten to.
func nickname(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// abbreviationMatches treats a short token as a candidate abbreviation
// and checks it against the other side's initials ("lal" vs "los
// angeles lakers") or leading letters ("mem" vs "memphis grizzlies").
func abbreviationMatches(abbr, full string) bool {
	if len(abbr) < 2 || len(abbr) > 4 || strings.Contains(abbr, " ") {
		return false
	}
	fields := strings.Fields(full)
	if len(fields) < 2 {
		return false
	}

	var initials strings.Builder
	for _, f := range fields {
		initials.WriteByte(f[0])
	}
	if initials.String() == abbr {
		return true
	}
	return strings.HasPrefix(fields[0], abbr)
}
