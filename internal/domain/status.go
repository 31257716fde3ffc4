package domain

// Status is the canonical, sport-scoped availability status after
// vocabulary translation. Origin-specific phrasings are mapped onto this
// fixed set; anything unrecognized becomes StatusUnmapped so downstream
// consumers can see normalization gaps instead of silently losing records.
type Status string

const (
	StatusOut          Status = "out"
	StatusDoubtful     Status = "doubtful"
	StatusQuestionable Status = "questionable"
	StatusDayToDay     Status = "day-to-day"
	StatusProbable     Status = "probable"
	StatusIL10         Status = "il-10"
	StatusIL15         Status = "il-15"
	StatusIL60         Status = "il-60"
	StatusInjured      Status = "injured"
	StatusSuspended    Status = "suspended"
	StatusUnmapped     Status = "unmapped"
)

// Severity returns the urgency rank used for sorting and impact
// classification. Higher means more severe. Suspensions carry no injury
// severity and rank zero alongside unmapped statuses.
func (s Status) Severity() int {
	switch s {
	case StatusOut, StatusIL10, StatusIL15, StatusIL60:
		return 4
	case StatusDoubtful, StatusInjured:
		return 3
	case StatusQuestionable, StatusDayToDay:
		return 2
	case StatusProbable:
		return 1
	default:
		return 0
	}
}

// IsSuspension reports whether the status is a suspension rather than an
// injury; suspensions are flagged separately in reports.
func (s Status) IsSuspension() bool {
	return s == StatusSuspended
}

// AppliesTo reports whether the canonical status is part of the given
// sport's vocabulary. Unmapped and suspended are valid everywhere.
func (s Status) AppliesTo(sport Sport) bool {
	switch s {
	case StatusOut:
		return true
	case StatusDoubtful, StatusProbable:
		return sport == SportNBA
	case StatusQuestionable, StatusDayToDay:
		return sport == SportNBA || sport == SportMLB
	case StatusIL10, StatusIL15, StatusIL60:
		return sport == SportMLB
	case StatusInjured:
		return sport == SportSoccer
	case StatusSuspended, StatusUnmapped:
		return true
	default:
		return false
	}
}
