package mlbwire

import (
	"strings"

	"injury-report-service/internal/domain"
)

// mapTransaction keeps injured-list placements and drops everything
// else on the wire (trades, options, activations). Activations are
// intentionally skipped: a recovered player simply stops appearing and
// the differ reports the disappearance.
func mapTransaction(tx transactionResponse) (domain.RawObservation, bool) {
	token, ok := statusToken(tx.TypeDesc)
	if !ok {
		return domain.RawObservation{}, false
	}

	team := tx.ToTeam.Name
	if team == "" {
		team = tx.FromTeam.Name
	}

	updated := tx.EffectiveDate
	if updated == "" {
		updated = tx.Date
	}

	return domain.RawObservation{
		Player:      strings.TrimSpace(tx.Person.FullName),
		Team:        strings.TrimSpace(team),
		Status:      token,
		Description: injuryDetail(tx.Description),
		Updated:     updated,
	}, true
}

// statusToken reduces the wire's transaction type to the raw status
// vocabulary the normalizer understands.
func statusToken(typeDesc string) (string, bool) {
	desc := strings.ToLower(typeDesc)
	// Reinstatements mention the list too but end a stint, not start one.
	if strings.Contains(desc, "reinstated") || strings.Contains(desc, "activated") {
		return "", false
	}
	switch {
	case strings.Contains(desc, "10-day"):
		return "10-day il", true
	case strings.Contains(desc, "15-day"):
		return "15-day il", true
	case strings.Contains(desc, "60-day"):
		return "60-day il", true
	case strings.Contains(desc, "injured list"):
		return "il", true
	default:
		return "", false
	}
}

// injuryDetail pulls the ailment out of the wire's prose description,
// e.g. "... placed RHP Jacob deGrom on the 15-day injured list
// retroactive to June 1, 2024 with right elbow inflammation."
func injuryDetail(description string) string {
	lower := strings.ToLower(description)
	for _, marker := range []string{" with ", " due to "} {
		if idx := strings.LastIndex(lower, marker); idx >= 0 {
			detail := strings.TrimSpace(description[idx+len(marker):])
			return strings.TrimSuffix(detail, ".")
		}
	}
	return ""
}
