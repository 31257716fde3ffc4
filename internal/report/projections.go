package report

import (
	"sort"

	"injury-report-service/internal/domain"
)

// sportOrder fixes the traversal order over the sports map so every
// projection and renderer emits sports deterministically.
func (r *Report) sportOrder() []domain.Sport {
	sports := make([]domain.Sport, 0, len(r.Sports))
	for sport := range r.Sports {
		sports = append(sports, sport)
	}
	sort.Slice(sports, func(i, j int) bool { return sports[i] < sports[j] })
	return sports
}

// ForSport returns one sport's section, or nil when the run did not
// cover that sport.
func (r *Report) ForSport(sport domain.Sport) *SportReport {
	return r.Sports[sport]
}

// Changes projects the entries whose status moved this run, across all
// sports, in each sport's severity order.
func (r *Report) Changes() []Entry {
	var out []Entry
	for _, sport := range r.sportOrder() {
		for _, entry := range r.Sports[sport].Injuries {
			if entry.StatusChanged {
				out = append(out, entry)
			}
		}
	}
	return out
}

// TodayImpact projects the urgent entries: players on teams that play
// today whose listing is severe or moved this run.
func (r *Report) TodayImpact() []Entry {
	var out []Entry
	for _, sport := range r.sportOrder() {
		for _, entry := range r.Sports[sport].Injuries {
			if entry.Urgent() {
				out = append(out, entry)
			}
		}
	}
	return out
}

// TotalListed counts listed players across all sports.
func (r *Report) TotalListed() int {
	total := 0
	for _, section := range r.Sports {
		total += len(section.Injuries)
	}
	return total
}

// FailedSources projects the origins that did not complete this run.
func (r *Report) FailedSources() []domain.SourceResult {
	var failed []domain.SourceResult
	for _, result := range r.Sources {
		if !result.Succeeded {
			failed = append(failed, result)
		}
	}
	return failed
}
