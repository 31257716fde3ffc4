package report

import (
	"fmt"
	"strings"
)

// maxQuietListings caps the "also listed" section per sport so the
// summary stays readable on heavy injury days.
const maxQuietListings = 20

// Summary renders the report as plain text for terminals and alert
// bodies: status changes first, then per-sport sections with today's
// players ahead of the long tail, then source health.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "INJURY REPORT - %s (run %s)\n", r.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), shortRunID(r.RunID))
	if r.ScheduleDegraded {
		b.WriteString("schedule unavailable; game annotations incomplete\n")
	}

	if changes := r.Changes(); len(changes) > 0 {
		fmt.Fprintf(&b, "\nSTATUS CHANGES (%d)\n", len(changes))
		for _, entry := range changes {
			fmt.Fprintf(&b, "  [%s] %s (%s): %s -> %s%s%s\n",
				entry.Sport, entry.Player.Name, entry.Player.Team,
				entry.PreviousStatus, entry.Status,
				detailSuffix(entry), gameSuffix(entry))
		}
	}

	for _, sport := range r.sportOrder() {
		section := r.Sports[sport]
		fmt.Fprintf(&b, "\n%s - %d listed, %d games today\n",
			strings.ToUpper(string(sport)), len(section.Injuries), len(section.GamesToday))

		playing, quiet := splitByGame(section.Injuries)
		if len(playing) > 0 {
			b.WriteString("  playing today:\n")
			for _, entry := range playing {
				fmt.Fprintf(&b, "    %s (%s) - %s%s%s\n",
					entry.Player.Name, entry.Player.Team, entry.Status,
					detailSuffix(entry), gameSuffix(entry))
			}
		}
		if len(quiet) > 0 {
			b.WriteString("  also listed:\n")
			shown := quiet
			if len(shown) > maxQuietListings {
				shown = shown[:maxQuietListings]
			}
			for _, entry := range shown {
				fmt.Fprintf(&b, "    %s (%s) - %s%s\n",
					entry.Player.Name, entry.Player.Team, entry.Status, detailSuffix(entry))
			}
			if extra := len(quiet) - len(shown); extra > 0 {
				fmt.Fprintf(&b, "    ... and %d more\n", extra)
			}
		}
		if len(section.NoLongerListed) > 0 {
			b.WriteString("  no longer listed:\n")
			for _, dropped := range section.NoLongerListed {
				fmt.Fprintf(&b, "    %s (%s) - last seen %s\n",
					dropped.Player.Name, dropped.Player.Team, dropped.Status)
			}
		}
		if len(section.AffectedGames) > 0 {
			b.WriteString("  games with sidelined players:\n")
			for _, game := range section.AffectedGames {
				fmt.Fprintf(&b, "    %s at %s (%s)\n",
					game.AwayTeam, game.HomeTeam, game.StartTime.UTC().Format("15:04 MST"))
			}
		}
	}

	b.WriteString("\nSOURCES\n")
	for _, result := range r.Sources {
		if result.Succeeded {
			fmt.Fprintf(&b, "  %s/%s: ok (%d records)\n", result.Origin, result.Sport, result.RecordCount)
			continue
		}
		fmt.Fprintf(&b, "  %s/%s: FAILED: %s\n", result.Origin, result.Sport, result.Error)
	}

	return b.String()
}

func splitByGame(entries []Entry) (playing, quiet []Entry) {
	for _, entry := range entries {
		if entry.Game != nil {
			playing = append(playing, entry)
		} else {
			quiet = append(quiet, entry)
		}
	}
	return playing, quiet
}

func detailSuffix(entry Entry) string {
	if entry.Description == "" {
		return ""
	}
	return " (" + entry.Description + ")"
}

func gameSuffix(entry Entry) string {
	if entry.Game == nil {
		return ""
	}
	side := "vs"
	if !entry.Game.Home {
		side = "at"
	}
	return fmt.Sprintf(" - plays today %s %s", side, entry.Game.Opponent)
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
