package pipeline

import "fmt"

// FormatScoreLines converts a scoreboard payload into display lines of
// the form "AWY 3 @ HME 5 Final", in event order. An event is skipped
// when it has no competition or when either the home or the away side
// is missing from the competitor list.
//
// When the status text is empty the line keeps its trailing space.
// Downstream consumers may depend on the exact format, so this is not
// normalized.
func FormatScoreLines(sb *Scoreboard) []string {
	lines := make([]string, 0, len(sb.Events))
	for _, ev := range sb.Events {
		if len(ev.Competitions) == 0 {
			continue
		}
		comp := ev.Competitions[0]

		var away, home *Competitor
		for i := range comp.Competitors {
			c := &comp.Competitors[i]
			switch c.HomeAway {
			case "away":
				if away == nil {
					away = c
				}
			case "home":
				if home == nil {
					home = c
				}
			}
		}
		if away == nil || home == nil {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s %s @ %s %s %s",
			away.Team.Abbreviation, away.Score,
			home.Team.Abbreviation, home.Score,
			comp.Status.Type.ShortDetail))
	}
	return lines
}
