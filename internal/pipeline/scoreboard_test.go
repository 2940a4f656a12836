package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func competitor(side, abbr, score string) Competitor {
	return Competitor{
		HomeAway: side,
		Score:    score,
		Team:     Team{Abbreviation: abbr},
	}
}

func TestFormatScoreLines(t *testing.T) {
	sb := &Scoreboard{Events: []Event{
		{
			ID: "1",
			Competitions: []Competition{{
				Competitors: []Competitor{
					competitor("away", "AWY", "3"),
					competitor("home", "HME", "5"),
				},
				Status: Status{Type: StatusType{ShortDetail: "Final"}},
			}},
		},
		{
			// Away side missing: event is skipped.
			ID: "2",
			Competitions: []Competition{{
				Competitors: []Competitor{
					competitor("home", "HME", "0"),
				},
				Status: Status{Type: StatusType{ShortDetail: "Final"}},
			}},
		},
	}}

	lines := FormatScoreLines(sb)
	require.Len(t, lines, 1)
	assert.Equal(t, "AWY 3 @ HME 5 Final", lines[0])
}

func TestFormatScoreLines_HomeListedFirst(t *testing.T) {
	sb := &Scoreboard{Events: []Event{{
		Competitions: []Competition{{
			Competitors: []Competitor{
				competitor("home", "HME", "5"),
				competitor("away", "AWY", "3"),
			},
			Status: Status{Type: StatusType{ShortDetail: "Final"}},
		}},
	}}}

	lines := FormatScoreLines(sb)
	require.Len(t, lines, 1)
	assert.Equal(t, "AWY 3 @ HME 5 Final", lines[0])
}

func TestFormatScoreLines_EmptyStatusKeepsTrailingSpace(t *testing.T) {
	sb := &Scoreboard{Events: []Event{{
		Competitions: []Competition{{
			Competitors: []Competitor{
				competitor("away", "DAL", "0"),
				competitor("home", "PHI", "0"),
			},
		}},
	}}}

	lines := FormatScoreLines(sb)
	require.Len(t, lines, 1)
	assert.Equal(t, "DAL 0 @ PHI 0 ", lines[0])
}

func TestFormatScoreLines_NoCompetitions(t *testing.T) {
	sb := &Scoreboard{Events: []Event{{ID: "1"}, {ID: "2"}}}
	assert.Empty(t, FormatScoreLines(sb))
}

func TestFormatScoreLines_FromJSON(t *testing.T) {
	payload := `{
		"events": [
			{
				"id": "401520281",
				"shortName": "AWY @ HME",
				"competitions": [
					{
						"id": "401520281",
						"competitors": [
							{"homeAway": "home", "score": "5", "team": {"abbreviation": "HME"}},
							{"homeAway": "away", "score": "3", "team": {"abbreviation": "AWY"}}
						],
						"status": {
							"displayClock": "0:00",
							"period": 4,
							"type": {"name": "STATUS_FINAL", "state": "post", "completed": true, "shortDetail": "Final"}
						}
					}
				]
			}
		]
	}`

	var sb Scoreboard
	require.NoError(t, json.Unmarshal([]byte(payload), &sb))

	lines := FormatScoreLines(&sb)
	require.Len(t, lines, 1)
	assert.Equal(t, "AWY 3 @ HME 5 Final", lines[0])
}
