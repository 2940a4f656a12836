// Package pipeline implements a one-shot collection pass over sports
// news feeds and league scoreboards. Each run fetches every configured
// source, formats the results as plain display strings, and writes one
// JSON array file per source. Sources fail independently: a dead feed
// or league degrades to an empty array in its own file and never blocks
// the rest of the run.
package pipeline

// FeedSource identifies one news feed. Name is the short identifier
// used to derive the output filename (news_<name>.json).
type FeedSource struct {
	Name string
	URL  string
}

// LeagueSource holds the two acquisition endpoints for one league: the
// site API scoreboard (authoritative) and the rendered scoreboard page
// used as a scrape fallback. League derives the output filename
// (scores_<league>.json).
type LeagueSource struct {
	League    string
	APIURL    string
	ScrapeURL string
}

// ESPN site API scoreboard schema. Only the fields the score formatter
// reads are mapped; the rest of the payload is ignored on decode.
type Scoreboard struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	ID          string       `json:"id"`
	Competitors []Competitor `json:"competitors"`
	Status      Status       `json:"status"`
}

type Competitor struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     Team   `json:"team"`
}

type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type Status struct {
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

type StatusType struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	ShortDetail string `json:"shortDetail"`
}
