package pipeline

import (
	"flag"
	"time"
)

// Defaults for the collection knobs. The flag values exist so tests and
// deployments can substitute endpoints and limits; the defaults
// reproduce the fixed production behavior.
const (
	DefaultTimeoutMs    = 15000
	DefaultMaxHeadlines = 50
	DefaultOutDir       = "data"
	DefaultUserAgent    = "Mozilla/5.0 (compatible; sports-relay/1.0; +https://example.invalid)"
)

// Config holds the full pipeline configuration, including the source
// tables. The tables travel on the Config rather than as package
// globals so a test run can point every source at a local server.
type Config struct {
	Fetch  FetchConfig
	Output OutputConfig
	Notion NotionConfig

	Feeds   []FeedSource
	Leagues []LeagueSource
}

// FetchConfig controls the timeout-wrapped HTTP fetch.
type FetchConfig struct {
	// TimeoutMs is the per-request deadline in milliseconds.
	TimeoutMs int

	// UserAgent is sent on every request.
	UserAgent string
}

// Timeout returns the per-request deadline as a duration.
func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// OutputConfig controls where and how result files are written.
type OutputConfig struct {
	// Dir is the output directory, created if absent.
	Dir string

	// MaxHeadlines caps each news file at save time (0 = no cap).
	MaxHeadlines int
}

// NotionConfig controls the optional Notion clipping sink.
type NotionConfig struct {
	// Clip enables clipping collected headlines to a Notion database.
	Clip bool

	// DatabaseID is the target database. Falls back to the
	// NOTION_DATABASE_ID environment variable when empty.
	DatabaseID string
}

// DefaultFeeds returns the fixed news feed table.
func DefaultFeeds() []FeedSource {
	return []FeedSource{
		{Name: "espn", URL: "https://www.espn.com/espn/rss/news"},
		{Name: "bbc", URL: "https://feeds.bbci.co.uk/sport/rss.xml"},
		{Name: "yahoo", URL: "https://sports.yahoo.com/rss/"},
	}
}

// DefaultLeagues returns the fixed league table. Each league maps to
// the site API scoreboard plus the rendered page used as a fallback.
func DefaultLeagues() []LeagueSource {
	return []LeagueSource{
		{
			League:    "nfl",
			APIURL:    "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard",
			ScrapeURL: "https://www.espn.com/nfl/scoreboard",
		},
		{
			League:    "nba",
			APIURL:    "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/scoreboard",
			ScrapeURL: "https://www.espn.com/nba/scoreboard",
		},
		{
			League:    "nhl",
			APIURL:    "https://site.api.espn.com/apis/site/v2/sports/hockey/nhl/scoreboard",
			ScrapeURL: "https://www.espn.com/nhl/scoreboard",
		},
		{
			League:    "mlb",
			APIURL:    "https://site.api.espn.com/apis/site/v2/sports/baseball/mlb/scoreboard",
			ScrapeURL: "https://www.espn.com/mlb/scoreboard",
		},
	}
}

// DefaultConfig returns the production configuration. The Lambda entry
// and tests start from this and override what they need.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			TimeoutMs: DefaultTimeoutMs,
			UserAgent: DefaultUserAgent,
		},
		Output: OutputConfig{
			Dir:          DefaultOutDir,
			MaxHeadlines: DefaultMaxHeadlines,
		},
		Feeds:   DefaultFeeds(),
		Leagues: DefaultLeagues(),
	}
}

// ParseFlags parses the CLI flags and returns the run configuration.
func ParseFlags() *Config {
	cfg := DefaultConfig()

	flag.StringVar(&cfg.Output.Dir, "outDir", DefaultOutDir, "directory for output JSON files (created if absent)")
	flag.IntVar(&cfg.Output.MaxHeadlines, "maxHeadlines", DefaultMaxHeadlines, "max headlines saved per feed (0 = no cap)")
	flag.IntVar(&cfg.Fetch.TimeoutMs, "timeoutMs", DefaultTimeoutMs, "per-request fetch deadline in milliseconds")
	flag.StringVar(&cfg.Fetch.UserAgent, "userAgent", DefaultUserAgent, "User-Agent header for all requests")

	flag.BoolVar(&cfg.Notion.Clip, "notionClip", false, "clip collected headlines to a Notion database")
	flag.StringVar(&cfg.Notion.DatabaseID, "notionDatabaseID", "", "existing Notion database ID (default: NOTION_DATABASE_ID env)")

	flag.Parse()
	return cfg
}
