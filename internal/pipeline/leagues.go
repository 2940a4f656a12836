package pipeline

import (
	log "github.com/sirupsen/logrus"
)

// LeagueFetcher resolves one league's scores through the acquisition
// chain: site API first, then the HTML scrape when the API errors or
// parses to zero events. Each stage gets exactly one attempt.
type LeagueFetcher struct {
	Fetcher *Fetcher

	// Scraper may be nil, in which case the fallback yields nothing.
	Scraper ScoreScraper
}

// FetchScores returns the league's formatted score lines. It never
// returns an error: every failure mode along the chain degrades to an
// empty list so a bad league cannot take down the run.
func (lf *LeagueFetcher) FetchScores(src LeagueSource) []string {
	var sb Scoreboard
	if err := lf.Fetcher.GetJSON(src.APIURL, &sb); err != nil {
		log.WithFields(log.Fields{"league": src.League, "url": src.APIURL}).
			WithError(err).Warn("scoreboard API failed, trying HTML fallback")
		return lf.scrape(src)
	}

	lines := FormatScoreLines(&sb)
	if len(lines) > 0 {
		return lines
	}

	// The API occasionally serves an empty scoreboard during pre-game
	// windows; the rendered page is a degraded but available substitute.
	log.WithField("league", src.League).Info("scoreboard API returned no games, trying HTML fallback")
	return lf.scrape(src)
}

func (lf *LeagueFetcher) scrape(src LeagueSource) []string {
	if lf.Scraper == nil {
		log.WithField("league", src.League).Info("HTML scraper unavailable, no scores for this league")
		return nil
	}

	body, err := lf.Fetcher.GetBody(src.ScrapeURL)
	if err != nil {
		log.WithFields(log.Fields{"league": src.League, "url": src.ScrapeURL}).
			WithError(err).Warn("scoreboard page fetch failed, no scores for this league")
		return nil
	}

	lines, err := lf.Scraper.ScrapeScores(body)
	if err != nil {
		log.WithField("league", src.League).
			WithError(err).Warn("scoreboard page scrape failed, no scores for this league")
		return nil
	}
	return lines
}
