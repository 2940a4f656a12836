package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Result summarizes one pipeline run.
type Result struct {
	// Headlines holds the saved titles per feed name, post-truncation.
	Headlines map[string][]string

	// FeedCounts and ScoreCounts record the number of lines written per
	// output file.
	FeedCounts  map[string]int
	ScoreCounts map[string]int

	// Failures lists the sources that degraded to an empty file.
	Failures []string
}

// Run executes one collection pass. Feeds are processed in order, one
// settling before the next starts; leagues are fetched concurrently and
// saved once all of them have resolved. Every configured source always
// ends up with an output file — a failed source gets an empty array in
// its file and an entry in Result.Failures.
//
// Run returns an error only when the output directory or a file cannot
// be written; source-level failures never propagate.
func Run(cfg *Config, scraper ScoreScraper) (*Result, error) {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	fetcher := NewFetcher(cfg.Fetch)
	res := &Result{
		Headlines:   make(map[string][]string, len(cfg.Feeds)),
		FeedCounts:  make(map[string]int, len(cfg.Feeds)),
		ScoreCounts: make(map[string]int, len(cfg.Leagues)),
	}

	for _, src := range cfg.Feeds {
		titles, err := CollectFeedTitles(fetcher, src)
		if err != nil {
			log.WithField("feed", src.Name).WithError(err).Warn("feed collection failed, saving empty list")
			res.Failures = append(res.Failures, fmt.Sprintf("feed %s: %v", src.Name, err))
			titles = nil
		}

		path := filepath.Join(cfg.Output.Dir, "news_"+src.Name+".json")
		n, err := WriteStringArray(path, titles, cfg.Output.MaxHeadlines)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		res.FeedCounts[src.Name] = n
		res.Headlines[src.Name] = titles[:n]
	}

	// League fetches are independent: distinct files, no shared state.
	lf := &LeagueFetcher{Fetcher: fetcher, Scraper: scraper}
	scores := make([][]string, len(cfg.Leagues))
	var wg sync.WaitGroup
	for i, src := range cfg.Leagues {
		wg.Add(1)
		go func(i int, src LeagueSource) {
			defer wg.Done()
			scores[i] = lf.FetchScores(src)
		}(i, src)
	}
	wg.Wait()

	for i, src := range cfg.Leagues {
		if len(scores[i]) == 0 {
			res.Failures = append(res.Failures, fmt.Sprintf("league %s: no scores", src.League))
		}

		path := filepath.Join(cfg.Output.Dir, "scores_"+src.League+".json")
		n, err := WriteStringArray(path, scores[i], 0)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		res.ScoreCounts[src.League] = n
	}

	log.WithFields(log.Fields{
		"feeds":    res.FeedCounts,
		"leagues":  res.ScoreCounts,
		"failures": len(res.Failures),
	}).Info("collection pass complete")

	return res, nil
}
