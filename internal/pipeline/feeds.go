package pipeline

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// ExtractFeedTitles parses a raw RSS 2.0 or Atom document and returns
// the non-empty item titles in document order. gofeed normalizes both
// dialects (rss > channel > item and feed > entry) into one item list.
// No cap is applied here; truncation happens at save time.
func ExtractFeedTitles(raw []byte) ([]string, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("feed parse failed: %w", err)
	}

	titles := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// CollectFeedTitles fetches one feed and extracts its headlines.
func CollectFeedTitles(f *Fetcher, src FeedSource) ([]string, error) {
	body, err := f.GetBody(src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s feed: %w", src.Name, err)
	}
	return ExtractFeedTitles(body)
}
