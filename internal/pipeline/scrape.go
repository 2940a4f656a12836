package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ScoreScraper is the optional HTML-scraping capability behind the
// scoreboard fallback. A nil ScoreScraper means the capability is
// absent and the fallback path yields no scores.
type ScoreScraper interface {
	ScrapeScores(html []byte) ([]string, error)
}

// ScoreboardSelectors names the class-based selectors used to pull
// score cells out of the rendered scoreboard page. The live site's
// markup changes without notice, so each slot lists every variant seen
// so far; updating a set does not touch any calling code.
type ScoreboardSelectors struct {
	Cells  []string
	Teams  []string
	Scores []string
	Status []string
}

// DefaultScoreboardSelectors matches the score-cell variants the site
// currently serves.
func DefaultScoreboardSelectors() ScoreboardSelectors {
	return ScoreboardSelectors{
		Cells:  []string{"div.ScoreboardScoreCell", "section.ScoreCell"},
		Teams:  []string{".ScoreCell__TeamName", ".ScoreboardScoreCell__TeamName", ".team-name"},
		Scores: []string{".ScoreCell__Score", ".ScoreboardScoreCell__Value", ".total"},
		Status: []string{".ScoreCell__Time", ".ScoreboardScoreCell__Time", ".game-status"},
	}
}

// GoqueryScraper extracts score lines from a rendered scoreboard page.
// This path is advisory only: the markup it matches is unstable, and
// callers treat an empty result as a normal outcome.
type GoqueryScraper struct {
	Selectors ScoreboardSelectors
}

// NewGoqueryScraper returns a scraper using the default selector set.
func NewGoqueryScraper() *GoqueryScraper {
	return &GoqueryScraper{Selectors: DefaultScoreboardSelectors()}
}

// ScrapeScores pulls one formatted line per score cell that carries at
// least two team names and two score values. The first matched
// status/time element supplies the status text, empty when absent.
// Lines follow the cell's own order: first team, first score, "@",
// second team, second score, status.
func (s *GoqueryScraper) ScrapeScores(html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML failed: %w", err)
	}

	var lines []string
	doc.Find(strings.Join(s.Selectors.Cells, ", ")).Each(func(_ int, cell *goquery.Selection) {
		teams := selectTexts(cell, s.Selectors.Teams)
		scores := selectTexts(cell, s.Selectors.Scores)
		if len(teams) < 2 || len(scores) < 2 {
			return
		}

		status := strings.TrimSpace(cell.Find(strings.Join(s.Selectors.Status, ", ")).First().Text())

		lines = append(lines, fmt.Sprintf("%s %s @ %s %s %s",
			teams[0], scores[0], teams[1], scores[1], status))
	})
	return lines, nil
}

// selectTexts gathers trimmed non-empty text from every element inside
// cell matching any of the selector variants, in document order.
func selectTexts(cell *goquery.Selection, selectors []string) []string {
	var out []string
	cell.Find(strings.Join(selectors, ", ")).Each(func(_ int, el *goquery.Selection) {
		if t := strings.TrimSpace(el.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}
