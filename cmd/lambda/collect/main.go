// Lambda: collect-sports
//
// Runs one collection pass over all feeds and leagues and writes the
// JSON output files, typically to a mounted volume. Environment
// variables:
//
//   - OUT_DIR:            output directory (default: data)
//   - MAX_HEADLINES:      max headlines saved per feed (default: 50)
//   - FETCH_TIMEOUT_MS:   per-request deadline (default: 15000)
//   - NOTION_TOKEN:       enable Notion clipping (optional)
//   - NOTION_DATABASE_ID: target Notion database (required with token)
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"sports-relay/internal/pipeline"
)

// Response is the Lambda invocation result.
type Response struct {
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Feeds      map[string]int `json:"feeds"`
	Leagues    map[string]int `json:"leagues"`
	Failures   []string       `json:"failures,omitempty"`
	Clipped    int            `json:"clipped,omitempty"`
}

// Handler runs one collection pass per invocation.
func Handler(ctx context.Context, event interface{}) (Response, error) {
	log.Info("Starting collect-sports Lambda...")

	cfg := loadConfig()

	res, err := pipeline.Run(cfg, pipeline.NewGoqueryScraper())
	if err != nil {
		log.WithError(err).Error("pipeline run failed")
		return Response{StatusCode: 500, Message: err.Error()}, err
	}

	clipped := 0
	if token := os.Getenv("NOTION_TOKEN"); token != "" {
		clipper, err := pipeline.NewNotionClipper(token, os.Getenv("NOTION_DATABASE_ID"))
		if err != nil {
			log.WithError(err).Warn("Notion clipping disabled")
		} else {
			clipped = clipper.ClipAll(ctx, res.Headlines)
			log.WithField("clipped", clipped).Info("headlines clipped to Notion")
		}
	}

	return Response{
		StatusCode: 200,
		Message:    fmt.Sprintf("collected %d feeds and %d leagues", len(res.FeedCounts), len(res.ScoreCounts)),
		Feeds:      res.FeedCounts,
		Leagues:    res.ScoreCounts,
		Failures:   res.Failures,
		Clipped:    clipped,
	}, nil
}

// loadConfig builds the run configuration from environment variables,
// keeping the production defaults for anything unset.
func loadConfig() *pipeline.Config {
	cfg := pipeline.DefaultConfig()

	if dir := os.Getenv("OUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if mh := os.Getenv("MAX_HEADLINES"); mh != "" {
		if val, err := strconv.Atoi(mh); err == nil && val >= 0 {
			cfg.Output.MaxHeadlines = val
		}
	}
	if tm := os.Getenv("FETCH_TIMEOUT_MS"); tm != "" {
		if val, err := strconv.Atoi(tm); err == nil && val > 0 {
			cfg.Fetch.TimeoutMs = val
		}
	}

	return cfg
}

func main() {
	lambda.Start(Handler)
}
