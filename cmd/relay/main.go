package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"sports-relay/internal/pipeline"
)

func main() {
	log.SetOutput(os.Stderr)

	// Optional; plain environment variables win when no .env is present.
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not loaded, using environment variables only")
	}

	cfg := pipeline.ParseFlags()

	res, err := pipeline.Run(cfg, pipeline.NewGoqueryScraper())
	if err != nil {
		log.WithError(err).Fatal("pipeline run failed")
	}

	if cfg.Notion.Clip {
		dbID := cfg.Notion.DatabaseID
		if dbID == "" {
			dbID = os.Getenv("NOTION_DATABASE_ID")
		}
		clipper, err := pipeline.NewNotionClipper(os.Getenv("NOTION_TOKEN"), dbID)
		if err != nil {
			log.WithError(err).Fatal("creating Notion clipper")
		}
		clipped := clipper.ClipAll(context.Background(), res.Headlines)
		log.WithField("clipped", clipped).Info("headlines clipped to Notion")
	}

	log.Info("Finished updating sports data.")
}
