package pipeline

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
	log "github.com/sirupsen/logrus"
)

// NotionClipper writes collected headlines into a Notion database, one
// page per headline. Clipping is an optional sink layered on top of the
// JSON file output; failures here never affect the files.
type NotionClipper struct {
	client *notionapi.Client
	dbID   notionapi.DatabaseID
}

// NewNotionClipper creates a clipper for an existing database.
func NewNotionClipper(token, databaseID string) (*NotionClipper, error) {
	if token == "" {
		return nil, fmt.Errorf("notion token is required")
	}
	if databaseID == "" {
		return nil, fmt.Errorf("notion database ID is required")
	}
	return &NotionClipper{
		client: notionapi.NewClient(notionapi.Token(token)),
		dbID:   notionapi.DatabaseID(databaseID),
	}, nil
}

// ClipHeadline creates one database page carrying the headline title
// and its source as a select option.
func (nc *NotionClipper) ClipHeadline(ctx context.Context, source, title string) error {
	_, err := nc.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: nc.dbID,
		},
		Properties: notionapi.Properties{
			"Title": notionapi.TitleProperty{
				Type: notionapi.PropertyTypeTitle,
				Title: []notionapi.RichText{
					{Text: &notionapi.Text{Content: title}},
				},
			},
			"Source": notionapi.SelectProperty{
				Type:   notionapi.PropertyTypeSelect,
				Select: notionapi.Option{Name: source},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to clip headline: %w", err)
	}
	return nil
}

// ClipAll clips every headline, continuing past individual failures,
// and returns the number clipped.
func (nc *NotionClipper) ClipAll(ctx context.Context, headlines map[string][]string) int {
	clipped := 0
	for source, titles := range headlines {
		for _, title := range titles {
			if err := nc.ClipHeadline(ctx, source, title); err != nil {
				log.WithFields(log.Fields{"source": source, "title": title}).
					WithError(err).Warn("failed to clip headline")
				continue
			}
			clipped++
		}
	}
	return clipped
}
