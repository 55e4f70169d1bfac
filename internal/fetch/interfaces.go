package fetch

import (
	"context"

	"github.com/ytget/tg-media-bot/internal/model"
)

// Fetcher defines the interface for the download service.
type Fetcher interface {
	Fetch(ctx context.Context, url string, kind model.MediaKind, tier model.QualityTier, dir string) (model.Artifact, error)
}
