package sizelimit

import (
	"context"

	"github.com/ytget/tg-media-bot/internal/model"
)

// Enforcer defines the interface for the size enforcement service.
type Enforcer interface {
	Enforce(ctx context.Context, path string, maxBytes int64, kind model.MediaKind) (string, error)
}
