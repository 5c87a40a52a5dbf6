package interfaces

import (
	"context"
	"errors"

	"orcamentos_rtv/internal/domain/entities"
)

// ErrMetadataUnavailable is returned when the page cannot be fetched.
var ErrMetadataUnavailable = errors.New("media page could not be fetched")

// IMediaMetadataProvider reads descriptive data from a stock-media page.
type IMediaMetadataProvider interface {
	Fetch(ctx context.Context, rawURL string) (entities.MediaMetadata, error)
}
