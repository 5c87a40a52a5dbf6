package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"
)

var ErrInvalidMediaURL = errors.New("invalid media url")

// IMetadataUseCase reads stock-media pages for the image budget editor.
type IMetadataUseCase interface {
	Fetch(ctx context.Context, rawURL string) (entities.MediaMetadata, error)
}

type MetadataUseCase struct {
	provider interfaces.IMediaMetadataProvider
}

var _ IMetadataUseCase = (*MetadataUseCase)(nil)

func NewMetadataUseCase(provider interfaces.IMediaMetadataProvider) *MetadataUseCase {
	return &MetadataUseCase{provider: provider}
}

func (u *MetadataUseCase) Fetch(ctx context.Context, rawURL string) (entities.MediaMetadata, error) {
	rawURL = strings.TrimSpace(rawURL)
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return entities.MediaMetadata{}, ErrInvalidMediaURL
	}
	return u.provider.Fetch(ctx, parsed.String())
}
