package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const metadataKeyPrefix = "media-metadata:"

type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// MetadataProvider caches successful lookups of the wrapped provider. Redis
// failures are logged and fall through to the provider.
type MetadataProvider struct {
	next  interfaces.IMediaMetadataProvider
	store kvStore
	ttl   time.Duration
	log   *logger.Logger
}

var _ interfaces.IMediaMetadataProvider = (*MetadataProvider)(nil)

func NewMetadataProvider(next interfaces.IMediaMetadataProvider, store kvStore, ttl time.Duration, log *logger.Logger) *MetadataProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &MetadataProvider{next: next, store: store, ttl: ttl, log: log}
}

func (p *MetadataProvider) Fetch(ctx context.Context, rawURL string) (entities.MediaMetadata, error) {
	key := metadataKey(rawURL)

	raw, err := p.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var meta entities.MediaMetadata
		if jsonErr := json.Unmarshal(raw, &meta); jsonErr == nil {
			return meta, nil
		}
	case !errors.Is(err, redis.Nil):
		p.log.Warn(ctx, "metadata cache read failed", map[string]any{"error": err.Error()})
	}

	meta, err := p.next.Fetch(ctx, rawURL)
	if err != nil {
		return entities.MediaMetadata{}, err
	}

	if encoded, err := json.Marshal(meta); err == nil {
		if err := p.store.Set(ctx, key, encoded, p.ttl).Err(); err != nil {
			p.log.Warn(ctx, "metadata cache write failed", map[string]any{"error": err.Error()})
		}
	}
	return meta, nil
}

func metadataKey(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return metadataKeyPrefix + hex.EncodeToString(sum[:])
}
