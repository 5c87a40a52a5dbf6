package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	mock_interfaces "orcamentos_rtv/internal/usecase/interfaces/mocks"

	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
)

type fakeStore struct {
	values  map[string][]byte
	getErr  error
	setErr  error
	setTTLs []time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string][]byte{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = value.([]byte)
	f.setTTLs = append(f.setTTLs, ttl)
	return redis.NewStatusResult("OK", nil)
}

func TestMetadataProvider_Fetch(t *testing.T) {
	const url = "https://www.shutterstock.com/video/clip-1"
	meta := entities.MediaMetadata{URL: url, Provider: "Shutterstock", Title: "Beach"}

	t.Run("miss then hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock_interfaces.NewMockIMediaMetadataProvider(ctrl)
		next.EXPECT().Fetch(gomock.Any(), url).Return(meta, nil).Times(1)

		store := newFakeStore()
		p := NewMetadataProvider(next, store, time.Hour, nil)

		for i := 0; i < 2; i++ {
			got, err := p.Fetch(context.Background(), url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != "Beach" {
				t.Fatalf("unexpected metadata: %+v", got)
			}
		}
		if len(store.setTTLs) != 1 || store.setTTLs[0] != time.Hour {
			t.Fatalf("expected one write with the configured ttl, got %v", store.setTTLs)
		}
	})

	t.Run("redis down falls through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock_interfaces.NewMockIMediaMetadataProvider(ctrl)
		next.EXPECT().Fetch(gomock.Any(), url).Return(meta, nil)

		store := newFakeStore()
		store.getErr = errors.New("connection refused")
		store.setErr = errors.New("connection refused")
		p := NewMetadataProvider(next, store, time.Hour, nil)

		if _, err := p.Fetch(context.Background(), url); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock_interfaces.NewMockIMediaMetadataProvider(ctrl)
		next.EXPECT().Fetch(gomock.Any(), url).Return(entities.MediaMetadata{}, errors.New("boom"))

		store := newFakeStore()
		p := NewMetadataProvider(next, store, time.Hour, nil)

		if _, err := p.Fetch(context.Background(), url); err == nil {
			t.Fatalf("expected error")
		}
		if len(store.values) != 0 {
			t.Fatalf("nothing should be cached")
		}
	})

	t.Run("cached value is served as stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock_interfaces.NewMockIMediaMetadataProvider(ctrl)

		store := newFakeStore()
		raw, _ := json.Marshal(meta)
		store.values[metadataKey(url)] = raw
		p := NewMetadataProvider(next, store, time.Hour, nil)

		got, err := p.Fetch(context.Background(), url)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Provider != "Shutterstock" {
			t.Fatalf("unexpected metadata: %+v", got)
		}
	})
}
