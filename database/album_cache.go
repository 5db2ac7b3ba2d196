package database

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"beatbazaar/models"
	"beatbazaar/repositories"
)

// The redis key for the cached album list.
const albumsCacheKey = "cache:all_albums"

// How often the cache is rebuilt from the primary database.
const albumCacheUpdateInterval = 10 * time.Second

// AlbumCache keeps the full album list in redis so the public catalog
// listing doesn't hit postgres on every request. A background refresher
// keeps it current; no TTL is set because the refresher owns the key.
type AlbumCache struct {
	rdb    *redis.Client
	albums repositories.AlbumStore
	log    *slog.Logger
}

func NewAlbumCache(rdb *redis.Client, albums repositories.AlbumStore, log *slog.Logger) *AlbumCache {
	return &AlbumCache{rdb: rdb, albums: albums, log: log}
}

// Get returns the cached album list, or ok=false when the cache is cold or
// unreadable (callers fall back to the store).
func (c *AlbumCache) Get(ctx context.Context) ([]models.Album, bool) {
	data, err := c.rdb.Get(ctx, albumsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var albums []models.Album
	if err := json.Unmarshal(data, &albums); err != nil {
		c.log.Error("album cache holds invalid JSON", "err", err)
		return nil, false
	}
	return albums, true
}

// Refresh rebuilds the cached list from the primary database once.
func (c *AlbumCache) Refresh(ctx context.Context) error {
	albums, err := c.albums.ListAll(ctx)
	if err != nil {
		return err
	}

	// Cache an empty JSON array rather than nothing when the catalog is
	// empty, so Get still reports a warm cache.
	data := []byte("[]")
	if len(albums) > 0 {
		data, err = json.Marshal(albums)
		if err != nil {
			return err
		}
	}

	return c.rdb.Set(ctx, albumsCacheKey, data, 0).Err()
}

// Run refreshes the cache on a ticker until ctx is cancelled. Meant to run
// in its own goroutine.
func (c *AlbumCache) Run(ctx context.Context) {
	ticker := time.NewTicker(albumCacheUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.log.Error("album cache refresh failed", "err", err)
			}
		}
	}
}
