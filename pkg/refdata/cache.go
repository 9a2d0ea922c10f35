package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

const listCacheExpiration = 90 * time.Second

// CachedStore caches the ListActive projections, which back the
// read-heavy master-data endpoint. Point lookups always hit the
// database so the generation path never prices against stale records.
type CachedStore struct {
	Store

	listCache *cache.Cache[string]
}

func NewCachedStore(underlying Store, redisClient *redis.Client) *CachedStore {
	redisStore := redisstore.NewRedis(redisClient)

	return &CachedStore{
		Store:     underlying,
		listCache: cache.New[string](redisStore),
	}
}

func (s *CachedStore) ListActive(ctx context.Context, kind Kind) ([]Record, error) {
	key := fmt.Sprintf("farebox/refdata/listactive/%s", kind)

	if cachedValue, err := s.listCache.Get(ctx, key); err == nil && cachedValue != "" {
		var records []Record
		if err := json.Unmarshal([]byte(cachedValue), &records); err == nil {
			return records, nil
		}
	}

	records, err := s.Store.ListActive(ctx, kind)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(records); err == nil {
		s.listCache.Set(ctx, key, string(encoded), store.WithExpiration(listCacheExpiration))
	}

	return records, nil
}
