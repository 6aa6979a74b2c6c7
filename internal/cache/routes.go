// Package cache holds an optional Redis-backed cache for optimize-route
// responses. The route core stays cache-free; this layer sits at the API
// edge and a nil *RouteCache is a no-op.
package cache

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"routenav/internal/model"
)

type RouteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRouteCache connects to Redis at url. TTL <= 0 defaults to 5 minutes.
func NewRouteCache(url string, ttl time.Duration) (*RouteCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RouteCache{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

// Key canonicalizes a request so equivalent stop orderings share an entry.
// Stop order does not affect single-pair searches, and the tour algorithms
// are seeded per request, so sorting is the stable choice.
func Key(start, end string, stops []string, algorithm string, hour, day int, weather string) string {
	sorted := append([]string(nil), stops...)
	sort.Strings(sorted)
	parts := []string{
		"route", start, end, strings.Join(sorted, ","),
		algorithm, strconv.Itoa(hour), strconv.Itoa(day), weather,
	}
	return strings.Join(parts, "|")
}

// Get returns the cached response for key, or false on miss or any Redis
// error. Misses and errors are indistinguishable to the caller on purpose.
func (c *RouteCache) Get(ctx context.Context, key string) (model.OptimizeResponse, bool) {
	if c == nil {
		return model.OptimizeResponse{}, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return model.OptimizeResponse{}, false
	}
	var resp model.OptimizeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return model.OptimizeResponse{}, false
	}
	return resp, true
}

// Set stores a response best-effort; failures are dropped.
func (c *RouteCache) Set(ctx context.Context, key string, resp model.OptimizeResponse) {
	if c == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, data, c.ttl).Err()
}
