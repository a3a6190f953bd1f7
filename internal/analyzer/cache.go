package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-engine/internal/config"
	"resume-engine/internal/logging"
	"resume-engine/pkg/models"
	"resume-engine/pkg/utils"
)

// ResultCache is a read-through cache for gap analysis results. Keys are
// derived from content hashes of both inputs, so any change to either side is
// a different key and stale entries can never be served. Redis is the backing
// store; when it is unreachable the cache degrades to an in-process map
// rather than failing analyses.
type ResultCache struct {
	client  *redis.Client
	ttl     time.Duration
	enabled bool
	logger  logging.Logger

	mu    sync.RWMutex
	local map[string]localEntry
}

type localEntry struct {
	result    *models.GapAnalysisResult
	expiresAt time.Time
}

// NewResultCache creates the cache from configuration. A nil return from
// redis.ParseURL is not fatal; the local map still works.
func NewResultCache(cfg *config.Config) *ResultCache {
	cache := &ResultCache{
		ttl:     cfg.Cache.TTL,
		enabled: cfg.Cache.Enabled,
		logger:  logging.GetGlobalLogger(),
		local:   make(map[string]localEntry),
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	cache.client = redis.NewClient(opts)
	return cache
}

// Key derives the cache key for a resume and requirements pair
func (c *ResultCache) Key(resume *models.ParsedResumeData, req *models.JobRequirements) string {
	return fmt.Sprintf("gap:%s:%s", utils.ContentHash(resume), utils.ContentHash(req))
}

// Get returns the cached result for key, or nil on a miss. Redis errors are
// logged and treated as misses.
func (c *ResultCache) Get(ctx context.Context, key string) *models.GapAnalysisResult {
	if !c.enabled {
		return nil
	}

	if data, err := c.client.Get(ctx, key).Result(); err == nil {
		var result models.GapAnalysisResult
		if err := json.Unmarshal([]byte(data), &result); err == nil {
			return &result
		}
	} else if err != redis.Nil {
		c.logger.Debug("Cache read fell back to local store", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	c.mu.RLock()
	entry, ok := c.local[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.result
	}
	return nil
}

// Put stores a result under key in both stores. Failures are logged, never
// returned; caching is best-effort.
func (c *ResultCache) Put(ctx context.Context, key string, result *models.GapAnalysisResult) {
	if !c.enabled {
		return
	}

	if data, err := json.Marshal(result); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Debug("Cache write fell back to local store", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	c.mu.Lock()
	c.local[key] = localEntry{result: result, expiresAt: time.Now().Add(c.ttl)}
	c.pruneLocked()
	c.mu.Unlock()
}

// CacheStats is the exported view of cache state
type CacheStats struct {
	Enabled      bool `json:"enabled"`
	RedisHealthy bool `json:"redis_healthy"`
	LocalEntries int  `json:"local_entries"`
}

// Stats returns a snapshot of cache state
func (c *ResultCache) Stats(ctx context.Context) CacheStats {
	c.mu.RLock()
	entries := len(c.local)
	c.mu.RUnlock()

	return CacheStats{
		Enabled:      c.enabled,
		RedisHealthy: c.Healthy(ctx),
		LocalEntries: entries,
	}
}

// Clear drops every cached analysis from both stores. Redis keys are removed
// by prefix scan so unrelated keys in a shared instance survive; scan errors
// are logged and the local store is cleared regardless.
func (c *ResultCache) Clear(ctx context.Context) int {
	cleared := 0

	iter := c.client.Scan(ctx, 0, "gap:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err == nil {
			cleared++
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Debug("Cache clear skipped Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.mu.Lock()
	cleared += len(c.local)
	c.local = make(map[string]localEntry)
	c.mu.Unlock()

	return cleared
}

// Healthy reports whether the Redis side of the cache is reachable
func (c *ResultCache) Healthy(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

// Close releases the Redis connection
func (c *ResultCache) Close() error {
	return c.client.Close()
}

// pruneLocked drops expired local entries. Called with the write lock held.
func (c *ResultCache) pruneLocked() {
	if len(c.local) < 256 {
		return
	}
	now := time.Now()
	for key, entry := range c.local {
		if now.After(entry.expiresAt) {
			delete(c.local, key)
		}
	}
}
