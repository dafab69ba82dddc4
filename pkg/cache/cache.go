package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	redisclient "parkpulse-analytics/redis"
)

// CacheManager layers a short-TTL local map over redis. Controllers use
// it for composed dashboard snapshots; the aggregation services
// themselves never cache.
type CacheManager struct {
	redis   *redis.Client
	local   *localCache
	enabled bool
}

type localCache struct {
	data map[string]*cacheItem
	mu   sync.RWMutex
}

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

func NewCacheManager(redisClient *redis.Client) *CacheManager {
	cm := &CacheManager{
		redis:   redisClient,
		local:   &localCache{data: make(map[string]*cacheItem)},
		enabled: true,
	}
	go cm.cleanupLocalCache()
	return cm
}

// Get tries the local map first, then redis.
func (cm *CacheManager) Get(ctx context.Context, key string, dest interface{}) error {
	if !cm.enabled {
		return fmt.Errorf("cache disabled")
	}

	if value, found := cm.getFromLocal(key); found {
		return json.Unmarshal(value, dest)
	}

	if cm.redis != nil {
		data, err := cm.redis.Get(ctx, key).Bytes()
		if err == nil {
			cm.setToLocal(key, data, 5*time.Second)
			return json.Unmarshal(data, dest)
		}
	}

	return fmt.Errorf("cache miss")
}

// Set writes to both tiers. The redis write is asynchronous; a stale
// snapshot is preferable to blocking the response on cache IO.
func (cm *CacheManager) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !cm.enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cm.setToLocal(key, data, ttl)

	if cm.redis != nil {
		go func() {
			cm.redis.Set(context.Background(), key, data, ttl)
		}()
	}
	return nil
}

func (cm *CacheManager) Delete(ctx context.Context, key string) error {
	cm.local.mu.Lock()
	delete(cm.local.data, key)
	cm.local.mu.Unlock()

	if cm.redis != nil {
		cm.redis.Del(ctx, key)
	}
	return nil
}

func (cm *CacheManager) getFromLocal(key string) ([]byte, bool) {
	cm.local.mu.RLock()
	defer cm.local.mu.RUnlock()

	item, exists := cm.local.data[key]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

func (cm *CacheManager) setToLocal(key string, value []byte, ttl time.Duration) {
	cm.local.mu.Lock()
	defer cm.local.mu.Unlock()
	cm.local.data[key] = &cacheItem{value: value, expiresAt: time.Now().Add(ttl)}
}

func (cm *CacheManager) cleanupLocalCache() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cm.local.mu.Lock()
		now := time.Now()
		for key, item := range cm.local.data {
			if now.After(item.expiresAt) {
				delete(cm.local.data, key)
			}
		}
		cm.local.mu.Unlock()
	}
}

// GetStats feeds the health endpoint.
func (cm *CacheManager) GetStats() map[string]interface{} {
	cm.local.mu.RLock()
	localItems := len(cm.local.data)
	cm.local.mu.RUnlock()

	return map[string]interface{}{
		"enabled":         cm.enabled,
		"local_items":     localItems,
		"redis_connected": cm.redis != nil,
	}
}

// GlobalCache is the shared instance.
var GlobalCache *CacheManager

// InitCache wires the global cache to the shared redis client; a nil
// client leaves the local tier working on its own.
func InitCache() {
	GlobalCache = NewCacheManager(redisclient.GetClient())
}
