package cache

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

type MemcachedCache struct {
	mc *memcache.Client
}

func NewMemcached(server string) *MemcachedCache {
	return &MemcachedCache{mc: memcache.New(server)}
}

func (c *MemcachedCache) Get(_ context.Context, key string) ([]byte, bool) {
	item, err := c.mc.Get(key)
	if err != nil {
		return nil, false
	}
	return item.Value, true
}

func (c *MemcachedCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.mc.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl / time.Second),
	})
}
