package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mediocregopher/radix/v3"
	"go.uber.org/zap"
)

// Cache is a Redis-backed key-value cache with TTL, shared across service
// instances, with a small in-process read-through layer in front of it.
// It is never the source of truth: every read path falls through to the
// store on a miss.
type Cache struct {
	pool *radix.Pool

	mu       sync.RWMutex
	local    map[string]localEntry
	localTTL time.Duration
}

type localEntry struct {
	data      []byte
	expiresAt time.Time
}

const poolSize = 10

// localTTL is deliberately much shorter than the Redis TTL: the local
// layer only smooths hot reads between invalidations.
const localTTL = 2 * time.Second

func New(addr string) (*Cache, error) {
	pool, err := radix.NewPool("tcp", addr, poolSize)
	if err != nil {
		return nil, err
	}
	return &Cache{
		pool:     pool,
		local:    make(map[string]localEntry),
		localTTL: localTTL,
	}, nil
}

func (c *Cache) Close() error {
	return c.pool.Close()
}

// Get loads a cached value into dest. The bool reports a hit.
// radix v3 commands do not take contexts; ctx is accepted for interface
// symmetry with the rest of the codebase.
func (c *Cache) Get(_ context.Context, key string, dest any) (bool, error) {
	now := time.Now()

	c.mu.RLock()
	entry, ok := c.local[key]
	c.mu.RUnlock()
	if ok && now.Before(entry.expiresAt) {
		return true, json.Unmarshal(entry.data, dest)
	}

	var data []byte
	mn := radix.MaybeNil{Rcv: &data}
	if err := c.pool.Do(radix.Cmd(&mn, "GET", key)); err != nil {
		return false, err
	}
	if mn.Nil || len(data) == 0 {
		return false, nil
	}

	c.mu.Lock()
	c.local[key] = localEntry{data: data, expiresAt: now.Add(c.localTTL)}
	c.mu.Unlock()

	return true, json.Unmarshal(data, dest)
}

func (c *Cache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.local[key] = localEntry{data: data, expiresAt: time.Now().Add(c.localTTL)}
	c.mu.Unlock()

	return c.pool.Do(radix.Cmd(nil, "SET", key, string(data), "PX", strconv.FormatInt(ttl.Milliseconds(), 10)))
}

// Invalidate drops entity-scoped keys. A trailing '*' invalidates by
// pattern (SCAN + DEL), which is how `leaderboard:*` is handled.
func (c *Cache) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		if strings.HasSuffix(key, "*") {
			if err := c.invalidatePattern(key); err != nil {
				return err
			}
			continue
		}

		c.mu.Lock()
		delete(c.local, key)
		c.mu.Unlock()

		if err := c.pool.Do(radix.Cmd(nil, "DEL", key)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) invalidatePattern(pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")

	c.mu.Lock()
	for key := range c.local {
		if strings.HasPrefix(key, prefix) {
			delete(c.local, key)
		}
	}
	c.mu.Unlock()

	scanner := radix.NewScanner(c.pool, radix.ScanOpts{Command: "SCAN", Pattern: pattern})
	var key string
	for scanner.Next(&key) {
		if err := c.pool.Do(radix.Cmd(nil, "DEL", key)); err != nil {
			zap.L().Warn("failed to delete cache key", zap.String("key", key), zap.Error(err))
		}
	}
	return scanner.Close()
}
