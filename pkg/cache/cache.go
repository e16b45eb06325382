// Package cache provides a Redis-backed JSON cache.
//
// Values are marshalled to JSON on Set and unmarshalled on Get, so any
// serialisable type can be cached. A nil client (Redis unavailable or not
// configured) degrades to a no-op: Get always misses, Set does nothing.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/kirana/config"
)

var RDB *redis.Client
var Ctx = context.Background()

func Connect() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})
}

// Get reads key into dest. Returns true on a hit.
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}

	return true
}

// Set stores value under key with the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return RDB.Set(Ctx, key, data, ttl).Err()
}

// Forget removes key from the cache. Used to invalidate cached catalog
// listings after a write.
func Forget(keys ...string) {
	if RDB == nil || len(keys) == 0 {
		return
	}
	RDB.Del(Ctx, keys...)
}

// Store adapts the package functions to an interface value, so the query
// builder can take the cache as a dependency without importing this package.
type Store struct{}

func (Store) Get(key string, dest interface{}) bool { return Get(key, dest) }

func (Store) Set(key string, value interface{}, ttl time.Duration) error {
	return Set(key, value, ttl)
}

func (Store) Forget(keys ...string) { Forget(keys...) }
