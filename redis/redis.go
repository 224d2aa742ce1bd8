package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the cache client. The cache is optional; when
// REDIS_ADDR is unset or the server is unreachable the client stays nil
// and callers fall through to the database.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, content feed cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis: %v, cache disabled", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// GetCached returns the cached JSON payload for key, if any.
func GetCached(key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// SetCached stores a JSON payload under key with a TTL.
func SetCached(key string, payload []byte, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, payload, ttl)
}

// Invalidate drops every cached key with the given prefix.
func Invalidate(prefix string) {
	if Client == nil {
		return
	}
	keys, err := Client.Keys(Ctx, prefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	Client.Del(Ctx, keys...)
}
