package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"api/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// Ranking responses are cached; finalizing a competition invalidates
// every cached year
const rankingKeyPrefix = "rankings:annual:"

// InitRedis connects the redis client used for ranking caches. The API
// still works without redis, rankings are just recomputed per query
func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", config.RedisHost, config.RedisPort),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Println("redis unavailable, ranking cache disabled: ", err)
		Redis = nil
	}
}

// GetCachedRankings returns the cached ranking payload for a year
func GetCachedRankings(ctx context.Context, year int) (string, bool) {
	if Redis == nil {
		return "", false
	}
	payload, err := Redis.Get(ctx, fmt.Sprintf("%s%d", rankingKeyPrefix, year)).Result()
	if err != nil {
		return "", false
	}
	return payload, true
}

// SetCachedRankings stores a ranking payload for a year with a TTL
func SetCachedRankings(ctx context.Context, year int, payload string) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(ctx, fmt.Sprintf("%s%d", rankingKeyPrefix, year), payload, 10*time.Minute).Err(); err != nil {
		log.Println("failed to cache rankings: ", err)
	}
}

// InvalidateRankings drops every cached ranking year. Called when a
// competition is finalized
func InvalidateRankings(ctx context.Context) {
	if Redis == nil {
		return
	}
	iter := Redis.Scan(ctx, 0, rankingKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		Redis.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Println("failed to invalidate ranking cache: ", err)
	}
}
