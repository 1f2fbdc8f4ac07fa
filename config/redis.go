package config

import (
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the admin rate limiter. The storefront never touches it.
var RedisClient *redis.Client

func ConnectRedis() {
	redisURL := getEnv("REDIS_URL", "")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
		log.Println("⚠️ REDIS_URL not set, using local Redis")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ Invalid REDIS_URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis ping failed: %v", err)
	}
	fmt.Println("✅ Redis connected")
}
