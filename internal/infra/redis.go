package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client that backs the public catalog cache
// (producto:slug:* entries) and the health probe.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Fail startup early rather than serving an uncacheable catalog.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
