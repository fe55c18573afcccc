package redis

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// InitRedis initializes the Redis connection and checks it answers
func InitRedis(Addr string, DB int) (*RedisClient, error) {
	rc, err := NewRedisClient(Addr, DB)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := rc.Client.Ping(rc.Ctx).Err(); err != nil {
		rc.Client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Info("Successfully connected to Redis")
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if err := rc.Client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
