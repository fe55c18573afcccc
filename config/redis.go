package config

import (
	"Gobang/services/redis"

	log "github.com/sirupsen/logrus"
)

// Connect to Redis
func Connect_redis(redisUri string) (*redis.RedisClient, error) {
	log.Infof("[REDIS] Connecting to %s", redisUri)
	redisClient, err := redis.InitRedis(redisUri, 0)
	if err != nil {
		log.Errorf("[REDIS-ERROR] Error connecting to Redis: %v", err)
		return nil, err
	}
	log.Info("[REDIS] Redis connection established")
	return redisClient, nil
}
