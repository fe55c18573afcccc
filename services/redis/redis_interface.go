package redis

import (
	redis_models "Gobang/models/redis"
	redis_utils "Gobang/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// How long a lobby snapshot survives without being refreshed
const LobbySnapshotTTL = time.Hour

// RedisClient handles Redis operations
type RedisClient struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisClient creates a new Redis client instance. Addr is either a plain
// host:port or a redis:// URL.
func NewRedisClient(Addr string, DB int) (*RedisClient, error) {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Info("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		Client: client,
		Ctx:    context.Background(),
	}, nil
}

// SaveLobbySnapshot stores the room listing
// Key format: "lobby:rooms" (+ "lobby:rooms:count")
// TTL: 1 hour
func (rc *RedisClient) SaveLobbySnapshot(ctx context.Context, snapshot *redis_models.LobbySnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling lobby snapshot: %w", err)
	}

	pipe := rc.Client.TxPipeline()
	pipe.Set(ctx, redis_utils.FormatLobbyRoomsKey(), data, LobbySnapshotTTL)
	pipe.Set(ctx, redis_utils.FormatLobbyRoomCountKey(), len(snapshot.Rooms), LobbySnapshotTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error saving lobby snapshot: %w", err)
	}
	return nil
}

// GetLobbySnapshot retrieves the last stored room listing
// Returns: LobbySnapshot struct, or redis.Nil wrapped when nothing is stored
func (rc *RedisClient) GetLobbySnapshot(ctx context.Context) (*redis_models.LobbySnapshot, error) {
	data, err := rc.Client.Get(ctx, redis_utils.FormatLobbyRoomsKey()).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting lobby snapshot: %w", err)
	}

	var snapshot redis_models.LobbySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("error unmarshaling lobby snapshot: %w", err)
	}
	return &snapshot, nil
}

// GetLobbyRoomCount returns the number of rooms in the last snapshot
func (rc *RedisClient) GetLobbyRoomCount(ctx context.Context) (int, error) {
	n, err := rc.Client.Get(ctx, redis_utils.FormatLobbyRoomCountKey()).Int()
	if err != nil {
		return 0, fmt.Errorf("error getting lobby room count: %w", err)
	}
	return n, nil
}
