package redis

import (
	"Gobang/models"
	redis_models "Gobang/models/redis"
	redis_utils "Gobang/services/redis/utils"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connect returns a client for the local redis, skipping the test when none is running
func connect(t *testing.T) *RedisClient {
	t.Helper()
	rc, err := InitRedis("localhost:6379", 0)
	if err != nil {
		t.Skipf("redis not available on localhost:6379: %v", err)
	}
	t.Cleanup(func() {
		rc.CleanupKeys([]string{redis_utils.FormatLobbyRoomsKey(), redis_utils.FormatLobbyRoomCountKey()})
		CloseRedis(rc)
	})
	return rc
}

func TestLobbySnapshotRoundTrip(t *testing.T) {
	rc := connect(t)
	ctx := context.Background()
	require.NoError(t, rc.CleanupKeys([]string{redis_utils.FormatLobbyRoomsKey()}))

	_, err := rc.GetLobbySnapshot(ctx)
	assert.ErrorIs(t, err, redis.Nil)

	snapshot := &redis_models.LobbySnapshot{
		Rooms: []models.RoomSummary{
			{ID: "r1", Name: "first", Players: models.Seats{"alice", "bob"}, Status: models.StatusPlaying, CreatedAt: 42},
			{ID: "r2", Name: "second", Spectators: 3, Status: models.StatusIdle},
		},
		UpdatedAt: 1234,
	}
	require.NoError(t, rc.SaveLobbySnapshot(ctx, snapshot))

	got, err := rc.GetLobbySnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	count, err := rc.GetLobbyRoomCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	ttl, err := rc.Client.TTL(ctx, redis_utils.FormatLobbyRoomsKey()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, LobbySnapshotTTL-time.Minute)
}

func TestMirrorAgainstRedis(t *testing.T) {
	rc := connect(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewLobbyMirror(rc)
	go m.Start(ctx)
	m.Publish([]models.Room{{ID: "live", Name: "live", Status: models.StatusFinished}})

	assert.Eventually(t, func() bool {
		got, err := rc.GetLobbySnapshot(ctx)
		return err == nil && len(got.Rooms) == 1 && got.Rooms[0].ID == "live"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient("::not a url::", 0)
	assert.Error(t, err)
}
