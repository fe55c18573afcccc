package redis

import (
	"Gobang/models"
	redis_models "Gobang/models/redis"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu    sync.Mutex
	saved []*redis_models.LobbySnapshot
}

func (s *memoryStore) SaveLobbySnapshot(ctx context.Context, snapshot *redis_models.LobbySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, snapshot)
	return nil
}

func (s *memoryStore) last() *redis_models.LobbySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return nil
	}
	return s.saved[len(s.saved)-1]
}

func room(id string, spectators ...string) models.Room {
	return models.Room{
		ID:         id,
		Name:       "room " + id,
		Players:    models.Seats{"alice", ""},
		Spectators: spectators,
		Status:     models.StatusIdle,
		CreatedAt:  time.UnixMilli(1000),
	}
}

func TestPublishKeepsOnlyTheNewestListing(t *testing.T) {
	m := NewLobbyMirror(&memoryStore{})

	m.Publish([]models.Room{room("a")})
	m.Publish([]models.Room{room("a"), room("b")})
	m.Publish([]models.Room{room("c", "bob", "carol")})

	require.Len(t, m.pending, 1)
	snapshot := <-m.pending
	require.Len(t, snapshot.Rooms, 1)
	assert.Equal(t, models.RoomSummary{
		ID:         "c",
		Name:       "room c",
		Players:    models.Seats{"alice", ""},
		Spectators: 2,
		Status:     models.StatusIdle,
		CreatedAt:  1000,
	}, snapshot.Rooms[0])
}

func TestMirrorWritesInBackground(t *testing.T) {
	store := &memoryStore{}
	m := NewLobbyMirror(store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Start(ctx)

	m.Publish([]models.Room{room("a"), room("b")})
	assert.Eventually(t, func() bool {
		last := store.last()
		return last != nil && len(last.Rooms) == 2
	}, time.Second, 5*time.Millisecond)

	m.Publish(nil)
	assert.Eventually(t, func() bool {
		last := store.last()
		return last != nil && len(last.Rooms) == 0
	}, time.Second, 5*time.Millisecond)
}
