package redis

import (
	"Gobang/models"
	redis_models "Gobang/models/redis"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// SnapshotStore is where the mirror writes, a *RedisClient in production
type SnapshotStore interface {
	SaveLobbySnapshot(ctx context.Context, snapshot *redis_models.LobbySnapshot) error
}

// LobbyMirror copies the lobby listing to redis in the background. Only the
// newest listing matters, so a listing that has not been written yet is
// replaced by the next one.
type LobbyMirror struct {
	store   SnapshotStore
	pending chan *redis_models.LobbySnapshot
	now     func() time.Time
}

func NewLobbyMirror(store SnapshotStore) *LobbyMirror {
	return &LobbyMirror{
		store:   store,
		pending: make(chan *redis_models.LobbySnapshot, 1),
		now:     time.Now,
	}
}

// Publish hands over a listing without blocking
func (m *LobbyMirror) Publish(rooms []models.Room) {
	snapshot := &redis_models.LobbySnapshot{
		Rooms:     make([]models.RoomSummary, 0, len(rooms)),
		UpdatedAt: m.now().UnixMilli(),
	}
	for i := range rooms {
		snapshot.Rooms = append(snapshot.Rooms, rooms[i].Summary())
	}

	for {
		select {
		case m.pending <- snapshot:
			return
		default:
		}
		// Drop the stale one and retry
		select {
		case <-m.pending:
		default:
		}
	}
}

func (m *LobbyMirror) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-m.pending:
			m.write(ctx, snapshot)
		}
	}
}

func (m *LobbyMirror) write(ctx context.Context, snapshot *redis_models.LobbySnapshot) {
	writeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := m.store.SaveLobbySnapshot(writeCtx, snapshot); err != nil {
		log.Errorf("[LOBBY-MIRROR-ERROR] Failed to save lobby snapshot: %v", err)
		return
	}
	log.Debugf("[LOBBY-MIRROR] Saved %d rooms", len(snapshot.Rooms))
}
