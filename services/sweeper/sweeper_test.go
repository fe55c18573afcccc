package sweeper

import (
	"Gobang/models"
	"Gobang/services/rooms"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registryResetter resets straight on the registry, like the coordinator does
type registryResetter struct {
	mu       sync.Mutex
	registry *rooms.Registry
	calls    []string
}

func (r *registryResetter) ResetRoom(roomID string) bool {
	_, err := r.registry.ResetRoom(roomID)
	r.mu.Lock()
	r.calls = append(r.calls, roomID)
	r.mu.Unlock()
	return err == nil
}

func (r *registryResetter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func finishedRoom(t *testing.T, registry *rooms.Registry) string {
	t.Helper()
	room := registry.CreateRoom("")
	for seat, id := range []string{"alice", "bob"} {
		_, err := registry.Enter(room.ID, id+room.ID)
		require.NoError(t, err)
		_, err = registry.Seat(room.ID, id+room.ID, seat)
		require.NoError(t, err)
	}
	_, err := registry.StartGame(room.ID, "alice"+room.ID)
	require.NoError(t, err)
	_, err = registry.Surrender(room.ID, "bob"+room.ID)
	require.NoError(t, err)
	return room.ID
}

func TestTickResetsOnlyExpiredRooms(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	registry := rooms.NewRegistry(rooms.WithClock(func() time.Time { return now }))
	resetter := &registryResetter{registry: registry}
	s := NewSweeper(NewSweeperOptions{Source: registry, Resetter: resetter})

	early := finishedRoom(t, registry)
	now = now.Add(5 * time.Second)
	late := finishedRoom(t, registry)

	assert.Equal(t, 0, s.Tick(now.Add(4*time.Second)))

	assert.Equal(t, 1, s.Tick(now.Add(5*time.Second)))
	room, _ := registry.Room(early)
	assert.Equal(t, models.StatusIdle, room.Status)
	room, _ = registry.Room(late)
	assert.Equal(t, models.StatusFinished, room.Status)

	assert.Equal(t, 1, s.Tick(now.Add(10*time.Second)))
	room, _ = registry.Room(late)
	assert.Equal(t, models.StatusIdle, room.Status)
	assert.Equal(t, models.Seats{"alice" + late, "bob" + late}, room.Players)

	assert.Equal(t, 0, s.Tick(now.Add(time.Hour)))
}

func TestStartTicks(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	registry := rooms.NewRegistry(rooms.WithClock(func() time.Time { return now }))
	resetter := &registryResetter{registry: registry}
	roomID := finishedRoom(t, registry)

	s := NewSweeper(NewSweeperOptions{
		Source:   registry,
		Resetter: resetter,
		Interval: 5 * time.Millisecond,
		Now:      func() time.Time { return now.Add(time.Minute) },
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	assert.Eventually(t, func() bool { return resetter.count() >= 1 }, time.Second, 5*time.Millisecond)
	room, ok := registry.Room(roomID)
	require.True(t, ok)
	assert.Equal(t, models.StatusIdle, room.Status)
}
