package session

import (
	game_constants "Gobang/constants/game"
	"Gobang/models"
	"Gobang/services/sweeper"
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with -race: the sweeper resets rooms from its own goroutine while
// commands keep finishing and restarting the same game.
func TestSweeperRacesCommands(t *testing.T) {
	h := newHarness()
	roomID, black, white := h.game(t)
	expired := h.now.Add(time.Hour)
	sweep := sweeper.NewSweeper(sweeper.NewSweeperOptions{Source: h.registry, Resetter: h.coord})

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				sweep.Tick(expired)
				runtime.Gosched()
			}
		}
	}()

	for i := 0; i < 200; i++ {
		h.coord.Dispatch(Envelope{PlayerID: white, Command: Surrender{}})
		h.coord.Dispatch(Envelope{PlayerID: black, Command: StartGame{}})
		h.coord.Dispatch(Envelope{PlayerID: black, Command: RequestDraw{}})
	}
	close(stop)
	wg.Wait()
	sweep.Tick(expired)

	room, ok := h.registry.Room(roomID)
	require.True(t, ok)
	assert.Equal(t, models.Seats{black, white}, room.Players, "seats survive every cycle")
	assert.Nil(t, room.Winner)
	assert.Nil(t, room.SettlementDeadline)
	assert.Zero(t, room.Board.Stones())
	assert.LessOrEqual(t, room.DrawCount[black], game_constants.MaxDrawRequests)
	switch room.Status {
	case models.StatusPlaying:
		assert.LessOrEqual(t, len(room.DrawRequests), 1)
	case models.StatusIdle:
		assert.Empty(t, room.DrawRequests)
	default:
		t.Fatalf("room left in %s", room.Status)
	}

	ended := 0
	for _, e := range h.transport.take() {
		if e.Event == EventGameEnded {
			ended++
		}
	}
	assert.GreaterOrEqual(t, ended, 1)
	assert.Equal(t, ended, h.recorder.count(), "every finished game is recorded once")
}

func TestSettlementResetWaitsForQueuedCommands(t *testing.T) {
	h := newHarness()
	roomID, black, white := h.game(t)
	h.send(white, Surrender{})

	p := NewProcessor(h.coord, 8)
	require.True(t, p.Submit(Envelope{PlayerID: black, Command: RoomChat{Content: "gg"}}))

	sweep := sweeper.NewSweeper(sweeper.NewSweeperOptions{Source: h.registry, Resetter: p})
	require.Equal(t, 1, sweep.Tick(h.now.Add(game_constants.SettlementWindow)))
	room, _ := h.registry.Room(roomID)
	assert.Equal(t, models.StatusFinished, room.Status, "only queued so far")
	assert.Equal(t, 2, p.Pending())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(stopped)
	}()
	assert.Eventually(t, func() bool {
		room, _ := h.registry.Room(roomID)
		return room.Status == models.StatusIdle
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-stopped

	assert.Equal(t, []string{EventRoomChat, EventRoomUpdated, EventLobbyRooms}, names(h.transport.take()))
	assert.False(t, p.ResetRoom(roomID), "nothing is queued once stopped")
}
