package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	seen []Envelope
}

func (d *recordingDispatcher) Dispatch(env Envelope) {
	if _, boom := env.Command.(Surrender); boom {
		panic("boom")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = append(d.seen, env)
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func TestProcessorKeepsArrivalOrder(t *testing.T) {
	d := &recordingDispatcher{}
	p := NewProcessor(d, 4)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(stopped)
	}()

	const n = 50
	for i := 0; i < n; i++ {
		require.True(t, p.Submit(Envelope{PlayerID: "p", Command: Move{X: i, Y: i}}))
	}
	assert.Eventually(t, func() bool { return d.count() == n }, time.Second, 5*time.Millisecond)

	d.mu.Lock()
	for i, env := range d.seen {
		assert.Equal(t, Move{X: i, Y: i}, env.Command)
	}
	d.mu.Unlock()

	cancel()
	<-stopped
	assert.False(t, p.Submit(Envelope{PlayerID: "p", Command: ListRooms{}}))
}

func TestProcessorSurvivesPanickingCommand(t *testing.T) {
	d := &recordingDispatcher{}
	p := NewProcessor(d, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Start(ctx)

	require.True(t, p.Submit(Envelope{PlayerID: "p", Command: Surrender{}}))
	require.True(t, p.Submit(Envelope{PlayerID: "p", Command: ListRooms{}}))
	assert.Eventually(t, func() bool { return d.count() == 1 }, time.Second, 5*time.Millisecond)
}
