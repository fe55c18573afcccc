package history

import (
	"Gobang/models"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type memorySaver struct {
	mu    sync.Mutex
	saved []models.MatchResult
	fail  bool
}

func (s *memorySaver) Save(ctx context.Context, result models.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("database down")
	}
	s.saved = append(s.saved, result)
	return nil
}

func (s *memorySaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func TestRecordDoesNotBlockWhenFull(t *testing.T) {
	r := NewRecorder(NewRecorderOptions{Saver: &memorySaver{}, Buffer: 2})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			r.Record(models.MatchResult{RoomID: "r"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked")
	}
	assert.Len(t, r.results, 2)
}

func TestRecorderSavesInOrder(t *testing.T) {
	saver := &memorySaver{}
	r := NewRecorder(NewRecorderOptions{Saver: saver})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Start(ctx)

	r.Record(models.MatchResult{RoomID: "a"})
	r.Record(models.MatchResult{RoomID: "b"})

	assert.Eventually(t, func() bool { return saver.count() == 2 }, time.Second, 5*time.Millisecond)
	saver.mu.Lock()
	defer saver.mu.Unlock()
	assert.Equal(t, "a", saver.saved[0].RoomID)
	assert.Equal(t, "b", saver.saved[1].RoomID)
}

func TestRecorderFlushesOnStop(t *testing.T) {
	saver := &memorySaver{}
	r := NewRecorder(NewRecorderOptions{Saver: saver})
	r.Record(models.MatchResult{RoomID: "a"})
	r.Record(models.MatchResult{RoomID: "b"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Start(ctx)

	assert.Equal(t, 2, saver.count())
}

func TestRecorderSurvivesSaveErrors(t *testing.T) {
	saver := &memorySaver{fail: true}
	r := NewRecorder(NewRecorderOptions{Saver: saver})
	r.Record(models.MatchResult{RoomID: "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NotPanics(t, func() { r.Start(ctx) })
	assert.Equal(t, 0, saver.count())
}
