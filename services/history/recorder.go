package history

import (
	"Gobang/models"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultRecorderBuffer = 64

// Saver is the part of Store the recorder needs
type Saver interface {
	Save(ctx context.Context, result models.MatchResult) error
}

type storeSaver struct{ store *Store }

func (s storeSaver) Save(ctx context.Context, result models.MatchResult) error {
	_, err := s.store.Save(ctx, result)
	return err
}

// Recorder persists finished games off the command path. Record never blocks;
// when the buffer is full the result is dropped and logged.
type Recorder struct {
	saver   Saver
	results chan models.MatchResult
}

type NewRecorderOptions struct {
	Saver  Saver
	Buffer int
}

func NewRecorder(opts NewRecorderOptions) *Recorder {
	if opts.Buffer <= 0 {
		opts.Buffer = DefaultRecorderBuffer
	}
	return &Recorder{
		saver:   opts.Saver,
		results: make(chan models.MatchResult, opts.Buffer),
	}
}

// NewStoreRecorder wires a recorder straight to a gorm store
func NewStoreRecorder(store *Store) *Recorder {
	return NewRecorder(NewRecorderOptions{Saver: storeSaver{store: store}})
}

func (r *Recorder) Record(result models.MatchResult) {
	select {
	case r.results <- result:
	default:
		log.Warnf("[HISTORY] Buffer full, dropping result of room %s", result.RoomID)
	}
}

// Start saves results until ctx is cancelled, then flushes whatever is still buffered
func (r *Recorder) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			r.flush()
			return
		case result := <-r.results:
			r.save(ctx, result)
		}
	}
}

func (r *Recorder) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case result := <-r.results:
			r.save(ctx, result)
		default:
			return
		}
	}
}

func (r *Recorder) save(ctx context.Context, result models.MatchResult) {
	if err := r.saver.Save(ctx, result); err != nil {
		log.Errorf("[HISTORY-ERROR] Room %s: %v", result.RoomID, err)
		return
	}
	log.Infof("[HISTORY] Saved match of room %s (%s, %d moves)", result.RoomID, result.Reason, result.Moves)
}
