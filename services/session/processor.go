package session

import (
	"context"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

const DefaultQueueSize = 1024

// Dispatcher runs a single command
type Dispatcher interface {
	Dispatch(env Envelope)
}

// Processor serialises every player command through one goroutine, in the
// order they were submitted
type Processor struct {
	dispatcher Dispatcher
	queue      chan Envelope
	done       chan struct{}
}

func NewProcessor(dispatcher Dispatcher, queueSize int) *Processor {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Processor{
		dispatcher: dispatcher,
		queue:      make(chan Envelope, queueSize),
		done:       make(chan struct{}),
	}
}

// Submit enqueues env, waiting while the queue is full. It returns false once
// the processor has stopped.
func (p *Processor) Submit(env Envelope) bool {
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case p.queue <- env:
		return true
	case <-p.done:
		return false
	}
}

// Start drains the queue until ctx is cancelled. Commands still queued at that
// point are discarded.
func (p *Processor) Start(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case <-ctx.Done():
			log.Infof("[PROCESSOR] Stopping, %d commands discarded", len(p.queue))
			return
		case env := <-p.queue:
			p.dispatch(env)
		}
	}
}

func (p *Processor) dispatch(env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[PROCESSOR] Command %T from player %s panicked: %v\n%s",
				env.Command, env.PlayerID, r, debug.Stack())
		}
	}()
	p.dispatcher.Dispatch(env)
}

// ResetRoom queues a settlement reset behind the commands already received, so
// its room:updated cannot overtake their events. It reports whether the reset
// was queued.
func (p *Processor) ResetRoom(roomID string) bool {
	return p.Submit(Envelope{Command: ResetSettlement{RoomID: roomID}})
}

// Pending is the number of queued commands
func (p *Processor) Pending() int {
	return len(p.queue)
}
