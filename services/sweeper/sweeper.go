package sweeper

import (
	game_constants "Gobang/constants/game"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// SettlementSource lists finished rooms whose settlement window is over
type SettlementSource interface {
	ExpiredSettlements(now time.Time) []string
}

// Resetter brings a finished room back to idle and announces it, or queues that
// work. It reports false when the room was left alone.
type Resetter interface {
	ResetRoom(roomID string) bool
}

// Sweeper periodically resets rooms once their settlement window has passed
type Sweeper struct {
	source   SettlementSource
	resetter Resetter
	interval time.Duration
	now      func() time.Time
}

type NewSweeperOptions struct {
	Source   SettlementSource
	Resetter Resetter
	Interval time.Duration    // defaults to one second
	Now      func() time.Time // defaults to time.Now
}

func NewSweeper(opts NewSweeperOptions) *Sweeper {
	s := &Sweeper{
		source:   opts.Source,
		resetter: opts.Resetter,
		interval: opts.Interval,
		now:      opts.Now,
	}
	if s.interval <= 0 {
		s.interval = game_constants.SweepInterval
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Infof("[SWEEPER] Checking settlements every %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Info("[SWEEPER] Stopped")
			return
		case <-ticker.C:
			s.Tick(s.now())
		}
	}
}

// Tick hands every room whose deadline is at or before now to the resetter and
// returns how many it accepted
func (s *Sweeper) Tick(now time.Time) int {
	reset := 0
	for _, roomID := range s.source.ExpiredSettlements(now) {
		// A command may have touched the room since it was listed
		if s.resetter.ResetRoom(roomID) {
			reset++
		}
	}
	if reset > 0 {
		log.Debugf("[SWEEPER] %d settlements over", reset)
	}
	return reset
}
