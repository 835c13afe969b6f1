// Package scheduler drives a floating text manager at a fixed rate when no
// game loop is available.
package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Advancer is the per-tick update step.
type Advancer interface {
	Advance(dt float64)
}

// FrameLoop calls Advance and then Draw once per tick.
type FrameLoop struct {
	advancer Advancer
	draw     func()
	tickRate int
	log      *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewFrameLoop creates a loop running tickRate times per second. draw may be
// nil.
func NewFrameLoop(a Advancer, draw func(), tickRate int, log *zap.Logger) *FrameLoop {
	if log == nil {
		log = zap.NewNop()
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameLoop{
		advancer: a,
		draw:     draw,
		tickRate: tickRate,
		log:      log,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (l *FrameLoop) Run() {
	defer close(l.done)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.Info("Frame loop started", zap.Int("tps", l.tickRate))
	last := time.Now()
	for {
		select {
		case <-l.stopChan:
			l.log.Info("Frame loop stopped")
			return
		case now := <-ticker.C:
			l.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *FrameLoop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Done is closed once Run has returned.
func (l *FrameLoop) Done() <-chan struct{} {
	return l.done
}

func (l *FrameLoop) tick(dt float64) {
	l.advancer.Advance(dt)
	if l.draw != nil {
		l.draw()
	}
}
