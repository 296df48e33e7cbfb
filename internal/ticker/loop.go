package ticker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrStop ends Run without an error when returned from a TickFunc.
var ErrStop = errors.New("stop")

// TickFunc is called once per tick with the tick number, starting at 0.
type TickFunc func(ctx context.Context, tick uint64) error

// Config configures the loop
type Config struct {
	TickRate time.Duration // Fixed tick rate (e.g., 16.67ms for 60 FPS)
	MaxTicks uint64        // Stop after this many ticks, panicked ones included (0: run until cancelled)
}

// Loop drives a TickFunc at a fixed rate.
type Loop struct {
	tickRate time.Duration
	maxTicks uint64
	fn       TickFunc
	log      logrus.FieldLogger

	mu      sync.Mutex
	tickNum uint64
	panics  uint64
}

// New creates a loop. A nil log uses the logrus standard logger.
func New(cfg Config, fn TickFunc, log logrus.FieldLogger) *Loop {
	if cfg.TickRate == 0 {
		cfg.TickRate = 16667 * time.Microsecond // Default 60 FPS
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loop{
		tickRate: cfg.TickRate,
		maxTicks: cfg.MaxTicks,
		fn:       fn,
		log:      log,
	}
}

// Run executes ticks until ctx is done, MaxTicks is reached, or the
// TickFunc stops the loop. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tickRate)
	defer ticker.Stop()

	l.log.WithFields(logrus.Fields{
		"tick_rate": l.tickRate,
		"max_ticks": l.maxTicks,
	}).Debug("tick loop started")

	for {
		if l.maxTicks > 0 && l.TickNumber() >= l.maxTicks {
			l.log.WithField("ticks", l.maxTicks).Debug("tick limit reached")
			return nil
		}

		select {
		case <-ctx.Done():
			l.log.WithField("tick", l.TickNumber()).Debug("tick loop cancelled")
			return nil
		case <-ticker.C:
			err := l.processTick(ctx)

			l.mu.Lock()
			l.tickNum++
			l.mu.Unlock()

			if errors.Is(err, ErrStop) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// processTick runs one tick, recovering and logging a panic.
func (l *Loop) processTick(ctx context.Context) (err error) {
	tick := l.TickNumber()
	defer func() {
		if r := recover(); r != nil {
			l.mu.Lock()
			l.panics++
			l.mu.Unlock()
			l.log.WithFields(logrus.Fields{
				"tick":  tick,
				"panic": r,
			}).Error("tick panicked")
			err = nil
		}
	}()

	err = l.fn(ctx, tick)
	if err != nil && !errors.Is(err, ErrStop) {
		return fmt.Errorf("tick %d: %w", tick, err)
	}
	return err
}

// TickNumber returns the number of completed ticks, including panicked ones
func (l *Loop) TickNumber() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tickNum
}

// Panics returns the number of ticks that panicked
func (l *Loop) Panics() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.panics
}
