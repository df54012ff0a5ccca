// Package ticker provides tick sources for the timekeeper.
package ticker

import (
	"sync"
	"time"
)

// DefaultPeriod is the wall-clock period between session ticks.
const DefaultPeriod = time.Second

// Interval calls its callback every period on a background goroutine until
// stopped. Each Start replaces any previous run.
type Interval struct {
	mu     sync.Mutex
	period time.Duration
	stopCh chan struct{}
}

// NewInterval creates a stopped Interval. A non-positive period selects
// DefaultPeriod.
func NewInterval(period time.Duration) *Interval {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Interval{period: period}
}

// Start begins invoking onTick. It never calls onTick synchronously.
func (interval *Interval) Start(onTick func()) {
	interval.mu.Lock()
	defer interval.mu.Unlock()
	interval.stopLocked()
	stopCh := make(chan struct{})
	interval.stopCh = stopCh
	go interval.run(stopCh, onTick)
}

// Stop halts delivery. At most one tick already in flight may still arrive.
func (interval *Interval) Stop() {
	interval.mu.Lock()
	defer interval.mu.Unlock()
	interval.stopLocked()
}

func (interval *Interval) running() bool {
	interval.mu.Lock()
	defer interval.mu.Unlock()
	return interval.stopCh != nil
}

func (interval *Interval) stopLocked() {
	if interval.stopCh == nil {
		return
	}
	close(interval.stopCh)
	interval.stopCh = nil
}

func (interval *Interval) run(stopCh <-chan struct{}, onTick func()) {
	ticker := time.NewTicker(interval.period)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			onTick()
		}
	}
}
