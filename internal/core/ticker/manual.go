package ticker

import "sync"

// Manual is a tick source driven by explicit Fire calls.
type Manual struct {
	mu     sync.Mutex
	onTick func()
	starts int
	stops  int
}

// NewManual creates a stopped Manual source.
func NewManual() *Manual {
	return &Manual{}
}

// Start records onTick as the active callback.
func (manual *Manual) Start(onTick func()) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.onTick = onTick
	manual.starts++
}

// Stop clears the active callback.
func (manual *Manual) Stop() {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.onTick = nil
	manual.stops++
}

// Enabled reports whether a callback is active.
func (manual *Manual) Enabled() bool {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.onTick != nil
}

// Fire delivers n ticks to the active callback and reports how many were
// delivered.
func (manual *Manual) Fire(n int) int {
	delivered := 0
	for i := 0; i < n; i++ {
		manual.mu.Lock()
		onTick := manual.onTick
		manual.mu.Unlock()
		if onTick == nil {
			break
		}
		onTick()
		delivered++
	}
	return delivered
}

// Capture returns the active callback so a test can deliver it late.
func (manual *Manual) Capture() func() {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.onTick
}

// Counts returns how many times Start and Stop were called.
func (manual *Manual) Counts() (starts, stops int) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.starts, manual.stops
}
