package timekeeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"focuscycle/internal/core/model"
)

const notifyTimeout = 5 * time.Second

// TickSource invokes onTick periodically between Start and Stop.
type TickSource interface {
	Start(onTick func())
	Stop()
}

// Notifier is told about every zero-crossing. Delivery is best effort.
type Notifier interface {
	SessionComplete(ctx context.Context, completion Completion) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	Logger   *slog.Logger
	Notifier Notifier
	Now      func() time.Time
}

// TimeKeeper owns the session state and the configured durations, and keeps
// the tick source enabled exactly while a session is running.
type TimeKeeper struct {
	mu        sync.Mutex
	durations model.Durations
	state     State
	source    TickSource
	epoch     uint64
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
	events    []chan Event
	closed    bool
}

// New creates an idle TimeKeeper. A nil source leaves ticking to manual Tick calls.
func New(durations model.Durations, source TickSource, options Config) *TimeKeeper {
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &TimeKeeper{
		durations: durations.Normalize(),
		state:     Idle{},
		source:    source,
		notifier:  options.Notifier,
		logger:    options.Logger,
		now:       options.Now,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Start begins a focusing session when idle or resumes a paused one.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || IsRunning(keeper.state) {
		return
	}
	keeper.toggleLocked()
}

// TogglePause flips between running and paused, starting a session when idle.
func (keeper *TimeKeeper) TogglePause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.toggleLocked()
}

// Reset discards the current session and stops ticking.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	if IsRunning(keeper.state) {
		keeper.disableLocked()
	}
	keeper.state = Reset()
	keeper.logger.Info("session reset")
	keeper.emitLocked(EventStateChange, nil)
}

// Tick advances the running session by one second. It is a no-op while idle
// or paused.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	completion := keeper.advanceLocked()
	keeper.mu.Unlock()
	keeper.notify(completion)
}

// IncreaseFocus lengthens focus sessions; ignored while running.
func (keeper *TimeKeeper) IncreaseFocus() bool {
	return keeper.updateDurations((*model.Durations).IncreaseFocus)
}

// DecreaseFocus shortens focus sessions; ignored while running.
func (keeper *TimeKeeper) DecreaseFocus() bool {
	return keeper.updateDurations((*model.Durations).DecreaseFocus)
}

// IncreaseBreak lengthens breaks; ignored while running.
func (keeper *TimeKeeper) IncreaseBreak() bool {
	return keeper.updateDurations((*model.Durations).IncreaseBreak)
}

// DecreaseBreak shortens breaks; ignored while running.
func (keeper *TimeKeeper) DecreaseBreak() bool {
	return keeper.updateDurations((*model.Durations).DecreaseBreak)
}

// SetDurations replaces both durations after clamping; ignored while running.
func (keeper *TimeKeeper) SetDurations(durations model.Durations) bool {
	normalized := durations.Normalize()
	return keeper.updateDurations(func(current *model.Durations) {
		*current = normalized
	})
}

// Durations returns the configured durations.
func (keeper *TimeKeeper) Durations() model.Durations {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.durations
}

// Snapshot returns a consistent view of the state and durations.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return NewSnapshot(keeper.state, keeper.durations)
}

// Close pauses any running session, stops ticking and closes observers.
// Later calls are ignored.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	if active, ok := keeper.state.(Active); ok && active.Running {
		active.Running = false
		keeper.state = active
		keeper.disableLocked()
	}
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) toggleLocked() {
	_, wasIdle := keeper.state.(Idle)
	keeper.state = TogglePause(keeper.state, keeper.durations)
	if IsRunning(keeper.state) {
		keeper.enableLocked()
	} else {
		keeper.disableLocked()
	}

	switch {
	case wasIdle:
		keeper.logger.Info("session started", "focus_minutes", keeper.durations.FocusMinutes)
	case IsRunning(keeper.state):
		keeper.logger.Info("session resumed")
	default:
		keeper.logger.Info("session paused")
	}
	keeper.emitLocked(EventStateChange, nil)
}

func (keeper *TimeKeeper) enableLocked() {
	keeper.epoch++
	if keeper.source == nil {
		return
	}
	epoch := keeper.epoch
	keeper.source.Start(func() {
		keeper.tickEpoch(epoch)
	})
	keeper.logger.Debug("tick source enabled", "epoch", epoch)
}

func (keeper *TimeKeeper) disableLocked() {
	keeper.epoch++
	if keeper.source == nil {
		return
	}
	keeper.source.Stop()
	keeper.logger.Debug("tick source disabled", "epoch", keeper.epoch)
}

// tickEpoch drops ticks delivered for an enablement that has since ended.
func (keeper *TimeKeeper) tickEpoch(epoch uint64) {
	keeper.mu.Lock()
	if epoch != keeper.epoch {
		keeper.mu.Unlock()
		return
	}
	completion := keeper.advanceLocked()
	keeper.mu.Unlock()
	keeper.notify(completion)
}

func (keeper *TimeKeeper) advanceLocked() *Completion {
	if keeper.closed || !IsRunning(keeper.state) {
		return nil
	}

	state, completion := Advance(keeper.state, keeper.durations)
	keeper.state = state
	if completion == nil {
		keeper.emitLocked(EventTick, nil)
		return nil
	}

	completion.At = keeper.now()
	keeper.logger.Info("session complete",
		"previous", string(completion.Previous),
		"next", string(completion.Next),
	)
	keeper.emitLocked(EventSessionComplete, completion)
	return completion
}

func (keeper *TimeKeeper) updateDurations(mutate func(*model.Durations)) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || IsRunning(keeper.state) {
		return false
	}

	before := keeper.durations
	mutate(&keeper.durations)
	if keeper.durations == before {
		return false
	}
	keeper.emitLocked(EventConfigChange, nil)
	return true
}

func (keeper *TimeKeeper) notify(completion *Completion) {
	if completion == nil || keeper.notifier == nil {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			keeper.logger.Warn("session notifier panicked", "panic", recovered)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := keeper.notifier.SessionComplete(ctx, *completion); err != nil {
		keeper.logger.Warn("session notifier failed", "error", err)
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, completion *Completion) {
	event := Event{
		Type:       eventType,
		Snapshot:   NewSnapshot(keeper.state, keeper.durations),
		Completion: completion,
		At:         keeper.now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
