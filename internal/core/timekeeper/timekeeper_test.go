package timekeeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuscycle/internal/core/model"
	"focuscycle/internal/core/ticker"
)

type recordingNotifier struct {
	mu          sync.Mutex
	completions []Completion
	err         error
	panicWith   any
}

func (notifier *recordingNotifier) SessionComplete(_ context.Context, completion Completion) error {
	notifier.mu.Lock()
	notifier.completions = append(notifier.completions, completion)
	notifier.mu.Unlock()
	if notifier.panicWith != nil {
		panic(notifier.panicWith)
	}
	return notifier.err
}

func (notifier *recordingNotifier) count() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.completions)
}

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestKeeper(durations model.Durations) (*TimeKeeper, *ticker.Manual, *recordingNotifier) {
	source := ticker.NewManual()
	notifier := &recordingNotifier{}
	keeper := New(durations, source, Config{
		Notifier: notifier,
		Now:      func() time.Time { return fixedNow },
	})
	return keeper, source, notifier
}

// runTo ticks a freshly started session until it has remaining seconds left.
func runTo(t *testing.T, keeper *TimeKeeper, source *ticker.Manual, remaining int) {
	t.Helper()
	snapshot := keeper.Snapshot()
	require.NotNil(t, snapshot.Session)
	ticks := snapshot.Session.Remaining - remaining
	require.Equal(t, ticks, source.Fire(ticks))
	require.Equal(t, remaining, keeper.Snapshot().Session.Remaining)
}

func TestNew_StartsIdle(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())
	snapshot := keeper.Snapshot()
	assert.True(t, snapshot.Idle())
	assert.False(t, snapshot.Running)
	assert.False(t, source.Enabled())
}

func TestNew_NormalizesDurations(t *testing.T) {
	keeper := New(model.Durations{FocusMinutes: 99, BreakMinutes: 0}, nil, Config{})
	assert.Equal(t, model.Durations{FocusMinutes: 60, BreakMinutes: 1}, keeper.Durations())
}

func TestTogglePause_FromIdle(t *testing.T) {
	durations := model.Durations{FocusMinutes: 35, BreakMinutes: 4}
	keeper, source, _ := newTestKeeper(durations)

	keeper.TogglePause()

	snapshot := keeper.Snapshot()
	require.NotNil(t, snapshot.Session)
	assert.True(t, snapshot.Running)
	assert.Equal(t, KindFocusing, snapshot.Session.Kind)
	assert.Equal(t, 35*60, snapshot.Session.Remaining)
	assert.True(t, source.Enabled())
}

func TestTick_OrdinaryDecrement(t *testing.T) {
	keeper, source, notifier := newTestKeeper(model.DefaultDurations())
	keeper.TogglePause()
	runTo(t, keeper, source, 437)

	source.Fire(1)

	snapshot := keeper.Snapshot()
	assert.Equal(t, 436, snapshot.Session.Remaining)
	assert.Equal(t, KindFocusing, snapshot.Session.Kind)
	assert.Zero(t, notifier.count())
}

func TestTick_ZeroCrossingSwitchesOnce(t *testing.T) {
	durations := model.Durations{FocusMinutes: 5, BreakMinutes: 2}
	keeper, source, notifier := newTestKeeper(durations)
	keeper.TogglePause()
	runTo(t, keeper, source, 0)
	assert.Zero(t, notifier.count())

	source.Fire(1)

	snapshot := keeper.Snapshot()
	assert.True(t, snapshot.Running)
	assert.Equal(t, KindOnBreak, snapshot.Session.Kind)
	assert.Equal(t, 2*60, snapshot.Session.Remaining)
	require.Equal(t, 1, notifier.count())
	assert.Equal(t, Completion{Previous: KindFocusing, Next: KindOnBreak, At: fixedNow}, notifier.completions[0])

	source.Fire(1)
	assert.Equal(t, 2*60-1, keeper.Snapshot().Session.Remaining)
	assert.Equal(t, 1, notifier.count())
}

func TestTick_FullCycleReturnsToFocus(t *testing.T) {
	durations := model.Durations{FocusMinutes: 5, BreakMinutes: 1}
	keeper, source, notifier := newTestKeeper(durations)
	keeper.TogglePause()

	// focus 300s + switch + break 60s + switch
	source.Fire(300 + 1 + 60 + 1)

	snapshot := keeper.Snapshot()
	assert.Equal(t, KindFocusing, snapshot.Session.Kind)
	assert.Equal(t, 300, snapshot.Session.Remaining)
	require.Equal(t, 2, notifier.count())
	assert.Equal(t, KindOnBreak, notifier.completions[1].Previous)
	assert.Equal(t, KindFocusing, notifier.completions[1].Next)
}

func TestTick_IdleOrPausedIsNoop(t *testing.T) {
	keeper, _, notifier := newTestKeeper(model.DefaultDurations())

	keeper.Tick()
	assert.True(t, keeper.Snapshot().Idle())

	keeper.TogglePause()
	keeper.TogglePause()
	before := keeper.Snapshot()
	keeper.Tick()
	assert.Equal(t, before, keeper.Snapshot())
	assert.Zero(t, notifier.count())
}

func TestPauseResume_KeepsRemaining(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())
	keeper.TogglePause()
	source.Fire(10)
	before := *keeper.Snapshot().Session

	keeper.TogglePause()
	assert.False(t, source.Enabled())
	assert.True(t, keeper.Snapshot().Paused())

	keeper.TogglePause()
	assert.True(t, source.Enabled())
	assert.Equal(t, before, *keeper.Snapshot().Session)
}

func TestStart(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())

	keeper.Start()
	assert.True(t, keeper.Snapshot().Running)
	source.Fire(3)

	keeper.Start()
	assert.True(t, keeper.Snapshot().Running)
	assert.Equal(t, 25*60-3, keeper.Snapshot().Session.Remaining)

	keeper.TogglePause()
	keeper.Start()
	assert.True(t, keeper.Snapshot().Running)
	assert.Equal(t, 25*60-3, keeper.Snapshot().Session.Remaining)
}

func TestReset_ReReadsConfiguration(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())
	keeper.TogglePause()
	source.Fire(5)

	keeper.Reset()
	assert.True(t, keeper.Snapshot().Idle())
	assert.False(t, source.Enabled())

	require.True(t, keeper.IncreaseFocus())
	keeper.TogglePause()
	assert.Equal(t, 30*60, keeper.Snapshot().Session.Remaining)
}

func TestReset_FromPaused(t *testing.T) {
	keeper, _, _ := newTestKeeper(model.DefaultDurations())
	keeper.TogglePause()
	keeper.TogglePause()
	keeper.Reset()
	assert.True(t, keeper.Snapshot().Idle())
	assert.False(t, keeper.Snapshot().Running)
}

func TestDurations_IgnoredWhileRunning(t *testing.T) {
	durations := model.DefaultDurations()
	keeper, _, _ := newTestKeeper(durations)
	keeper.TogglePause()

	assert.False(t, keeper.IncreaseFocus())
	assert.False(t, keeper.DecreaseFocus())
	assert.False(t, keeper.IncreaseBreak())
	assert.False(t, keeper.DecreaseBreak())
	assert.False(t, keeper.SetDurations(model.Durations{FocusMinutes: 50, BreakMinutes: 10}))
	assert.Equal(t, durations, keeper.Durations())
}

func TestDurations_AllowedWhilePaused(t *testing.T) {
	durations := model.Durations{FocusMinutes: 5, BreakMinutes: 1}
	keeper, source, _ := newTestKeeper(durations)
	keeper.TogglePause()
	runTo(t, keeper, source, 0)
	keeper.TogglePause()

	require.True(t, keeper.IncreaseBreak())
	assert.Equal(t, 0, keeper.Snapshot().Session.Remaining)

	keeper.TogglePause()
	source.Fire(1)

	snapshot := keeper.Snapshot()
	assert.Equal(t, KindOnBreak, snapshot.Session.Kind)
	assert.Equal(t, 2*60, snapshot.Session.Remaining)
}

func TestDurations_BoundariesReportNoChange(t *testing.T) {
	keeper, _, _ := newTestKeeper(model.Durations{FocusMinutes: 60, BreakMinutes: 1})
	assert.False(t, keeper.IncreaseFocus())
	assert.False(t, keeper.DecreaseBreak())
	assert.True(t, keeper.DecreaseFocus())
	assert.True(t, keeper.IncreaseBreak())
	assert.Equal(t, model.Durations{FocusMinutes: 55, BreakMinutes: 2}, keeper.Durations())
}

func TestSetDurations_Normalizes(t *testing.T) {
	keeper, _, _ := newTestKeeper(model.DefaultDurations())
	assert.True(t, keeper.SetDurations(model.Durations{FocusMinutes: 42, BreakMinutes: 40}))
	assert.Equal(t, model.Durations{FocusMinutes: 40, BreakMinutes: 15}, keeper.Durations())
}

func TestTickSource_FollowsRunning(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())

	keeper.TogglePause()
	keeper.TogglePause()
	keeper.TogglePause()
	keeper.Reset()

	starts, stops := source.Counts()
	assert.Equal(t, 2, starts)
	assert.Equal(t, 2, stops)
	assert.False(t, source.Enabled())
}

func TestStaleTickIsDropped(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())
	keeper.TogglePause()
	stale := source.Capture()
	require.NotNil(t, stale)

	keeper.TogglePause()
	stale()
	assert.Equal(t, 25*60, keeper.Snapshot().Session.Remaining)

	keeper.TogglePause()
	stale()
	assert.Equal(t, 25*60, keeper.Snapshot().Session.Remaining)

	source.Fire(1)
	assert.Equal(t, 25*60-1, keeper.Snapshot().Session.Remaining)
}

func TestNotifierFailureDoesNotAffectState(t *testing.T) {
	tests := []struct {
		name     string
		notifier *recordingNotifier
	}{
		{"error", &recordingNotifier{err: errors.New("speaker unavailable")}},
		{"panic", &recordingNotifier{panicWith: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := ticker.NewManual()
			keeper := New(model.Durations{FocusMinutes: 5, BreakMinutes: 1}, source, Config{Notifier: tt.notifier})
			keeper.TogglePause()
			source.Fire(300)

			require.NotPanics(t, func() { source.Fire(1) })

			snapshot := keeper.Snapshot()
			assert.Equal(t, KindOnBreak, snapshot.Session.Kind)
			assert.Equal(t, 60, snapshot.Session.Remaining)
			assert.True(t, snapshot.Running)
			assert.True(t, source.Enabled())
			assert.Equal(t, 1, tt.notifier.count())

			source.Fire(1)
			assert.Equal(t, 59, keeper.Snapshot().Session.Remaining)
		})
	}
}

func TestSubscribe_ReceivesEvents(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.Durations{FocusMinutes: 5, BreakMinutes: 1})
	events := keeper.Subscribe(1024)

	keeper.IncreaseBreak()
	keeper.TogglePause()
	source.Fire(301)

	var types []EventType
	var completion *Completion
	for len(events) > 0 {
		event := <-events
		types = append(types, event.Type)
		if event.Type == EventSessionComplete {
			completion = event.Completion
			assert.Equal(t, KindOnBreak, event.Snapshot.Session.Kind)
		}
	}

	require.Len(t, types, 1+1+300+1)
	assert.Equal(t, EventConfigChange, types[0])
	assert.Equal(t, EventStateChange, types[1])
	assert.Equal(t, EventTick, types[2])
	assert.Equal(t, EventSessionComplete, types[len(types)-1])
	require.NotNil(t, completion)
	assert.Equal(t, KindFocusing, completion.Previous)
}

func TestSubscribe_DropsWhenFull(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())
	events := keeper.Subscribe(1)

	keeper.TogglePause()
	source.Fire(5)

	assert.Len(t, events, 1)
	assert.Equal(t, EventStateChange, (<-events).Type)
}

func TestClose(t *testing.T) {
	keeper, source, _ := newTestKeeper(model.DefaultDurations())
	events := keeper.Subscribe(4)
	keeper.TogglePause()
	<-events

	keeper.Close()
	assert.False(t, source.Enabled())
	_, open := <-events
	assert.False(t, open)

	assert.True(t, keeper.Snapshot().Paused())

	keeper.TogglePause()
	keeper.Tick()
	assert.False(t, keeper.Snapshot().Running)
	assert.Equal(t, 25*60, keeper.Snapshot().Session.Remaining)
	assert.False(t, keeper.IncreaseFocus())

	late := keeper.Subscribe(1)
	_, open = <-late
	assert.False(t, open)

	assert.NotPanics(t, keeper.Close)
}
