package timekeeper

import "focuscycle/internal/core/model"

// Kind is the type of interval a session counts down.
type Kind string

const (
	KindFocusing Kind = "Focusing"
	KindOnBreak  Kind = "On Break"
)

// Next returns the kind that follows k.
func (k Kind) Next() Kind {
	if k == KindFocusing {
		return KindOnBreak
	}
	return KindFocusing
}

// Session is an immutable snapshot of one interval. Remaining and Total are in
// seconds; Total is the length the session was created with.
type Session struct {
	Kind      Kind
	Remaining int
	Total     int
}

// State is either Idle or Active.
type State interface {
	isState()
}

// Idle means no session has started since construction or the last reset.
type Idle struct{}

// Active holds the current session and whether it is counting down.
type Active struct {
	Session Session
	Running bool
}

func (Idle) isState()   {}
func (Active) isState() {}

// StartSession returns a fresh focusing session sized from durations.
func StartSession(durations model.Durations) Session {
	total := durations.FocusSeconds()
	return Session{Kind: KindFocusing, Remaining: total, Total: total}
}

// NextTick advances the session by one second, clamped at zero.
func NextTick(session Session) Session {
	session.Remaining = max(0, session.Remaining-1)
	return session
}

// NextSession switches to the opposite kind with its full duration read from
// durations at the moment of the call.
func NextSession(session Session, durations model.Durations) Session {
	next := session.Kind.Next()
	total := durations.FocusSeconds()
	if next == KindOnBreak {
		total = durations.BreakSeconds()
	}
	return Session{Kind: next, Remaining: total, Total: total}
}

// TogglePause starts a focusing session from Idle, otherwise flips Running.
func TogglePause(state State, durations model.Durations) State {
	active, ok := state.(Active)
	if !ok {
		return Active{Session: StartSession(durations), Running: true}
	}
	active.Running = !active.Running
	return active
}

// Advance applies one tick. Idle and paused states are returned unchanged. A
// non-nil Completion is returned only when the session was at zero and switched
// kind.
func Advance(state State, durations model.Durations) (State, *Completion) {
	active, ok := state.(Active)
	if !ok || !active.Running {
		return state, nil
	}
	if active.Session.Remaining == 0 {
		next := NextSession(active.Session, durations)
		completion := &Completion{Previous: active.Session.Kind, Next: next.Kind}
		active.Session = next
		return active, completion
	}
	active.Session = NextTick(active.Session)
	return active, nil
}

// Reset returns the Idle state.
func Reset() State {
	return Idle{}
}

// IsRunning reports whether state is an active, running session.
func IsRunning(state State) bool {
	active, ok := state.(Active)
	return ok && active.Running
}

// Snapshot is a read-only view of the engine for presentation.
type Snapshot struct {
	Durations model.Durations
	Session   *Session
	Running   bool
}

// NewSnapshot builds a Snapshot from a state and the current durations.
func NewSnapshot(state State, durations model.Durations) Snapshot {
	snapshot := Snapshot{Durations: durations}
	if active, ok := state.(Active); ok {
		session := active.Session
		snapshot.Session = &session
		snapshot.Running = active.Running
	}
	return snapshot
}

// Idle reports whether no session exists.
func (snapshot Snapshot) Idle() bool {
	return snapshot.Session == nil
}

// Paused reports whether a session exists but is not counting down.
func (snapshot Snapshot) Paused() bool {
	return snapshot.Session != nil && !snapshot.Running
}

// DurationsEditable reports whether duration changes would be accepted.
func (snapshot Snapshot) DurationsEditable() bool {
	return !snapshot.Running
}

// CanReset reports whether there is a session to discard.
func (snapshot Snapshot) CanReset() bool {
	return snapshot.Session != nil
}

// Progress returns the elapsed fraction of the current session in [0, 1].
func (snapshot Snapshot) Progress() float64 {
	if snapshot.Session == nil || snapshot.Session.Total <= 0 {
		return 0
	}
	progress := float64(snapshot.Session.Total-snapshot.Session.Remaining) / float64(snapshot.Session.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
