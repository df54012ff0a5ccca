package model

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is returned for durations outside the allowed range or step.
var ErrInvalidDuration = errors.New("invalid duration")

// Duration bounds, in minutes.
const (
	MinFocusMinutes  = 5
	MaxFocusMinutes  = 60
	FocusStepMinutes = 5

	MinBreakMinutes  = 1
	MaxBreakMinutes  = 15
	BreakStepMinutes = 1

	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
)

// Durations holds the user-adjustable focus and break lengths.
type Durations struct {
	FocusMinutes int
	BreakMinutes int
}

// DefaultDurations returns the 25/5 cycle.
func DefaultDurations() Durations {
	return Durations{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// IncreaseFocus adds one focus step unless already at the maximum.
func (durations *Durations) IncreaseFocus() {
	if durations.FocusMinutes < MaxFocusMinutes {
		durations.FocusMinutes += FocusStepMinutes
	}
}

// DecreaseFocus removes one focus step unless already at the minimum.
func (durations *Durations) DecreaseFocus() {
	if durations.FocusMinutes > MinFocusMinutes {
		durations.FocusMinutes -= FocusStepMinutes
	}
}

// IncreaseBreak adds one break step unless already at the maximum.
func (durations *Durations) IncreaseBreak() {
	if durations.BreakMinutes < MaxBreakMinutes {
		durations.BreakMinutes += BreakStepMinutes
	}
}

// DecreaseBreak removes one break step unless already at the minimum.
func (durations *Durations) DecreaseBreak() {
	if durations.BreakMinutes > MinBreakMinutes {
		durations.BreakMinutes -= BreakStepMinutes
	}
}

// FocusSeconds returns the full focus session length.
func (durations Durations) FocusSeconds() int {
	return durations.FocusMinutes * 60
}

// BreakSeconds returns the full break session length.
func (durations Durations) BreakSeconds() int {
	return durations.BreakMinutes * 60
}

// Validate returns ErrInvalidDuration describing the first value that is out
// of range or off its step.
func (durations Durations) Validate() error {
	focus := durations.FocusMinutes
	if focus < MinFocusMinutes || focus > MaxFocusMinutes || (focus-MinFocusMinutes)%FocusStepMinutes != 0 {
		return fmt.Errorf("%w: focus %d, want %d-%d in steps of %d",
			ErrInvalidDuration, focus, MinFocusMinutes, MaxFocusMinutes, FocusStepMinutes)
	}
	if durations.BreakMinutes < MinBreakMinutes || durations.BreakMinutes > MaxBreakMinutes {
		return fmt.Errorf("%w: break %d, want %d-%d",
			ErrInvalidDuration, durations.BreakMinutes, MinBreakMinutes, MaxBreakMinutes)
	}
	return nil
}

// Normalize clamps both values into range and rounds focus down to its step.
func (durations Durations) Normalize() Durations {
	focus := clamp(durations.FocusMinutes, MinFocusMinutes, MaxFocusMinutes)
	focus -= (focus - MinFocusMinutes) % FocusStepMinutes
	return Durations{
		FocusMinutes: focus,
		BreakMinutes: clamp(durations.BreakMinutes, MinBreakMinutes, MaxBreakMinutes),
	}
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
