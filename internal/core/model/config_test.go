package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDurations(t *testing.T) {
	durations := DefaultDurations()
	assert.Equal(t, 25, durations.FocusMinutes)
	assert.Equal(t, 5, durations.BreakMinutes)
	assert.NoError(t, durations.Validate())
}

func TestIncreaseFocus_StaysInRangeOnStep(t *testing.T) {
	for n := 0; n < 20; n++ {
		durations := DefaultDurations()
		for i := 0; i < n; i++ {
			durations.IncreaseFocus()
		}
		assert.GreaterOrEqual(t, durations.FocusMinutes, MinFocusMinutes)
		assert.LessOrEqual(t, durations.FocusMinutes, MaxFocusMinutes)
		assert.Zero(t, durations.FocusMinutes%5, "n=%d", n)
	}
}

func TestIncreaseFocus_StopsAtMaximum(t *testing.T) {
	durations := Durations{FocusMinutes: 55, BreakMinutes: 5}
	durations.IncreaseFocus()
	assert.Equal(t, 60, durations.FocusMinutes)
	durations.IncreaseFocus()
	assert.Equal(t, 60, durations.FocusMinutes)
}

func TestDecreaseFocus_StopsAtMinimum(t *testing.T) {
	durations := Durations{FocusMinutes: 10, BreakMinutes: 5}
	durations.DecreaseFocus()
	assert.Equal(t, 5, durations.FocusMinutes)
	durations.DecreaseFocus()
	assert.Equal(t, 5, durations.FocusMinutes)
}

func TestDecreaseBreak_NeverBelowOne(t *testing.T) {
	durations := DefaultDurations()
	for i := 0; i < 10; i++ {
		durations.DecreaseBreak()
		assert.GreaterOrEqual(t, durations.BreakMinutes, MinBreakMinutes)
	}
	assert.Equal(t, 1, durations.BreakMinutes)
}

func TestIncreaseBreak_StopsAtMaximum(t *testing.T) {
	durations := DefaultDurations()
	for i := 0; i < 20; i++ {
		durations.IncreaseBreak()
	}
	assert.Equal(t, 15, durations.BreakMinutes)
}

func TestSeconds(t *testing.T) {
	durations := Durations{FocusMinutes: 30, BreakMinutes: 7}
	assert.Equal(t, 1800, durations.FocusSeconds())
	assert.Equal(t, 420, durations.BreakSeconds())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input Durations
		want  Durations
	}{
		{"in range", Durations{25, 5}, Durations{25, 5}},
		{"too small", Durations{0, 0}, Durations{5, 1}},
		{"too large", Durations{90, 30}, Durations{60, 15}},
		{"off step", Durations{27, 3}, Durations{25, 3}},
		{"negative", Durations{-10, -1}, Durations{5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		durations Durations
		wantErr   string
	}{
		{name: "defaults", durations: DefaultDurations()},
		{name: "bounds", durations: Durations{FocusMinutes: 5, BreakMinutes: 15}},
		{name: "focus off step", durations: Durations{FocusMinutes: 27, BreakMinutes: 5}, wantErr: "focus 27"},
		{name: "focus too long", durations: Durations{FocusMinutes: 65, BreakMinutes: 5}, wantErr: "focus 65"},
		{name: "upper bounds", durations: Durations{FocusMinutes: 60, BreakMinutes: 15}},
		{name: "break too short", durations: Durations{FocusMinutes: 25, BreakMinutes: 0}, wantErr: "break 0"},
		{name: "break too long", durations: Durations{FocusMinutes: 25, BreakMinutes: 16}, wantErr: "break 16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.durations.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDuration)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
