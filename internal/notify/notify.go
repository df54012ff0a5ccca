// Package notify implements session-complete alerts: an audible chime and
// desktop notifications.
package notify

import (
	"context"
	"errors"
	"fmt"

	"focuscycle/internal/core/timekeeper"
	"focuscycle/internal/i18n"
)

// Multi fans a completion out to every notifier. One failing notifier does
// not prevent the others from running.
type Multi []timekeeper.Notifier

// SessionComplete implements timekeeper.Notifier.
func (multi Multi) SessionComplete(ctx context.Context, completion timekeeper.Completion) error {
	var errs []error
	for _, notifier := range multi {
		if notifier == nil {
			continue
		}
		if err := safeNotify(ctx, notifier, completion); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Func adapts a function to timekeeper.Notifier.
type Func func(ctx context.Context, completion timekeeper.Completion) error

// SessionComplete implements timekeeper.Notifier.
func (fn Func) SessionComplete(ctx context.Context, completion timekeeper.Completion) error {
	return fn(ctx, completion)
}

// Message returns the title and body announcing a completion.
func Message(completion timekeeper.Completion) (string, string) {
	body := i18n.T("Back to focus")
	if completion.Next == timekeeper.KindOnBreak {
		body = i18n.T("Time for a break")
	}
	return i18n.T("Session complete"), body
}

func safeNotify(ctx context.Context, notifier timekeeper.Notifier, completion timekeeper.Completion) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("notifier panic: %v", recovered)
		}
	}()
	return notifier.SessionComplete(ctx, completion)
}
