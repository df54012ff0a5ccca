package notify

import (
	"context"

	"fyne.io/fyne/v2"

	"focuscycle/internal/core/timekeeper"
)

// Sender delivers desktop notifications; fyne.App satisfies it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// Desktop posts a system notification on every zero-crossing.
type Desktop struct {
	sender Sender
	do     func(func())
}

// NewDesktop creates a Desktop notifier that posts through sender on the
// fyne main goroutine.
func NewDesktop(sender Sender) *Desktop {
	return &Desktop{sender: sender, do: fyne.Do}
}

// SessionComplete implements timekeeper.Notifier.
func (desktop *Desktop) SessionComplete(_ context.Context, completion timekeeper.Completion) error {
	title, body := Message(completion)
	notification := fyne.NewNotification(title, body)
	desktop.do(func() {
		desktop.sender.SendNotification(notification)
	})
	return nil
}
