package sender

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/evently/notifier/internal/model"
)

// Email delivers notifications by enqueuing requests for the external email
// subsystem. Enqueuing is the success condition; actual transmission is the
// consumer's concern.
type Email struct {
	queue mailQueue
}

// NewEmail creates a new email sender.
func NewEmail(queue mailQueue) *Email {
	return &Email{queue: queue}
}

// Send enqueues a pending email request addressed to the user.
func (s *Email) Send(ctx context.Context, user model.User, n model.Notification) error {
	item := model.EmailQueueItem{
		To:         user.Email,
		Subject:    n.Payload.Title,
		Body:       n.Payload.Body,
		EventID:    n.Payload.EventID,
		TemplateID: model.TypeEventReminder,
		Status:     model.EmailStatusPending,
	}

	id, err := s.queue.Enqueue(ctx, item)
	if err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}

	zlog.Logger.Debug().
		Str("id", id.String()).
		Str("to", user.Email).
		Msg("email queued")

	return nil
}
