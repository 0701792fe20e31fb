package sender

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/evently/notifier/internal/model"
)

// InApp delivers notifications by creating inbox entries for the user.
type InApp struct {
	inbox inboxRepo
}

// NewInApp creates a new in-app sender.
func NewInApp(inbox inboxRepo) *InApp {
	return &InApp{inbox: inbox}
}

// Send creates an unread in-app notification record for the user.
func (s *InApp) Send(ctx context.Context, user model.User, n model.Notification) error {
	item := model.InAppNotification{
		UserID:  user.ID,
		Title:   n.Payload.Title,
		Body:    n.Payload.Body,
		EventID: n.Payload.EventID,
		Type:    model.TypeEventReminder,
		Read:    false,
	}

	id, err := s.inbox.Create(ctx, item)
	if err != nil {
		return fmt.Errorf("create in-app notification: %w", err)
	}

	zlog.Logger.Debug().
		Str("id", id.String()).
		Str("user_id", user.ID.String()).
		Msg("in-app notification created")

	return nil
}
