// Package sender contains the per-channel delivery strategies. Each sender
// turns a notification payload into a side effect against its channel's sink:
// the push transport, the email queue or the in-app inbox.
package sender

import (
	"context"

	"github.com/google/uuid"

	"github.com/evently/notifier/internal/model"
	"github.com/evently/notifier/pkg/push"
)

//go:generate mockgen -source=sender.go -destination=../mocks/sender/mock.go -package=mocks

// Sender delivers one notification to a resolved recipient.
type Sender interface {
	Send(ctx context.Context, user model.User, n model.Notification) error
}

type inboxRepo interface {
	Create(ctx context.Context, item model.InAppNotification) (uuid.UUID, error)
}

type mailQueue interface {
	Enqueue(ctx context.Context, item model.EmailQueueItem) (uuid.UUID, error)
}

type pushTransport interface {
	Send(ctx context.Context, msg push.Message) error
}

type tokenStore interface {
	ClearPushToken(ctx context.Context, id uuid.UUID) error
}
