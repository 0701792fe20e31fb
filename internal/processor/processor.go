// Package processor orchestrates delivery of a single notification: recipient
// resolution, channel dispatch, status bookkeeping and delivery logging.
package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/evently/notifier/internal/model"
	"github.com/evently/notifier/internal/sender"
)

//go:generate mockgen -source=processor.go -destination=../mocks/processor/mock.go -package=mocks

var (
	// ErrUnsupportedChannel is returned for a channel value outside the known set.
	ErrUnsupportedChannel = errors.New("unsupported notification channel")
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

type notificationRepo interface {
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, attempts int, errMsg string, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, errMsg string, now time.Time) error
}

type logRepo interface {
	Create(ctx context.Context, entry model.DeliveryLog) (uuid.UUID, error)
}

// Processor runs the delivery state machine for one notification at a time.
type Processor struct {
	users         userRepo
	notifications notificationRepo
	logs          logRepo
	push          sender.Sender
	email         sender.Sender
	inApp         sender.Sender
	maxAttempts   int
}

// New creates a new notification processor.
func New(
	users userRepo,
	notifications notificationRepo,
	logs logRepo,
	push, email, inApp sender.Sender,
	maxAttempts int,
) *Processor {
	return &Processor{
		users:         users,
		notifications: notifications,
		logs:          logs,
		push:          push,
		email:         email,
		inApp:         inApp,
		maxAttempts:   maxAttempts,
	}
}

// Process resolves the recipient, dispatches to the matching channel sender and
// records the outcome.
//
// On success the notification becomes sent and a sent log entry is appended. On
// failure the attempt counter advances: below the retry ceiling the record stays
// scheduled with failure bookkeeping, at the ceiling it becomes failed with a
// failed log entry. The error is returned either way so batch-level accounting
// reflects the failure. Channel dispatch always completes before any status
// mutation.
func (p *Processor) Process(ctx context.Context, n model.Notification) error {
	if err := p.deliver(ctx, n); err != nil {
		return p.recordFailure(ctx, n, err)
	}

	now := time.Now()

	if err := p.notifications.MarkSent(ctx, n.ID, now); err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}

	p.appendLog(ctx, n, model.StatusSent, nil, &now)

	zlog.Logger.Info().
		Str("id", n.ID.String()).
		Str("channel", string(n.Channel)).
		Msg("notification sent")

	return nil
}

func (p *Processor) deliver(ctx context.Context, n model.Notification) error {
	user, err := p.users.GetByID(ctx, n.RecipientID)
	if err != nil {
		return fmt.Errorf("resolve recipient %s: %w", n.RecipientID, err)
	}

	switch n.Channel {
	case model.ChannelPush:
		return p.push.Send(ctx, user, n)
	case model.ChannelEmail:
		return p.email.Send(ctx, user, n)
	case model.ChannelInApp:
		return p.inApp.Send(ctx, user, n)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedChannel, n.Channel)
	}
}

// recordFailure advances the attempt counter and persists either retry or
// terminal-failure bookkeeping. The original delivery error is always returned.
func (p *Processor) recordFailure(ctx context.Context, n model.Notification, cause error) error {
	attempts := n.Attempts + 1
	now := time.Now()

	if attempts < p.maxAttempts {
		zlog.Logger.Warn().
			Err(cause).
			Str("id", n.ID.String()).
			Int("attempts", attempts).
			Msg("delivery failed, will retry")

		if err := p.notifications.MarkRetry(ctx, n.ID, attempts, cause.Error(), now); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to record retry")
		}

		return cause
	}

	finalErr := fmt.Sprintf("Max attempts reached: %s", cause.Error())

	zlog.Logger.Error().
		Err(cause).
		Str("id", n.ID.String()).
		Int("attempts", attempts).
		Msg("delivery failed permanently")

	if err := p.notifications.MarkFailed(ctx, n.ID, attempts, finalErr, now); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to record failure")
	}

	p.appendLog(ctx, n, model.StatusFailed, &finalErr, nil)

	return cause
}

// appendLog writes the terminal audit record. The append is best-effort: a log
// store failure must not flip an already-recorded delivery outcome.
func (p *Processor) appendLog(ctx context.Context, n model.Notification, status model.Status, errMsg *string, sentAt *time.Time) {
	entry := model.DeliveryLog{
		NotificationID: n.ID,
		EventID:        n.Payload.EventID,
		RecipientID:    n.RecipientID,
		Channel:        n.Channel,
		Status:         status,
		Error:          errMsg,
		SentAt:         sentAt,
	}

	if _, err := p.logs.Create(ctx, entry); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to append delivery log")
	}
}
