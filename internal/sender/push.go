package sender

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/evently/notifier/internal/model"
	"github.com/evently/notifier/pkg/push"
)

// Push delivers notifications through the push transport. A missing, invalid or
// unregistered device token redirects delivery to the in-app fallback, which
// counts as success for this channel.
type Push struct {
	transport pushTransport
	tokens    tokenStore
	fallback  Sender
}

// NewPush creates a new push sender with an in-app fallback.
func NewPush(transport pushTransport, tokens tokenStore, fallback Sender) *Push {
	return &Push{
		transport: transport,
		tokens:    tokens,
		fallback:  fallback,
	}
}

// Send delivers the notification to the user's device, or to the in-app inbox
// when push delivery cannot proceed. Transport errors other than token
// rejections propagate as failures.
func (s *Push) Send(ctx context.Context, user model.User, n model.Notification) error {
	if user.PushToken == nil || *user.PushToken == "" {
		zlog.Logger.Debug().
			Str("user_id", user.ID.String()).
			Msg("no push token, redirecting to in-app")
		return s.fallback.Send(ctx, user, n)
	}

	err := s.transport.Send(ctx, buildMessage(*user.PushToken, n))
	if err == nil {
		return nil
	}

	if errors.Is(err, push.ErrInvalidToken) || errors.Is(err, push.ErrTokenNotRegistered) {
		// Best-effort revocation; a store failure here must not block the fallback.
		if cerr := s.tokens.ClearPushToken(ctx, user.ID); cerr != nil {
			zlog.Logger.Warn().
				Err(cerr).
				Str("user_id", user.ID.String()).
				Msg("failed to clear push token")
		}

		zlog.Logger.Info().
			Str("user_id", user.ID.String()).
			Msg("push token rejected, redirecting to in-app")

		return s.fallback.Send(ctx, user, n)
	}

	return fmt.Errorf("send push notification: %w", err)
}

func buildMessage(token string, n model.Notification) push.Message {
	data := map[string]string{
		"eventId":      n.Payload.EventID,
		"type":         model.TypeEventReminder,
		"click_action": "FLUTTER_NOTIFICATION_CLICK",
	}
	for k, v := range n.Payload.Data {
		data[k] = v
	}

	return push.Message{
		Token: token,
		Notification: push.Notification{
			Title: n.Payload.Title,
			Body:  n.Payload.Body,
		},
		Data: data,
		Android: &push.AndroidConfig{
			Priority: "high",
			Notification: push.AndroidNotification{
				Sound:     "default",
				ChannelID: "event_reminders",
				Priority:  "high",
			},
		},
		APNS: &push.APNSConfig{
			Payload: push.APNSPayload{
				APS: push.APS{
					Sound:            "default",
					Badge:            1,
					ContentAvailable: true,
				},
			},
		},
	}
}
