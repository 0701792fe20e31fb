package model

import (
	"time"

	"github.com/google/uuid"
)

// Channel is the delivery mechanism for a notification.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelInApp Channel = "in_app"
)

// Status is the lifecycle state of a notification.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further processing happens for the status.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed || s == StatusCancelled
}

// TypeEventReminder tags reminders produced by the event scheduler; it is carried
// through push data payloads, in-app records and email queue templates.
const TypeEventReminder = "event_reminder"

// Payload is the channel-agnostic content of a notification.
type Payload struct {
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	EventID string            `json:"event_id"`
	Data    map[string]string `json:"data,omitempty"` // channel-specific extras
}

// Notification represents one unit of pending or completed delivery work.
type Notification struct {
	ID            uuid.UUID  `json:"id"`                        // unique identifier for the notification
	RecipientID   uuid.UUID  `json:"recipient_id"`              // user the notification is addressed to
	Channel       Channel    `json:"channel"`                   // delivery method: push, email or in_app
	Payload       Payload    `json:"payload"`                   // content of the notification
	Status        Status     `json:"status"`                    // current lifecycle state
	ScheduledFor  time.Time  `json:"scheduled_for"`             // time the notification becomes due
	Attempts      int        `json:"attempts"`                  // delivery attempts made so far
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"` // timestamp of the most recent attempt
	SentAt        *time.Time `json:"sent_at,omitempty"`         // set if and only if status is sent
	Error         *string    `json:"error,omitempty"`           // last failure message
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
