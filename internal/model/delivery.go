package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryLog is an append-only audit record written once per terminal delivery
// outcome. Interim retries are not logged.
type DeliveryLog struct {
	ID             uuid.UUID  `json:"id"`
	NotificationID uuid.UUID  `json:"notification_id"`
	EventID        string     `json:"event_id"`
	RecipientID    uuid.UUID  `json:"recipient_id"`
	Channel        Channel    `json:"channel"`
	Status         Status     `json:"status"`            // sent or failed
	Error          *string    `json:"error,omitempty"`   // failure message, nil on success
	SentAt         *time.Time `json:"sent_at,omitempty"` // nil for failed deliveries
	CreatedAt      time.Time  `json:"created_at"`
}

// EmailStatusPending is the state of a freshly enqueued email request; the
// external email consumer owns the record from there.
const EmailStatusPending = "pending"

// EmailQueueItem is a request record handed to the external email subsystem.
type EmailQueueItem struct {
	ID         uuid.UUID `json:"id"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	EventID    string    `json:"event_id"`
	TemplateID string    `json:"template_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// InAppNotification is a user-visible inbox entry, created either as the primary
// delivery for the in_app channel or as a fallback when push cannot proceed.
type InAppNotification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
