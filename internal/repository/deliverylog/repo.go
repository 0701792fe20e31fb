package deliverylog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/evently/notifier/internal/model"
)

// Repository provides methods to interact with the notification_logs table.
// Log entries are append-only and never mutated or deleted by this service.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create appends an audit record for a terminal delivery outcome and returns
// its ID.
func (r *Repository) Create(ctx context.Context, entry model.DeliveryLog) (uuid.UUID, error) {
	query := `
		INSERT INTO notification_logs (
		    notification_id, event_id, recipient_id, channel, status, error, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query,
		entry.NotificationID, entry.EventID, entry.RecipientID,
		entry.Channel, entry.Status, entry.Error, entry.SentAt,
	).Scan(&entry.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create delivery log: %w", err)
	}

	return entry.ID, nil
}
