package mailqueue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/evently/notifier/internal/model"
)

// Repository provides methods to interact with the email_queue table. This
// service only ever enqueues; the external email consumer reads and completes
// the requests.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new email queue repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Enqueue inserts a pending email request and returns its ID.
func (r *Repository) Enqueue(ctx context.Context, item model.EmailQueueItem) (uuid.UUID, error) {
	query := `
		INSERT INTO email_queue (
		    "to", subject, body, event_id, template_id, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, item.To, item.Subject, item.Body, item.EventID, item.TemplateID, item.Status,
	).Scan(&item.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to enqueue email: %w", err)
	}

	return item.ID, nil
}
