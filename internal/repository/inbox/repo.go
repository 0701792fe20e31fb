package inbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/evently/notifier/internal/model"
)

// Repository provides methods to interact with the in_app_notifications table.
// Records are insert-only for this service; the in-app feature owns them after
// creation.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new inbox repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new in-app notification and returns its ID.
func (r *Repository) Create(ctx context.Context, item model.InAppNotification) (uuid.UUID, error) {
	query := `
		INSERT INTO in_app_notifications (
		    user_id, title, body, event_id, type, read
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, item.UserID, item.Title, item.Body, item.EventID, item.Type, item.Read,
	).Scan(&item.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create in-app notification: %w", err)
	}

	return item.ID, nil
}
