package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/evently/notifier/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Repository provides methods to interact with the scheduled_notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetDueBatch selects up to limit notifications that are still scheduled and due
// at the given time, oldest first. Terminal records never match the predicate.
func (r *Repository) GetDueBatch(ctx context.Context, now time.Time, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, recipient_id, channel, payload, status, scheduled_for,
		       attempts, last_attempt_at, sent_at, error, created_at, updated_at
		FROM scheduled_notifications
		WHERE status = $1 AND scheduled_for <= $2
		ORDER BY scheduled_for
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, model.StatusScheduled, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get due notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var (
			n       model.Notification
			payload []byte
		)

		err := rows.Scan(
			&n.ID, &n.RecipientID, &n.Channel, &payload, &n.Status, &n.ScheduledFor,
			&n.Attempts, &n.LastAttemptAt, &n.SentAt, &n.Error, &n.CreatedAt, &n.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(payload, &n.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload for %s: %w", n.ID, err)
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkSent transitions a notification to the terminal sent status and stamps
// sent_at. The write is idempotent as a final state.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error {
	query := `
		UPDATE scheduled_notifications
		SET status = $1, sent_at = $2, updated_at = $2
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.StatusSent, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkRetry persists failure bookkeeping for a notification that is still below
// the retry ceiling, leaving its status as scheduled so a later scheduler pass
// picks it up again.
func (r *Repository) MarkRetry(ctx context.Context, id uuid.UUID, attempts int, errMsg string, now time.Time) error {
	query := `
		UPDATE scheduled_notifications
		SET attempts = $1, error = $2, last_attempt_at = $3, updated_at = $3
		WHERE id = $4;
    `

	res, err := r.db.ExecContext(ctx, query, attempts, errMsg, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification for retry: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkFailed transitions a notification to the terminal failed status after the
// retry ceiling is reached.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, errMsg string, now time.Time) error {
	query := `
		UPDATE scheduled_notifications
		SET status = $1, attempts = $2, error = $3, last_attempt_at = $4, updated_at = $4
		WHERE id = $5;
    `

	res, err := r.db.ExecContext(ctx, query, model.StatusFailed, attempts, errMsg, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// DeleteTerminalOlderThan deletes up to limit terminal-state notifications whose
// updated_at is older than the cutoff, as a single statement. Scheduled records
// never match regardless of age. Returns the number of deleted rows.
func (r *Repository) DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	query := `
		DELETE FROM scheduled_notifications
		WHERE id IN (
		    SELECT id FROM scheduled_notifications
		    WHERE status = ANY($1) AND updated_at < $2
		    LIMIT $3
		);
    `

	terminal := []string{
		string(model.StatusSent),
		string(model.StatusFailed),
		string(model.StatusCancelled),
	}

	res, err := r.db.ExecContext(ctx, query, pq.Array(terminal), cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted notifications: %w", err)
	}

	return int(rows), nil
}
