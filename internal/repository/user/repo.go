package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/evently/notifier/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// Repository provides methods to interact with the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a recipient record by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `
		SELECT id, email, push_token, created_at, updated_at
		FROM users
		WHERE id = $1;
    `

	var u model.User
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PushToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// ClearPushToken removes a user's stored push token after the transport reported
// it invalid or unregistered.
func (r *Repository) ClearPushToken(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET push_token = NULL, updated_at = $1
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to clear push token: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
