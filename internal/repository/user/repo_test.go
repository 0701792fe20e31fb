package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "email", "push_token", "created_at", "updated_at"}).
		AddRow(id, "user@example.com", "device-token", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnRows(rows)

	u, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "user@example.com", u.Email)
	require.NotNil(t, u.PushToken)
	assert.Equal(t, "device-token", *u.PushToken)
}

func TestGetByID_NoToken(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "email", "push_token", "created_at", "updated_at"}).
		AddRow(id, "user@example.com", nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnRows(rows)

	u, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, u.PushToken)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "push_token", "created_at", "updated_at"}))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestClearPushToken(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearPushToken(context.Background(), id)
	assert.NoError(t, err)
}

func TestClearPushToken_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearPushToken(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
