package inbox

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/evently/notifier/internal/model"
)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(&dbpg.DB{Master: db})

	recordID := uuid.New()
	item := model.InAppNotification{
		UserID:  uuid.New(),
		Title:   "Event reminder",
		Body:    "Starts soon",
		EventID: "event-42",
		Type:    model.TypeEventReminder,
		Read:    false,
	}

	mock.ExpectQuery("INSERT INTO in_app_notifications").
		WithArgs(item.UserID, item.Title, item.Body, item.EventID, item.Type, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(recordID))

	id, err := repo.Create(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, recordID, id)
}
