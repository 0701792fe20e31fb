package sender

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/evently/notifier/internal/mocks/sender"
	"github.com/evently/notifier/internal/model"
)

func TestInApp_Send_CreatesUnreadRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inbox := mocks.NewMockinboxRepo(ctrl)
	s := NewInApp(inbox)

	user := model.User{ID: uuid.New()}
	n := model.Notification{
		ID:          uuid.New(),
		RecipientID: user.ID,
		Channel:     model.ChannelInApp,
		Payload:     model.Payload{Title: "Event reminder", Body: "Starts soon", EventID: "event-42"},
	}

	inbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item model.InAppNotification) (uuid.UUID, error) {
			assert.Equal(t, user.ID, item.UserID)
			assert.Equal(t, "Event reminder", item.Title)
			assert.Equal(t, "event-42", item.EventID)
			assert.Equal(t, model.TypeEventReminder, item.Type)
			assert.False(t, item.Read)
			return uuid.New(), nil
		},
	)

	err := s.Send(context.Background(), user, n)
	assert.NoError(t, err)
}

func TestInApp_Send_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inbox := mocks.NewMockinboxRepo(ctrl)
	s := NewInApp(inbox)

	inbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("insert failed"))

	err := s.Send(context.Background(), model.User{}, model.Notification{})
	assert.Error(t, err)
}
