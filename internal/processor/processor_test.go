package processor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/evently/notifier/internal/mocks/processor"
	sendermocks "github.com/evently/notifier/internal/mocks/sender"
	"github.com/evently/notifier/internal/model"
)

type processorMocks struct {
	users *mocks.MockuserRepo
	repo  *mocks.MocknotificationRepo
	logs  *mocks.MocklogRepo
	push  *sendermocks.MockSender
	email *sendermocks.MockSender
	inApp *sendermocks.MockSender
}

func setupProcessor(t *testing.T) (*Processor, processorMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := processorMocks{
		users: mocks.NewMockuserRepo(ctrl),
		repo:  mocks.NewMocknotificationRepo(ctrl),
		logs:  mocks.NewMocklogRepo(ctrl),
		push:  sendermocks.NewMockSender(ctrl),
		email: sendermocks.NewMockSender(ctrl),
		inApp: sendermocks.NewMockSender(ctrl),
	}

	p := New(m.users, m.repo, m.logs, m.push, m.email, m.inApp, 3)
	return p, m
}

func scheduledNotification(channel model.Channel) model.Notification {
	return model.Notification{
		ID:          uuid.New(),
		RecipientID: uuid.New(),
		Channel:     channel,
		Payload: model.Payload{
			Title:   "Event reminder",
			Body:    "Starts in 10 minutes",
			EventID: "event-42",
		},
		Status:       model.StatusScheduled,
		ScheduledFor: time.Now().Add(-time.Minute),
	}
}

func TestProcessor_Process_PushSuccess(t *testing.T) {
	p, m := setupProcessor(t)

	n := scheduledNotification(model.ChannelPush)
	user := model.User{ID: n.RecipientID, Email: "user@example.com"}

	m.users.EXPECT().GetByID(gomock.Any(), n.RecipientID).Return(user, nil)
	m.push.EXPECT().Send(gomock.Any(), user, n).Return(nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), n.ID, gomock.Any()).Return(nil)
	m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry model.DeliveryLog) (uuid.UUID, error) {
			assert.Equal(t, n.ID, entry.NotificationID)
			assert.Equal(t, model.StatusSent, entry.Status)
			assert.Equal(t, "event-42", entry.EventID)
			assert.Nil(t, entry.Error)
			require.NotNil(t, entry.SentAt)
			return uuid.New(), nil
		},
	)

	err := p.Process(context.Background(), n)
	assert.NoError(t, err)
}

func TestProcessor_Process_EmailSuccess(t *testing.T) {
	p, m := setupProcessor(t)

	n := scheduledNotification(model.ChannelEmail)
	user := model.User{ID: n.RecipientID, Email: "user@example.com"}

	m.users.EXPECT().GetByID(gomock.Any(), n.RecipientID).Return(user, nil)
	m.email.EXPECT().Send(gomock.Any(), user, n).Return(nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), n.ID, gomock.Any()).Return(nil)
	m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	err := p.Process(context.Background(), n)
	assert.NoError(t, err)
}

func TestProcessor_Process_RecipientNotFound_Retries(t *testing.T) {
	p, m := setupProcessor(t)

	n := scheduledNotification(model.ChannelPush)
	notFound := errors.New("user not found")

	m.users.EXPECT().GetByID(gomock.Any(), n.RecipientID).Return(model.User{}, notFound)
	m.repo.EXPECT().MarkRetry(gomock.Any(), n.ID, 1, gomock.Any(), gomock.Any()).Return(nil)

	err := p.Process(context.Background(), n)
	require.Error(t, err)
	assert.ErrorIs(t, err, notFound)
}

func TestProcessor_Process_FailureBelowCeiling_StaysScheduled(t *testing.T) {
	p, m := setupProcessor(t)

	n := scheduledNotification(model.ChannelPush)
	n.Attempts = 1
	user := model.User{ID: n.RecipientID}

	m.users.EXPECT().GetByID(gomock.Any(), n.RecipientID).Return(user, nil)
	m.push.EXPECT().Send(gomock.Any(), user, n).Return(errors.New("transport down"))
	m.repo.EXPECT().MarkRetry(gomock.Any(), n.ID, 2, "transport down", gomock.Any()).Return(nil)

	// No terminal outcome: nothing is logged.
	err := p.Process(context.Background(), n)
	assert.Error(t, err)
}

func TestProcessor_Process_CeilingReached_MarksFailed(t *testing.T) {
	p, m := setupProcessor(t)

	n := scheduledNotification(model.ChannelPush)
	n.Attempts = 2
	user := model.User{ID: n.RecipientID}

	m.users.EXPECT().GetByID(gomock.Any(), n.RecipientID).Return(user, nil)
	m.push.EXPECT().Send(gomock.Any(), user, n).Return(errors.New("transport down"))
	m.repo.EXPECT().MarkFailed(gomock.Any(), n.ID, 3, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ int, errMsg string, _ time.Time) error {
			assert.True(t, strings.HasPrefix(errMsg, "Max attempts reached:"))
			return nil
		},
	)
	m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry model.DeliveryLog) (uuid.UUID, error) {
			assert.Equal(t, model.StatusFailed, entry.Status)
			require.NotNil(t, entry.Error)
			assert.Contains(t, *entry.Error, "Max attempts reached:")
			assert.Nil(t, entry.SentAt)
			return uuid.New(), nil
		},
	)

	err := p.Process(context.Background(), n)
	assert.Error(t, err)
}

func TestProcessor_Process_UnsupportedChannel(t *testing.T) {
	p, m := setupProcessor(t)

	n := scheduledNotification(model.Channel("sms"))
	user := model.User{ID: n.RecipientID}

	m.users.EXPECT().GetByID(gomock.Any(), n.RecipientID).Return(user, nil)
	m.repo.EXPECT().MarkRetry(gomock.Any(), n.ID, 1, gomock.Any(), gomock.Any()).Return(nil)

	err := p.Process(context.Background(), n)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedChannel)
}

func TestProcessor_Process_LogFailureDoesNotFlipOutcome(t *testing.T) {
	p, m := setupProcessor(t)

	n := scheduledNotification(model.ChannelInApp)
	user := model.User{ID: n.RecipientID}

	m.users.EXPECT().GetByID(gomock.Any(), n.RecipientID).Return(user, nil)
	m.inApp.EXPECT().Send(gomock.Any(), user, n).Return(nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), n.ID, gomock.Any()).Return(nil)
	m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("log store down"))

	err := p.Process(context.Background(), n)
	assert.NoError(t, err)
}
