package messaging

import (
	"context"
	"errors"
	"testing"

	notificationRepo "coden/database/repository/notification"
	"coden/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProvider struct {
	sendErr error
	status  string
}

func (f *fakeProvider) Send(ctx context.Context, phone, message string) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return "msg-1", nil
}

func (f *fakeProvider) GetStatus(ctx context.Context, messageID string) (string, error) {
	return f.status, nil
}

func TestNotifyRecordsDispatch(t *testing.T) {
	repo := notificationRepo.NewMemoryNotificationRepo()
	svc := &DefaultNotificationService{
		Provider: &fakeProvider{},
		Repo:     repo,
		Logger:   zap.NewNop(),
	}

	err := svc.Notify(context.Background(), "b-1", "+628111234567", models.NotifyCheckInCode, TemplateData{
		CustomerName: "Budi",
		CheckInCode:  "CODENABCDE",
	})
	require.NoError(t, err)

	records, err := repo.ListByBooking("b-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.MessageSent, records[0].Status)
	assert.Equal(t, "msg-1", records[0].MessageID)
	assert.Equal(t, models.NotifyCheckInCode, records[0].Type)
}

func TestNotifyRecordsFailure(t *testing.T) {
	repo := notificationRepo.NewMemoryNotificationRepo()
	svc := &DefaultNotificationService{
		Provider: &fakeProvider{sendErr: errors.New("provider down")},
		Repo:     repo,
		Logger:   zap.NewNop(),
	}

	err := svc.Notify(context.Background(), "b-1", "+628111234567", models.NotifyThankYou, TemplateData{CustomerName: "Budi"})
	require.Error(t, err)

	records, err := repo.ListByBooking("b-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.MessageFailed, records[0].Status)
}

func TestNotifyRejectsUnknownTemplate(t *testing.T) {
	repo := notificationRepo.NewMemoryNotificationRepo()
	svc := &DefaultNotificationService{
		Provider: &fakeProvider{},
		Repo:     repo,
		Logger:   zap.NewNop(),
	}

	err := svc.Notify(context.Background(), "b-1", "+628111234567", "smoke_signal", TemplateData{})
	assert.Error(t, err)

	records, err := repo.ListByBooking("b-1")
	require.NoError(t, err)
	assert.Empty(t, records, "nothing was dispatched, nothing is recorded")
}

func TestRefreshStatus(t *testing.T) {
	repo := notificationRepo.NewMemoryNotificationRepo()
	svc := &DefaultNotificationService{
		Provider: &fakeProvider{status: models.MessageDelivered},
		Repo:     repo,
		Logger:   zap.NewNop(),
	}

	require.NoError(t, svc.Notify(context.Background(), "b-1", "+628111234567", models.NotifyThankYou, TemplateData{CustomerName: "Budi"}))

	status, err := svc.RefreshStatus(context.Background(), "msg-1")
	require.NoError(t, err)
	assert.Equal(t, models.MessageDelivered, status)

	records, err := repo.ListByBooking("b-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.MessageDelivered, records[0].Status)
}
