package messaging

import (
	"context"
	"fmt"
	"time"

	notificationRepo "coden/database/repository/notification"
	"coden/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService renders a template, delivers it and records the
// dispatch for staff visibility.
type NotificationService interface {
	Notify(ctx context.Context, bookingID, phone, templateType string, data TemplateData) error
	RefreshStatus(ctx context.Context, messageID string) (string, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Provider Provider
	Repo     notificationRepo.NotificationRepository
	Logger   *zap.Logger
}

// Notify renders templateType with data, sends it to phone and records the result.
func (s *DefaultNotificationService) Notify(ctx context.Context, bookingID, phone, templateType string, data TemplateData) error {
	message, err := Render(templateType, data)
	if err != nil {
		return err
	}

	record := &models.NotificationRecord{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Phone:     phone,
		Type:      templateType,
		SentAt:    time.Now(),
	}

	messageID, err := s.Provider.Send(ctx, phone, message)
	if err != nil {
		record.Status = models.MessageFailed
		if repoErr := s.Repo.Create(record); repoErr != nil {
			s.Logger.Warn("failed to record failed notification", zap.Error(repoErr))
		}
		return fmt.Errorf("failed to send %s notification: %w", templateType, err)
	}

	record.MessageID = messageID
	record.Status = models.MessageSent
	if err := s.Repo.Create(record); err != nil {
		s.Logger.Warn("failed to record notification", zap.Error(err))
	}
	return nil
}

// RefreshStatus polls the provider for delivery status and stores it.
func (s *DefaultNotificationService) RefreshStatus(ctx context.Context, messageID string) (string, error) {
	status, err := s.Provider.GetStatus(ctx, messageID)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateStatus(messageID, status); err != nil {
		s.Logger.Warn("failed to update notification status", zap.Error(err))
	}
	return status, nil
}
