package notification

import (
	"context"
	"fmt"

	"carewell/models"
	"carewell/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotifyUser persists a notification row for the user and sends a best-effort
// push to their registered device.
func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, notifType, title, body string, data map[string]string) error {
	n := &models.Notification{
		ID:       uuid.New().String(),
		UserID:   userID,
		Audience: models.AudienceUser,
		Type:     notifType,
		Title:    title,
		Body:     body,
		Data:     data,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to persist user notification: %w", err)
	}

	s.pushToUser(ctx, userID, title, body, data)
	return nil
}

// NotifyAdmin persists an admin-inbox notification row.
func (s *DefaultNotificationService) NotifyAdmin(ctx context.Context, notifType, title, body string, data map[string]string) error {
	n := &models.Notification{
		ID:       uuid.New().String(),
		Audience: models.AudienceAdmin,
		Type:     notifType,
		Title:    title,
		Body:     body,
		Data:     data,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to persist admin notification: %w", err)
	}
	return nil
}

// pushToUser looks up the user's FCM token and sends a push. Failures are
// logged and swallowed.
func (s *DefaultNotificationService) pushToUser(ctx context.Context, userID, title, body string, data map[string]string) {
	logger := utils.GetLogger()
	if utils.FCMClient == nil {
		return
	}

	usr, err := s.Users.GetByID(userID)
	if err != nil || usr == nil {
		logger.Warn("push skipped: could not load user", zap.String("userID", userID), zap.Error(err))
		return
	}
	if usr.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("failed to send FCM push", zap.String("userID", userID), zap.Error(err))
	}
}

// GetUserNotifications returns a user's notifications, newest first.
func (s *DefaultNotificationService) GetUserNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.GetByUserID(userID)
}

// GetAdminInbox returns admin-facing notifications, newest first.
func (s *DefaultNotificationService) GetAdminInbox(ctx context.Context) ([]models.Notification, error) {
	return s.Repo.GetAdminInbox()
}

// MarkRead flags a notification as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(id)
}
