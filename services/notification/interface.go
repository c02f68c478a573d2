package notification

import (
	"context"

	notificationRepo "carewell/database/repository/notification"
	userRepo "carewell/database/repository/user"
	"carewell/models"
)

// NotificationService persists in-app notifications and delivers best-effort
// FCM pushes. Push failures never fail the calling write.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, notifType, title, body string, data map[string]string) error
	NotifyAdmin(ctx context.Context, notifType, title, body string, data map[string]string) error
	GetUserNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	GetAdminInbox(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}
