package notificationRepo

import "carewell/models"

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// GetByUserID retrieves a user's notifications, newest first.
	GetByUserID(userID string) ([]models.Notification, error)
	// GetAdminInbox retrieves admin-facing notifications, newest first.
	GetAdminInbox() ([]models.Notification, error)
	// MarkRead flags a notification as read.
	MarkRead(id string) error
}
