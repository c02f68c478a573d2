package admin

import (
	"context"

	applicationRepo "carewell/database/repository/application"
	settingsRepo "carewell/database/repository/settings"
	userRepo "carewell/database/repository/user"
	"carewell/models"
	"carewell/services/notification"
)

// ApplicationPage is one page of the admin application listing.
type ApplicationPage struct {
	Applications []models.Application `json:"applications"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"pageSize"`
}

// AdminService manages applications, documents and payment configuration
// from the admin console.
type AdminService interface {
	// ListApplications returns a filtered, paginated application listing.
	ListApplications(ctx context.Context, status, userID string, page, pageSize int) (*ApplicationPage, error)
	// GetApplication returns any application by ID.
	GetApplication(ctx context.Context, applicationID string) (*models.Application, error)
	// UpdateApplicationStatus moves a submitted application through review.
	UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*models.Application, error)
	// VerifyDocument marks an attached document as verified.
	VerifyDocument(ctx context.Context, applicationID, documentID string) (*models.Application, error)

	GetPaymentSettings(ctx context.Context) (models.PaymentSettings, error)
	UpdatePaymentSettings(ctx context.Context, s models.PaymentSettings) error

	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Applications applicationRepo.ApplicationRepository
	Users        userRepo.UserRepository
	Settings     settingsRepo.SettingsRepository
	Notification notification.NotificationService
}
