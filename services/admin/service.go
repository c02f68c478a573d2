package admin

import (
	"context"
	"fmt"

	applicationRepo "carewell/database/repository/application"
	"carewell/models"
	"carewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// reviewStatuses are the statuses an admin may set on an application.
var reviewStatuses = map[string]bool{
	models.StatusInReview: true,
	models.StatusApproved: true,
	models.StatusRejected: true,
}

// ListApplications returns a filtered, paginated application listing.
func (s *DefaultAdminService) ListApplications(ctx context.Context, status, userID string, page, pageSize int) (*ApplicationPage, error) {
	apps, total, err := s.Applications.List(applicationRepo.ApplicationQuery{
		Status:   status,
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return &ApplicationPage{
		Applications: apps,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// GetApplication returns any application by ID.
func (s *DefaultAdminService) GetApplication(ctx context.Context, applicationID string) (*models.Application, error) {
	app, err := s.Applications.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fmt.Errorf("application %s not found", applicationID)
	}
	return app, nil
}

// UpdateApplicationStatus moves a submitted application through review and
// notifies the applicant.
func (s *DefaultAdminService) UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*models.Application, error) {
	if !reviewStatuses[status] {
		return nil, fmt.Errorf("invalid review status %q", status)
	}

	app, err := s.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status == models.StatusDraft {
		return nil, fmt.Errorf("application %s has not been submitted", applicationID)
	}

	if err := s.Applications.UpdateFields(applicationID, bson.M{"status": status}); err != nil {
		return nil, err
	}
	app.Status = status

	notifErr := s.Notification.NotifyUser(ctx, app.UserID, models.NotifStatusChanged,
		"Application status updated",
		fmt.Sprintf("Your application is now %s.", status),
		map[string]string{"applicationId": applicationID, "status": status})
	if notifErr != nil {
		utils.GetLogger().Warn("status updated but notification failed",
			zap.String("applicationId", applicationID), zap.Error(notifErr))
	}
	return app, nil
}

// VerifyDocument marks an attached document as verified and notifies the
// applicant.
func (s *DefaultAdminService) VerifyDocument(ctx context.Context, applicationID, documentID string) (*models.Application, error) {
	app, err := s.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range app.Documents {
		if app.Documents[i].ID == documentID {
			app.Documents[i].Status = models.DocStatusVerified
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("document %s not found on application %s", documentID, applicationID)
	}

	if err := s.Applications.UpdateFields(applicationID, bson.M{"documents": app.Documents}); err != nil {
		return nil, err
	}

	notifErr := s.Notification.NotifyUser(ctx, app.UserID, models.NotifDocumentVerified,
		"Document verified",
		"One of your uploaded documents has been verified.",
		map[string]string{"applicationId": applicationID, "documentId": documentID})
	if notifErr != nil {
		utils.GetLogger().Warn("document verified but notification failed",
			zap.String("applicationId", applicationID), zap.Error(notifErr))
	}
	return app, nil
}

// GetPaymentSettings returns the current payment configuration.
func (s *DefaultAdminService) GetPaymentSettings(ctx context.Context) (models.PaymentSettings, error) {
	return s.Settings.GetPaymentSettings()
}

// UpdatePaymentSettings saves the payment configuration.
func (s *DefaultAdminService) UpdatePaymentSettings(ctx context.Context, settings models.PaymentSettings) error {
	if settings.FullUpfrontFee <= 0 || settings.MilestoneFee <= 0 || settings.DeferredFee <= 0 {
		return fmt.Errorf("plan fees must be greater than zero")
	}
	return s.Settings.SavePaymentSettings(settings)
}

// GetAllUsers lists all accounts.
func (s *DefaultAdminService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.GetAll()
}
