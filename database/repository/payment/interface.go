package paymentRepo

import "carewell/models"

// PaymentRepository defines methods for payment data access. Payment rows are
// append-only from this flow; status changes come from the processor or an
// admin.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// GetByID retrieves a payment by its unique ID.
	GetByID(id string) (*models.Payment, error)
	// GetByApplicationID retrieves all payments against an application, oldest first.
	GetByApplicationID(applicationID string) ([]models.Payment, error)
	// GetByUserID retrieves all of a user's payments, newest first.
	GetByUserID(userID string) ([]models.Payment, error)
	// UpdateStatus moves a payment to a new status.
	UpdateStatus(id, status string) error
}
