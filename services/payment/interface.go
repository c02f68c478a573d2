package payment

import (
	"context"
	"errors"

	applicationRepo "carewell/database/repository/application"
	paymentRepo "carewell/database/repository/payment"
	settingsRepo "carewell/database/repository/settings"
	"carewell/models"
	"carewell/services/notification"
	"carewell/services/tasks"

	"github.com/stripe/stripe-go/v76"
)

// ErrInvalidAmount rejects non-positive payment amounts.
var ErrInvalidAmount = errors.New("payment amount must be greater than zero")

// ErrExceedsBalance rejects amounts above the current balance due.
var ErrExceedsBalance = errors.New("payment amount exceeds balance due")

// PaymentService computes payment options and records payment attempts.
type PaymentService interface {
	// GetOptions returns the suggested next-payment menu for an application.
	GetOptions(ctx context.Context, userID, applicationID string) ([]models.PaymentOption, error)
	// RecordPayment validates the amount against the balance due, records a
	// payment row, and updates the application's paid amount and status.
	RecordPayment(ctx context.Context, userID string, req models.PaymentRequest) (*models.Payment, error)
	// ListForUser returns a user's payments, newest first.
	ListForUser(ctx context.Context, userID string) ([]models.Payment, error)
	// ListForApplication returns payments against an application, oldest first.
	ListForApplication(ctx context.Context, userID, applicationID string) ([]models.Payment, error)
}

// IntentClient creates payment intents with the card processor. Abstracted so
// tests run without Stripe.
type IntentClient interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo         paymentRepo.PaymentRepository
	Applications applicationRepo.ApplicationRepository
	Settings     settingsRepo.SettingsRepository
	Notification notification.NotificationService
	Intents      IntentClient
	Tasks        tasks.Enqueuer
}
