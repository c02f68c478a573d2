package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"carewell/models"
	"carewell/services/tasks"
	"carewell/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// reminderDelay is how long after a partial payment the reminder fires.
const reminderDelay = 7 * 24 * time.Hour

// StripeIntentClient creates payment intents against the live Stripe API.
type StripeIntentClient struct{}

func (StripeIntentClient) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

// GetOptions returns the suggested next-payment menu for an application.
func (s *DefaultPaymentService) GetOptions(ctx context.Context, userID, applicationID string) ([]models.PaymentOption, error) {
	app, err := s.ownedApplication(userID, applicationID)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings.GetPaymentSettings()
	if err != nil {
		utils.GetLogger().Warn("using default payment settings", zap.Error(err))
		settings = models.DefaultPaymentSettings()
	}
	return SuggestedAmounts(app.PaymentPlan, app.TotalFee, app.PaidAmount, settings), nil
}

// RecordPayment validates the amount bound, records the payment attempt and
// rolls the application's paid amount and coarse status forward. The three
// writes are sequential; a failed later write is surfaced and retried by the
// caller rather than compensated.
func (s *DefaultPaymentService) RecordPayment(ctx context.Context, userID string, req models.PaymentRequest) (*models.Payment, error) {
	app, err := s.ownedApplication(userID, req.ApplicationID)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Amount > app.BalanceDue() {
		return nil, ErrExceedsBalance
	}

	settings, err := s.Settings.GetPaymentSettings()
	if err != nil {
		utils.GetLogger().Warn("using default payment settings", zap.Error(err))
		settings = models.DefaultPaymentSettings()
	}

	fee := ProcessingFee(req.Amount, req.Method, settings)
	p := &models.Payment{
		ID:            uuid.New().String(),
		ApplicationID: app.ID,
		UserID:        userID,
		Amount:        req.Amount,
		ProcessingFee: fee,
		TotalCharged:  req.Amount + fee,
		Method:        req.Method,
		Installment:   req.Installment,
		Status:        models.PaymentPending,
		CreatedAt:     time.Now(),
	}

	if req.Method == models.MethodCard && s.Intents != nil {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(math.Round(p.TotalCharged * 100))),
			Currency: stripe.String(string(stripe.CurrencyUSD)),
			Metadata: map[string]string{
				"applicationId": app.ID,
				"paymentId":     p.ID,
			},
		}
		intent, err := s.Intents.New(params)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		p.StripePaymentIntentID = intent.ID
	}

	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	newPaid := app.PaidAmount + req.Amount
	status := app.Status
	switch {
	case newPaid >= app.TotalFee:
		status = models.StatusPaymentComplete
	case newPaid > 0:
		status = models.StatusPartiallyPaid
	}
	fields := bson.M{"paidAmount": newPaid, "status": status}
	if err := s.Applications.UpdateFields(app.ID, fields); err != nil {
		return nil, fmt.Errorf("payment recorded but balance update failed: %w", err)
	}

	notifErr := s.Notification.NotifyUser(ctx, userID, models.NotifPaymentRecorded,
		"Payment received",
		fmt.Sprintf("We received your payment of %.2f via %s.", req.Amount, req.Method),
		map[string]string{"applicationId": app.ID, "paymentId": p.ID})
	if notifErr != nil {
		utils.GetLogger().Warn("payment recorded but notification failed",
			zap.String("paymentId", p.ID), zap.Error(notifErr))
	}

	if balance := app.TotalFee - newPaid; balance > 0 {
		s.scheduleReminder(userID, app.ID, balance)
	}
	return p, nil
}

// ListForUser returns a user's payments, newest first.
func (s *DefaultPaymentService) ListForUser(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.Repo.GetByUserID(userID)
}

// ListForApplication returns payments against an application, oldest first.
func (s *DefaultPaymentService) ListForApplication(ctx context.Context, userID, applicationID string) ([]models.Payment, error) {
	if _, err := s.ownedApplication(userID, applicationID); err != nil {
		return nil, err
	}
	return s.Repo.GetByApplicationID(applicationID)
}

// ownedApplication loads an application and checks it belongs to the user.
func (s *DefaultPaymentService) ownedApplication(userID, applicationID string) (*models.Application, error) {
	app, err := s.Applications.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil || app.UserID != userID {
		return nil, fmt.Errorf("application %s not found", applicationID)
	}
	return app, nil
}

// scheduleReminder queues a payment reminder. Best-effort.
func (s *DefaultPaymentService) scheduleReminder(userID, applicationID string, balance float64) {
	if s.Tasks == nil {
		return
	}
	payload := tasks.PaymentReminderPayload{
		UserID:        userID,
		ApplicationID: applicationID,
		BalanceDue:    balance,
	}
	task, opts, err := tasks.NewPaymentReminderTask(payload, time.Now().Add(reminderDelay))
	if err == nil {
		err = s.Tasks.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to schedule payment reminder",
			zap.String("applicationId", applicationID), zap.Error(err))
	}
}
