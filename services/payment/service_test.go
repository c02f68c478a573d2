package payment

import (
	"context"
	"testing"

	applicationRepo "carewell/database/repository/application"
	"carewell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hibiken/asynq"
)

type fakePaymentRepo struct {
	created []*models.Payment
}

func (f *fakePaymentRepo) Create(p *models.Payment) error { f.created = append(f.created, p); return nil }
func (f *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePaymentRepo) GetByApplicationID(applicationID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.created {
		if p.ApplicationID == applicationID {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (f *fakePaymentRepo) GetByUserID(userID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.created {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (f *fakePaymentRepo) UpdateStatus(id, status string) error { return nil }

type fakeApplicationRepo struct {
	apps        map[string]*models.Application
	updateCalls []bson.M
}

func (f *fakeApplicationRepo) GetByID(id string) (*models.Application, error) {
	if app, ok := f.apps[id]; ok {
		copied := *app
		return &copied, nil
	}
	return nil, nil
}
func (f *fakeApplicationRepo) GetDraftByUserID(userID string) (*models.Application, error) {
	for _, app := range f.apps {
		if app.UserID == userID && app.Status == models.StatusDraft {
			copied := *app
			return &copied, nil
		}
	}
	return nil, nil
}
func (f *fakeApplicationRepo) GetByUserID(userID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range f.apps {
		if app.UserID == userID {
			out = append(out, *app)
		}
	}
	return out, nil
}
func (f *fakeApplicationRepo) UpsertDraft(app *models.Application, expectedVersion int64) (*models.Application, error) {
	app.Version = expectedVersion + 1
	copied := *app
	f.apps[app.ID] = &copied
	return app, nil
}
func (f *fakeApplicationRepo) UpdateFields(id string, fields bson.M) error {
	f.updateCalls = append(f.updateCalls, fields)
	app, ok := f.apps[id]
	if !ok {
		return nil
	}
	if v, ok := fields["paidAmount"]; ok {
		app.PaidAmount = v.(float64)
	}
	if v, ok := fields["status"]; ok {
		app.Status = v.(string)
	}
	return nil
}
func (f *fakeApplicationRepo) List(q applicationRepo.ApplicationQuery) ([]models.Application, int64, error) {
	return nil, 0, nil
}
func (f *fakeApplicationRepo) Delete(id string) error { return nil }

type fakeNotifier struct {
	userNotes  []string
	adminNotes []string
}

func (f *fakeNotifier) NotifyUser(ctx context.Context, userID, notifType, title, body string, data map[string]string) error {
	f.userNotes = append(f.userNotes, notifType)
	return nil
}
func (f *fakeNotifier) NotifyAdmin(ctx context.Context, notifType, title, body string, data map[string]string) error {
	f.adminNotes = append(f.adminNotes, notifType)
	return nil
}
func (f *fakeNotifier) GetUserNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}
func (f *fakeNotifier) GetAdminInbox(ctx context.Context) ([]models.Notification, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkRead(ctx context.Context, id string) error { return nil }

type fakeSettingsRepo struct {
	settings models.PaymentSettings
}

func (f *fakeSettingsRepo) GetPaymentSettings() (models.PaymentSettings, error) {
	return f.settings, nil
}
func (f *fakeSettingsRepo) SavePaymentSettings(s models.PaymentSettings) error {
	f.settings = s
	return nil
}

type fakeIntentClient struct {
	params []*stripe.PaymentIntentParams
}

func (f *fakeIntentClient) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = append(f.params, params)
	return &stripe.PaymentIntent{ID: "pi_test"}, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) error {
	f.tasks = append(f.tasks, task)
	return nil
}

func newPaymentFixture(app *models.Application) (*DefaultPaymentService, *fakePaymentRepo, *fakeApplicationRepo, *fakeNotifier, *fakeIntentClient, *fakeEnqueuer) {
	payments := &fakePaymentRepo{}
	apps := &fakeApplicationRepo{apps: map[string]*models.Application{app.ID: app}}
	notifier := &fakeNotifier{}
	intents := &fakeIntentClient{}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultPaymentService{
		Repo:         payments,
		Applications: apps,
		Settings:     &fakeSettingsRepo{settings: models.DefaultPaymentSettings()},
		Notification: notifier,
		Intents:      intents,
		Tasks:        enqueuer,
	}
	return svc, payments, apps, notifier, intents, enqueuer
}

func submittedApplication() *models.Application {
	return &models.Application{
		ID:          "app-1",
		UserID:      "user-1",
		Status:      models.StatusSubmitted,
		PaymentPlan: models.PlanMilestone,
		TotalFee:    4999,
		PaidAmount:  0,
	}
}

func TestRecordPaymentRejectsOutOfBoundsAmounts(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{"zero amount", 0, ErrInvalidAmount},
		{"negative amount", -50, ErrInvalidAmount},
		{"amount above balance", 5000, ErrExceedsBalance},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, payments, apps, _, _, _ := newPaymentFixture(submittedApplication())

			_, err := svc.RecordPayment(context.Background(), "user-1", models.PaymentRequest{
				ApplicationID: "app-1",
				Amount:        tc.amount,
				Method:        models.MethodBankTransfer,
			})

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, payments.created, "no payment row may be written")
			assert.Empty(t, apps.updateCalls, "balance must not be mutated")
		})
	}
}

func TestRecordPaymentRejectsForeignApplication(t *testing.T) {
	svc, payments, _, _, _, _ := newPaymentFixture(submittedApplication())

	_, err := svc.RecordPayment(context.Background(), "someone-else", models.PaymentRequest{
		ApplicationID: "app-1",
		Amount:        100,
		Method:        models.MethodBankTransfer,
	})

	assert.Error(t, err)
	assert.Empty(t, payments.created)
}

func TestRecordPaymentPartial(t *testing.T) {
	svc, payments, apps, notifier, _, enqueuer := newPaymentFixture(submittedApplication())

	p, err := svc.RecordPayment(context.Background(), "user-1", models.PaymentRequest{
		ApplicationID: "app-1",
		Amount:        1250,
		Method:        models.MethodBankTransfer,
	})
	require.NoError(t, err)

	assert.Equal(t, 1250.0, p.Amount)
	assert.Equal(t, 0.0, p.ProcessingFee)
	assert.Equal(t, 1250.0, p.TotalCharged)
	require.Len(t, payments.created, 1)

	app, _ := apps.GetByID("app-1")
	assert.Equal(t, 1250.0, app.PaidAmount)
	assert.Equal(t, models.StatusPartiallyPaid, app.Status)

	assert.Equal(t, []string{models.NotifPaymentRecorded}, notifier.userNotes)
	require.Len(t, enqueuer.tasks, 1, "a reminder is scheduled while a balance remains")
}

func TestRecordPaymentCompletesBalance(t *testing.T) {
	app := submittedApplication()
	app.PaidAmount = 3799
	svc, _, apps, _, _, enqueuer := newPaymentFixture(app)

	_, err := svc.RecordPayment(context.Background(), "user-1", models.PaymentRequest{
		ApplicationID: "app-1",
		Amount:        1200,
		Method:        models.MethodBankTransfer,
	})
	require.NoError(t, err)

	stored, _ := apps.GetByID("app-1")
	assert.Equal(t, 4999.0, stored.PaidAmount)
	assert.Equal(t, models.StatusPaymentComplete, stored.Status)
	assert.Empty(t, enqueuer.tasks, "no reminder once the balance is cleared")
}

func TestRecordPaymentCardCreatesIntent(t *testing.T) {
	svc, _, _, _, intents, _ := newPaymentFixture(submittedApplication())

	p, err := svc.RecordPayment(context.Background(), "user-1", models.PaymentRequest{
		ApplicationID: "app-1",
		Amount:        1000,
		Method:        models.MethodCard,
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_test", p.StripePaymentIntentID)
	assert.InDelta(t, 29.0, p.ProcessingFee, 1e-9)
	require.Len(t, intents.params, 1)
	// 1000 + 2.9% fee, in cents.
	assert.Equal(t, int64(102900), *intents.params[0].Amount)
}

func TestGetOptionsUsesApplicationState(t *testing.T) {
	app := submittedApplication()
	app.PaidAmount = 1200
	svc, _, _, _, _, _ := newPaymentFixture(app)

	options, err := svc.GetOptions(context.Background(), "user-1", "app-1")
	require.NoError(t, err)

	assert.Equal(t, []models.PaymentOption{
		{Label: "Next Milestone", Amount: 1250},
		{Label: "Pay Minimum", Amount: 100},
		{Label: "Full Balance", Amount: 3799},
		{Label: "Custom Amount", Amount: 0},
	}, options)
}
