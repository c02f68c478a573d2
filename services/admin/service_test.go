package admin

import (
	"context"
	"testing"

	applicationRepo "carewell/database/repository/application"
	"carewell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeApplicationRepo struct {
	apps map[string]*models.Application
}

func (f *fakeApplicationRepo) GetByID(id string) (*models.Application, error) {
	if app, ok := f.apps[id]; ok {
		copied := *app
		return &copied, nil
	}
	return nil, nil
}
func (f *fakeApplicationRepo) GetDraftByUserID(userID string) (*models.Application, error) {
	return nil, nil
}
func (f *fakeApplicationRepo) GetByUserID(userID string) ([]models.Application, error) {
	return nil, nil
}
func (f *fakeApplicationRepo) UpsertDraft(app *models.Application, expectedVersion int64) (*models.Application, error) {
	return app, nil
}
func (f *fakeApplicationRepo) UpdateFields(id string, fields bson.M) error {
	app, ok := f.apps[id]
	if !ok {
		return nil
	}
	if v, ok := fields["status"]; ok {
		app.Status = v.(string)
	}
	if v, ok := fields["documents"]; ok {
		app.Documents = v.([]models.UploadedDocument)
	}
	return nil
}
func (f *fakeApplicationRepo) List(q applicationRepo.ApplicationQuery) ([]models.Application, int64, error) {
	var out []models.Application
	for _, app := range f.apps {
		if q.Status != "" && app.Status != q.Status {
			continue
		}
		if q.UserID != "" && app.UserID != q.UserID {
			continue
		}
		out = append(out, *app)
	}
	return out, int64(len(out)), nil
}
func (f *fakeApplicationRepo) Delete(id string) error { return nil }

type fakeNotifier struct {
	userNotes []string
}

func (f *fakeNotifier) NotifyUser(ctx context.Context, userID, notifType, title, body string, data map[string]string) error {
	f.userNotes = append(f.userNotes, notifType)
	return nil
}
func (f *fakeNotifier) NotifyAdmin(ctx context.Context, notifType, title, body string, data map[string]string) error {
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

func newAdminFixture(apps ...*models.Application) (*DefaultAdminService, *fakeApplicationRepo, *fakeNotifier) {
	repo := &fakeApplicationRepo{apps: map[string]*models.Application{}}
	for _, app := range apps {
		repo.apps[app.ID] = app
	}
	notifier := &fakeNotifier{}
	svc := &DefaultAdminService{
		Applications: repo,
		Settings:     &fakeSettingsRepo{settings: models.DefaultPaymentSettings()},
		Notification: notifier,
	}
	return svc, repo, notifier
}

func TestUpdateApplicationStatus(t *testing.T) {
	tests := []struct {
		name      string
		appStatus string
		newStatus string
		wantErr   bool
	}{
		{"submitted to in_review", models.StatusSubmitted, models.StatusInReview, false},
		{"in_review to approved", models.StatusInReview, models.StatusApproved, false},
		{"in_review to rejected", models.StatusInReview, models.StatusRejected, false},
		{"drafts are not reviewable", models.StatusDraft, models.StatusInReview, true},
		{"unknown status rejected", models.StatusSubmitted, "archived", true},
		{"cannot force back to draft", models.StatusSubmitted, models.StatusDraft, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, notifier := newAdminFixture(&models.Application{
				ID: "app-1", UserID: "user-1", Status: tc.appStatus,
			})

			app, err := svc.UpdateApplicationStatus(context.Background(), "app-1", tc.newStatus)
			if tc.wantErr {
				assert.Error(t, err)
				stored, _ := repo.GetByID("app-1")
				assert.Equal(t, tc.appStatus, stored.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.newStatus, app.Status)
			assert.Equal(t, []string{models.NotifStatusChanged}, notifier.userNotes)
		})
	}
}

func TestVerifyDocument(t *testing.T) {
	svc, repo, notifier := newAdminFixture(&models.Application{
		ID: "app-1", UserID: "user-1", Status: models.StatusSubmitted,
		Documents: []models.UploadedDocument{
			{ID: "doc-1", Type: models.DocResume, Status: models.DocStatusUploaded},
			{ID: "doc-2", Type: models.DocPhoto, Status: models.DocStatusUploaded},
		},
	})

	app, err := svc.VerifyDocument(context.Background(), "app-1", "doc-1")
	require.NoError(t, err)

	assert.Equal(t, models.DocStatusVerified, app.Documents[0].Status)
	assert.Equal(t, models.DocStatusUploaded, app.Documents[1].Status)

	stored, _ := repo.GetByID("app-1")
	assert.Equal(t, models.DocStatusVerified, stored.Documents[0].Status)
	assert.Equal(t, []string{models.NotifDocumentVerified}, notifier.userNotes)

	_, err = svc.VerifyDocument(context.Background(), "app-1", "doc-missing")
	assert.Error(t, err)
}

func TestUpdatePaymentSettingsValidatesFees(t *testing.T) {
	svc, _, _ := newAdminFixture()

	bad := models.DefaultPaymentSettings()
	bad.MilestoneFee = 0
	assert.Error(t, svc.UpdatePaymentSettings(context.Background(), bad))

	good := models.DefaultPaymentSettings()
	good.MilestoneFee = 5250
	require.NoError(t, svc.UpdatePaymentSettings(context.Background(), good))

	stored, err := svc.GetPaymentSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5250.0, stored.MilestoneFee)
}

func TestListApplicationsFilters(t *testing.T) {
	svc, _, _ := newAdminFixture(
		&models.Application{ID: "app-1", UserID: "user-1", Status: models.StatusSubmitted},
		&models.Application{ID: "app-2", UserID: "user-2", Status: models.StatusDraft},
	)

	page, err := svc.ListApplications(context.Background(), models.StatusSubmitted, "", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Applications, 1)
	assert.Equal(t, "app-1", page.Applications[0].ID)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
}
