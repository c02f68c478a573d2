package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"carewell/models"
	"carewell/services/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibiken/asynq"
)

// fakeWizard implements just enough of the application service to observe
// attach/remove calls.
type fakeWizard struct {
	draft     models.Application
	submitted []models.Application
	replaced  *models.UploadedDocument
	attachErr error
}

func (f *fakeWizard) Resume(ctx context.Context, userID string) (*models.Application, error) {
	copied := f.draft
	return &copied, nil
}
func (f *fakeWizard) Autosave(ctx context.Context, userID string, update models.ApplicationDraftUpdate) (*models.Application, error) {
	return nil, nil
}
func (f *fakeWizard) Advance(ctx context.Context, userID string) (*models.Application, error) {
	return nil, nil
}
func (f *fakeWizard) Retreat(ctx context.Context, userID string) (*models.Application, error) {
	return nil, nil
}
func (f *fakeWizard) Submit(ctx context.Context, userID string) (*models.Application, error) {
	return nil, nil
}
func (f *fakeWizard) AttachDocument(ctx context.Context, userID string, doc models.UploadedDocument) (*models.Application, *models.UploadedDocument, error) {
	if f.attachErr != nil {
		return nil, nil, f.attachErr
	}
	replaced := f.replaced
	f.draft.Documents = append(f.draft.Documents, doc)
	copied := f.draft
	return &copied, replaced, nil
}
func (f *fakeWizard) RemoveDocument(ctx context.Context, userID, documentID string) (*models.Application, *models.UploadedDocument, error) {
	for i := range f.draft.Documents {
		if f.draft.Documents[i].ID == documentID {
			removed := f.draft.Documents[i]
			f.draft.Documents = append(f.draft.Documents[:i], f.draft.Documents[i+1:]...)
			copied := f.draft
			return &copied, &removed, nil
		}
	}
	return nil, nil, fmt.Errorf("document %s not attached to draft", documentID)
}
func (f *fakeWizard) GetByID(ctx context.Context, userID, applicationID string) (*models.Application, error) {
	copied := f.draft
	return &copied, nil
}
func (f *fakeWizard) ListForUser(ctx context.Context, userID string) ([]models.Application, error) {
	return append([]models.Application{f.draft}, f.submitted...), nil
}

type fakeStorage struct {
	uploads []string
	deletes []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	publicID := destFolder + "/blob"
	f.uploads = append(f.uploads, publicID)
	return publicID, nil
}
func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	f.deletes = append(f.deletes, publicID)
	return nil
}
func (f *fakeStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/" + resourceType + "/" + publicID, nil
}
func (f *fakeStorage) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/signed/" + resourceType + "/" + publicID, nil
}

// fakeUsers implements ProfileStore with the same replace-by-type semantics
// as the account service.
type fakeUsers struct {
	user *models.User
}

func (f *fakeUsers) GetUserByID(id string) (*models.User, error) { return f.user, nil }

func (f *fakeUsers) AddProfileDocument(userID string, doc models.UploadedDocument) (*models.User, error) {
	kept := f.user.ProfileDocuments[:0]
	for i := range f.user.ProfileDocuments {
		if f.user.ProfileDocuments[i].Type == doc.Type {
			continue
		}
		kept = append(kept, f.user.ProfileDocuments[i])
	}
	f.user.ProfileDocuments = append(kept, doc)
	return f.user, nil
}

func (f *fakeUsers) RemoveProfileDocument(userID, documentID string) (*models.UploadedDocument, error) {
	for i := range f.user.ProfileDocuments {
		if f.user.ProfileDocuments[i].ID == documentID {
			removed := f.user.ProfileDocuments[i]
			f.user.ProfileDocuments = append(f.user.ProfileDocuments[:i], f.user.ProfileDocuments[i+1:]...)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("profile document %s not found", documentID)
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) error {
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeEnqueuer) deletedBlobs(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, task := range f.tasks {
		require.Equal(t, tasks.TypeDeleteBlob, task.Type())
		var p tasks.DeleteBlobPayload
		require.NoError(t, json.Unmarshal(task.Payload(), &p))
		out = append(out, p.PublicID)
	}
	return out
}

func TestAttachSchedulesReplacedBlobCleanup(t *testing.T) {
	wizard := &fakeWizard{
		replaced: &models.UploadedDocument{ID: "doc-old", Type: models.DocResume, URL: "applications/resume/old"},
	}
	storage := &fakeStorage{}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultDocumentService{Applications: wizard, Storage: storage, Tasks: enqueuer}

	_, err := svc.Attach(context.Background(), "user-1", models.DocResume, "/tmp/resume.pdf", "resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, []string{"applications/resume/blob"}, storage.uploads)
	assert.Equal(t, []string{"applications/resume/old"}, enqueuer.deletedBlobs(t))
}

func TestAttachKeepsProfileBlobOnReplace(t *testing.T) {
	wizard := &fakeWizard{
		replaced: &models.UploadedDocument{ID: "doc-old", Type: models.DocResume, URL: "profiles/resume/old", FromProfile: true},
	}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultDocumentService{Applications: wizard, Storage: &fakeStorage{}, Tasks: enqueuer}

	_, err := svc.Attach(context.Background(), "user-1", models.DocResume, "/tmp/resume.pdf", "resume.pdf")
	require.NoError(t, err)

	assert.Empty(t, enqueuer.tasks, "profile blobs are never deleted")
}

func TestAttachCleansUpOrphanOnRejection(t *testing.T) {
	wizard := &fakeWizard{attachErr: errors.New("draft is gone")}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultDocumentService{Applications: wizard, Storage: &fakeStorage{}, Tasks: enqueuer}

	_, err := svc.Attach(context.Background(), "user-1", models.DocResume, "/tmp/resume.pdf", "resume.pdf")
	require.Error(t, err)

	assert.Equal(t, []string{"applications/resume/blob"}, enqueuer.deletedBlobs(t))
}

func TestAttachRejectsUnknownType(t *testing.T) {
	svc := &DefaultDocumentService{Applications: &fakeWizard{}, Storage: &fakeStorage{}, Tasks: &fakeEnqueuer{}}

	_, err := svc.Attach(context.Background(), "user-1", models.DocumentType("tax_return"), "/tmp/x", "x")
	assert.Error(t, err)
}

func TestRemoveSchedulesCleanupForFreshUploadsOnly(t *testing.T) {
	tests := []struct {
		name        string
		doc         models.UploadedDocument
		wantCleanup bool
	}{
		{
			name:        "fresh upload",
			doc:         models.UploadedDocument{ID: "doc-1", Type: models.DocResume, URL: "applications/resume/v1"},
			wantCleanup: true,
		},
		{
			name:        "profile copy",
			doc:         models.UploadedDocument{ID: "doc-1", Type: models.DocResume, URL: "profiles/resume/v1", FromProfile: true},
			wantCleanup: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wizard := &fakeWizard{draft: models.Application{Documents: []models.UploadedDocument{tc.doc}}}
			enqueuer := &fakeEnqueuer{}
			svc := &DefaultDocumentService{Applications: wizard, Storage: &fakeStorage{}, Tasks: enqueuer}

			app, err := svc.Remove(context.Background(), "user-1", "doc-1")
			require.NoError(t, err)
			assert.Empty(t, app.Documents)

			if tc.wantCleanup {
				assert.Equal(t, []string{tc.doc.URL}, enqueuer.deletedBlobs(t))
			} else {
				assert.Empty(t, enqueuer.tasks)
			}
		})
	}
}

func TestAttachFromProfileCopiesReference(t *testing.T) {
	wizard := &fakeWizard{}
	users := &fakeUsers{user: &models.User{
		ID: "user-1",
		ProfileDocuments: []models.UploadedDocument{
			{ID: "profile-doc-1", Type: models.DocResume, Name: "resume.pdf", URL: "profiles/resume/v1"},
		},
	}}
	svc := &DefaultDocumentService{Applications: wizard, Users: users, Storage: &fakeStorage{}, Tasks: &fakeEnqueuer{}}

	app, err := svc.AttachFromProfile(context.Background(), "user-1", "profile-doc-1")
	require.NoError(t, err)

	require.Len(t, app.Documents, 1)
	attached := app.Documents[0]
	assert.True(t, attached.FromProfile)
	assert.Equal(t, "profiles/resume/v1", attached.URL, "profile blob is referenced, not copied")
	assert.NotEqual(t, "profile-doc-1", attached.ID)
}

func TestDownloadURLSignsPassports(t *testing.T) {
	wizard := &fakeWizard{draft: models.Application{Documents: []models.UploadedDocument{
		{ID: "doc-passport", Type: models.DocPassport, URL: "applications/passport/v1"},
		{ID: "doc-photo", Type: models.DocPhoto, URL: "applications/photo/v1"},
		{ID: "doc-resume", Type: models.DocResume, URL: "applications/resume/v1"},
	}}}
	svc := &DefaultDocumentService{Applications: wizard, Storage: &fakeStorage{}, Tasks: &fakeEnqueuer{}}

	url, err := svc.DownloadURL(context.Background(), "user-1", "doc-passport")
	require.NoError(t, err)
	assert.Contains(t, url, "/signed/")

	url, err = svc.DownloadURL(context.Background(), "user-1", "doc-photo")
	require.NoError(t, err)
	assert.Contains(t, url, "/image/")

	url, err = svc.DownloadURL(context.Background(), "user-1", "doc-resume")
	require.NoError(t, err)
	assert.Contains(t, url, "/raw/")
}

func TestDownloadURLFindsSubmittedApplicationDocuments(t *testing.T) {
	wizard := &fakeWizard{
		submitted: []models.Application{{
			ID:     "app-1",
			Status: models.StatusSubmitted,
			Documents: []models.UploadedDocument{
				{ID: "doc-resume", Type: models.DocResume, URL: "applications/resume/v1"},
			},
		}},
	}
	svc := &DefaultDocumentService{Applications: wizard, Storage: &fakeStorage{}, Tasks: &fakeEnqueuer{}}

	url, err := svc.DownloadURL(context.Background(), "user-1", "doc-resume")
	require.NoError(t, err)
	assert.Contains(t, url, "applications/resume/v1")

	_, err = svc.DownloadURL(context.Background(), "user-1", "doc-missing")
	assert.Error(t, err)
}

func TestAddProfileDocumentReplacesByType(t *testing.T) {
	users := &fakeUsers{user: &models.User{
		ID: "user-1",
		ProfileDocuments: []models.UploadedDocument{
			{ID: "profile-doc-1", Type: models.DocResume, URL: "profiles/resume/old"},
		},
	}}
	storage := &fakeStorage{}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultDocumentService{Applications: &fakeWizard{}, Users: users, Storage: storage, Tasks: enqueuer}

	usr, err := svc.AddProfileDocument(context.Background(), "user-1", models.DocResume, "/tmp/resume.pdf", "resume.pdf")
	require.NoError(t, err)

	require.Len(t, usr.ProfileDocuments, 1)
	assert.Equal(t, "profiles/resume/blob", usr.ProfileDocuments[0].URL)
	assert.Equal(t, []string{"profiles/resume/old"}, enqueuer.deletedBlobs(t), "replaced profile blob is cleaned up")
}

func TestAddProfileDocumentKeepsReplacedBlobReferencedByDraft(t *testing.T) {
	users := &fakeUsers{user: &models.User{
		ID: "user-1",
		ProfileDocuments: []models.UploadedDocument{
			{ID: "profile-doc-1", Type: models.DocResume, URL: "profiles/resume/old"},
		},
	}}
	wizard := &fakeWizard{draft: models.Application{Documents: []models.UploadedDocument{
		{ID: "doc-1", Type: models.DocResume, URL: "profiles/resume/old", FromProfile: true},
	}}}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultDocumentService{Applications: wizard, Users: users, Storage: &fakeStorage{}, Tasks: enqueuer}

	_, err := svc.AddProfileDocument(context.Background(), "user-1", models.DocResume, "/tmp/resume.pdf", "resume.pdf")
	require.NoError(t, err)

	assert.Empty(t, enqueuer.tasks, "blob survives while the draft copy references it")
}

func TestRemoveProfileDocumentDeletesOwnedBlob(t *testing.T) {
	users := &fakeUsers{user: &models.User{
		ID: "user-1",
		ProfileDocuments: []models.UploadedDocument{
			{ID: "profile-doc-1", Type: models.DocResume, URL: "profiles/resume/v1"},
		},
	}}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultDocumentService{Applications: &fakeWizard{}, Users: users, Storage: &fakeStorage{}, Tasks: enqueuer}

	usr, err := svc.RemoveProfileDocument(context.Background(), "user-1", "profile-doc-1")
	require.NoError(t, err)

	assert.Empty(t, usr.ProfileDocuments)
	assert.Equal(t, []string{"profiles/resume/v1"}, enqueuer.deletedBlobs(t))
}

func TestProfileDocumentFlowsIntoDraft(t *testing.T) {
	users := &fakeUsers{user: &models.User{ID: "user-1"}}
	wizard := &fakeWizard{}
	svc := &DefaultDocumentService{Applications: wizard, Users: users, Storage: &fakeStorage{}, Tasks: &fakeEnqueuer{}}

	usr, err := svc.AddProfileDocument(context.Background(), "user-1", models.DocResume, "/tmp/resume.pdf", "resume.pdf")
	require.NoError(t, err)
	require.Len(t, usr.ProfileDocuments, 1)

	app, err := svc.AttachFromProfile(context.Background(), "user-1", usr.ProfileDocuments[0].ID)
	require.NoError(t, err)

	require.Len(t, app.Documents, 1)
	assert.True(t, app.Documents[0].FromProfile)
	assert.Equal(t, "profiles/resume/blob", app.Documents[0].URL)
}
