package document

import (
	"context"
	"fmt"

	"carewell/models"
	"carewell/services/tasks"
	"carewell/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Attach uploads the file to storage, then attaches its reference to the
// draft. Replacing an earlier upload of the same type schedules that blob for
// cleanup.
func (s *DefaultDocumentService) Attach(ctx context.Context, userID string, docType models.DocumentType, localFilePath, displayName string) (*models.Application, error) {
	if !models.ValidDocumentType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}

	destFolder := "applications/" + string(docType)
	publicID, err := s.Storage.UploadFile(ctx, localFilePath, destFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	doc := models.UploadedDocument{
		ID:     uuid.New().String(),
		Type:   docType,
		Name:   displayName,
		URL:    publicID,
		Status: models.DocStatusUploaded,
	}

	app, replaced, err := s.Applications.AttachDocument(ctx, userID, doc)
	if err != nil {
		// The draft rejected the document; the fresh blob is orphaned.
		s.scheduleBlobDelete(publicID)
		return nil, err
	}
	if replaced != nil && !replaced.FromProfile {
		s.scheduleBlobDelete(replaced.URL)
	}
	return app, nil
}

// AttachFromProfile copies a standing profile document into the draft.
func (s *DefaultDocumentService) AttachFromProfile(ctx context.Context, userID, profileDocumentID string) (*models.Application, error) {
	usr, err := s.Users.GetUserByID(userID)
	if err != nil || usr == nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	var source *models.UploadedDocument
	for i := range usr.ProfileDocuments {
		if usr.ProfileDocuments[i].ID == profileDocumentID {
			source = &usr.ProfileDocuments[i]
			break
		}
	}
	if source == nil {
		return nil, fmt.Errorf("profile document %s not found", profileDocumentID)
	}

	doc := models.UploadedDocument{
		ID:          uuid.New().String(),
		Type:        source.Type,
		Name:        source.Name,
		URL:         source.URL,
		Status:      models.DocStatusUploaded,
		FromProfile: true,
	}

	app, replaced, err := s.Applications.AttachDocument(ctx, userID, doc)
	if err != nil {
		return nil, err
	}
	if replaced != nil && !replaced.FromProfile {
		s.scheduleBlobDelete(replaced.URL)
	}
	return app, nil
}

// Remove detaches the document. The UI-level removal always proceeds; blob
// deletion is queued best-effort and only for fresh uploads.
func (s *DefaultDocumentService) Remove(ctx context.Context, userID, documentID string) (*models.Application, error) {
	app, removed, err := s.Applications.RemoveDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if removed != nil && !removed.FromProfile {
		s.scheduleBlobDelete(removed.URL)
	}
	return app, nil
}

// DownloadURL returns a viewable URL for an attached document. The lookup
// spans all of the user's applications so documents on submitted ones stay
// reachable from the dashboard.
func (s *DefaultDocumentService) DownloadURL(ctx context.Context, userID, documentID string) (string, error) {
	apps, err := s.Applications.ListForUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load applications: %w", err)
	}

	for i := range apps {
		for j := range apps[i].Documents {
			if apps[i].Documents[j].ID == documentID {
				return s.resolveURL(ctx, apps[i].Documents[j])
			}
		}
	}
	return "", fmt.Errorf("document %s not found", documentID)
}

func (s *DefaultDocumentService) resolveURL(ctx context.Context, doc models.UploadedDocument) (string, error) {
	resourceType := "image"
	if doc.Type != models.DocPhoto {
		resourceType = "raw"
	}
	if doc.Type == models.DocPassport {
		return s.Storage.GetSecureDownloadURL(ctx, resourceType, doc.URL, secureURLExpiry)
	}
	return s.Storage.GetDownloadURL(ctx, resourceType, doc.URL, 0)
}

// AddProfileDocument uploads the file and stores it as a standing profile
// document. When a document of the same type is replaced, the old blob is
// scheduled for cleanup.
func (s *DefaultDocumentService) AddProfileDocument(ctx context.Context, userID string, docType models.DocumentType, localFilePath, displayName string) (*models.User, error) {
	if !models.ValidDocumentType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}

	var replacedURL string
	if usr, err := s.Users.GetUserByID(userID); err == nil && usr != nil {
		for i := range usr.ProfileDocuments {
			if usr.ProfileDocuments[i].Type == docType {
				replacedURL = usr.ProfileDocuments[i].URL
				break
			}
		}
	}

	destFolder := "profiles/" + string(docType)
	publicID, err := s.Storage.UploadFile(ctx, localFilePath, destFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	doc := models.UploadedDocument{
		ID:     uuid.New().String(),
		Type:   docType,
		Name:   displayName,
		URL:    publicID,
		Status: models.DocStatusUploaded,
	}

	usr, err := s.Users.AddProfileDocument(userID, doc)
	if err != nil {
		s.scheduleBlobDelete(publicID)
		return nil, err
	}
	if replacedURL != "" && !s.profileBlobInUse(ctx, userID, replacedURL) {
		s.scheduleBlobDelete(replacedURL)
	}
	return usr, nil
}

// RemoveProfileDocument detaches the standing document. The profile owns the
// blob, so it is deleted unless a draft copy still references it.
func (s *DefaultDocumentService) RemoveProfileDocument(ctx context.Context, userID, documentID string) (*models.User, error) {
	removed, err := s.Users.RemoveProfileDocument(userID, documentID)
	if err != nil {
		return nil, err
	}
	if removed != nil && !s.profileBlobInUse(ctx, userID, removed.URL) {
		s.scheduleBlobDelete(removed.URL)
	}
	return s.Users.GetUserByID(userID)
}

// profileBlobInUse reports whether the draft carries a copy that still points
// at the blob.
func (s *DefaultDocumentService) profileBlobInUse(ctx context.Context, userID, url string) bool {
	app, err := s.Applications.Resume(ctx, userID)
	if err != nil || app == nil {
		return false
	}
	for i := range app.Documents {
		if app.Documents[i].FromProfile && app.Documents[i].URL == url {
			return true
		}
	}
	return false
}

// scheduleBlobDelete queues a best-effort storage delete. Failures to enqueue
// are logged and swallowed; the document reference is already gone.
func (s *DefaultDocumentService) scheduleBlobDelete(publicID string) {
	if s.Tasks == nil || publicID == "" {
		return
	}
	task, opts, err := tasks.NewDeleteBlobTask(tasks.DeleteBlobPayload{PublicID: publicID})
	if err == nil {
		err = s.Tasks.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to schedule blob deletion",
			zap.String("publicID", publicID), zap.Error(err))
	}
}
