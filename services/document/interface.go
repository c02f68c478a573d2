package document

import (
	"context"
	"time"

	"carewell/models"
	"carewell/services/application"
	"carewell/services/storage"
	"carewell/services/tasks"
)

// DocumentService owns the blob lifecycle of application documents: uploads
// to object storage, copies from the user's standing profile, and removal
// with best-effort blob cleanup.
type DocumentService interface {
	// Attach uploads a local file and attaches it to the user's draft under
	// the declared type, replacing any previous document of that type.
	Attach(ctx context.Context, userID string, docType models.DocumentType, localFilePath, displayName string) (*models.Application, error)
	// AttachFromProfile copies a standing profile document reference into the
	// draft. No blob is duplicated.
	AttachFromProfile(ctx context.Context, userID, profileDocumentID string) (*models.Application, error)
	// Remove detaches a document from the draft. Fresh uploads get their
	// backing blob deleted best-effort; profile copies keep theirs.
	Remove(ctx context.Context, userID, documentID string) (*models.Application, error)
	// DownloadURL returns a viewable URL for a document on any of the user's
	// applications. Passport scans get a signed short-lived URL.
	DownloadURL(ctx context.Context, userID, documentID string) (string, error)

	// AddProfileDocument uploads a local file as a standing profile document,
	// replacing any previous one of the same type.
	AddProfileDocument(ctx context.Context, userID string, docType models.DocumentType, localFilePath, displayName string) (*models.User, error)
	// RemoveProfileDocument detaches a standing document from the profile.
	// Its blob is deleted unless the current draft still references it.
	RemoveProfileDocument(ctx context.Context, userID, documentID string) (*models.User, error)
}

// ProfileStore is the slice of the account service that owns standing
// profile documents.
type ProfileStore interface {
	GetUserByID(userID string) (*models.User, error)
	AddProfileDocument(userID string, doc models.UploadedDocument) (*models.User, error)
	RemoveProfileDocument(userID, documentID string) (*models.UploadedDocument, error)
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Applications application.ApplicationService
	Users        ProfileStore
	Storage      storage.StorageService
	Tasks        tasks.Enqueuer
}

// secureURLExpiry bounds signed URLs for restricted documents.
const secureURLExpiry = 15 * time.Minute
