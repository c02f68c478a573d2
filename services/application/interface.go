package application

import (
	"context"

	applicationRepo "carewell/database/repository/application"
	settingsRepo "carewell/database/repository/settings"
	userRepo "carewell/database/repository/user"
	"carewell/models"
	"carewell/services/notification"
)

// ApplicationService drives the multi-step application wizard: step
// sequencing, per-step gating, draft autosave/resumption and submission.
type ApplicationService interface {
	// Resume returns the user's unsubmitted draft, or a fresh unsaved draft
	// pre-populated from the profile when none exists.
	Resume(ctx context.Context, userID string) (*models.Application, error)
	// Autosave upserts the full draft keyed by user ID. Never gated on
	// validation: incomplete values are saved as typed.
	Autosave(ctx context.Context, userID string, update models.ApplicationDraftUpdate) (*models.Application, error)
	// Advance validates the current step and persists the step pointer one
	// forward on success.
	Advance(ctx context.Context, userID string) (*models.Application, error)
	// Retreat steps the wizard back for display. It is never validated and
	// never persisted; the stored step keeps marking the furthest progress.
	Retreat(ctx context.Context, userID string) (*models.Application, error)
	// Submit finalizes the draft from the review step.
	Submit(ctx context.Context, userID string) (*models.Application, error)

	// AttachDocument adds a document to the draft, replacing any existing one
	// of the same declared type. The replaced document is returned so the
	// caller can clean up its blob when it was a fresh upload.
	AttachDocument(ctx context.Context, userID string, doc models.UploadedDocument) (*models.Application, *models.UploadedDocument, error)
	// RemoveDocument detaches a document from the draft and returns it.
	RemoveDocument(ctx context.Context, userID, documentID string) (*models.Application, *models.UploadedDocument, error)

	// GetByID returns an application visible to the given user.
	GetByID(ctx context.Context, userID, applicationID string) (*models.Application, error)
	// ListForUser returns all of the user's applications, newest first.
	ListForUser(ctx context.Context, userID string) ([]models.Application, error)
}

// DefaultApplicationService is the production implementation.
type DefaultApplicationService struct {
	Repo         applicationRepo.ApplicationRepository
	Users        userRepo.UserRepository
	Settings     settingsRepo.SettingsRepository
	Notification notification.NotificationService
}
