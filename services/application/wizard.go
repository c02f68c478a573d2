package application

import (
	"context"
	"fmt"
	"time"

	"carewell/models"
	"carewell/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Resume returns the user's unsubmitted draft. When none exists a fresh
// step-1 draft is synthesized from the profile; it is not persisted until the
// first autosave, matching the create-on-first-edit lifecycle.
func (s *DefaultApplicationService) Resume(ctx context.Context, userID string) (*models.Application, error) {
	draft, err := s.Repo.GetDraftByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft != nil {
		s.fillFromProfile(draft, userID)
		return draft, nil
	}

	fresh := &models.Application{
		ID:          uuid.New().String(),
		UserID:      userID,
		CurrentStep: models.StepPersonalInfo,
		Status:      models.StatusDraft,
	}
	s.fillFromProfile(fresh, userID)
	return fresh, nil
}

// fillFromProfile copies profile values into fields the draft leaves empty.
func (s *DefaultApplicationService) fillFromProfile(app *models.Application, userID string) {
	usr, err := s.Users.GetByID(userID)
	if err != nil || usr == nil {
		utils.GetLogger().Warn("could not load profile for draft prefill",
			zap.String("userID", userID), zap.Error(err))
		return
	}
	if app.FullName == "" {
		app.FullName = usr.FullName
	}
	if app.Email == "" {
		app.Email = usr.Email
	}
	if app.Phone == "" {
		app.Phone = usr.Phone
	}
	if app.CountryOfOrigin == "" {
		app.CountryOfOrigin = usr.Country
	}
}

// Autosave upserts the full draft keyed by user ID. A draft is created on the
// first edit. The write is guarded by the version the client last read so a
// stale tab cannot silently clobber a newer draft.
func (s *DefaultApplicationService) Autosave(ctx context.Context, userID string, update models.ApplicationDraftUpdate) (*models.Application, error) {
	draft, err := s.Repo.GetDraftByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		draft = &models.Application{
			ID:          uuid.New().String(),
			UserID:      userID,
			CurrentStep: models.StepPersonalInfo,
			Status:      models.StatusDraft,
		}
		s.fillFromProfile(draft, userID)
	}

	draft.FullName = update.FullName
	draft.Email = update.Email
	draft.Phone = update.Phone
	draft.CountryOfOrigin = update.CountryOfOrigin
	draft.DestinationCountry = update.DestinationCountry
	draft.VisaType = update.VisaType
	draft.PaymentPlan = update.PaymentPlan

	saved, err := s.Repo.UpsertDraft(draft, update.Version)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Advance validates the current step and moves the step pointer forward. The
// draft itself is untouched on gate failure.
func (s *DefaultApplicationService) Advance(ctx context.Context, userID string) (*models.Application, error) {
	draft, err := s.Repo.GetDraftByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	if draft.CurrentStep >= models.StepReview {
		return draft, nil
	}

	if err := ValidateStep(draft, draft.CurrentStep); err != nil {
		return nil, err
	}

	draft.CurrentStep++
	if err := s.Repo.UpdateFields(draft.ID, bson.M{"currentStep": draft.CurrentStep}); err != nil {
		return nil, fmt.Errorf("failed to persist step advance: %w", err)
	}
	return draft, nil
}

// Retreat steps back for display only. The stored step is left alone so a
// later resume lands on the furthest step reached.
func (s *DefaultApplicationService) Retreat(ctx context.Context, userID string) (*models.Application, error) {
	draft, err := s.Repo.GetDraftByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	if draft.CurrentStep > models.StepPersonalInfo {
		draft.CurrentStep--
	}
	return draft, nil
}

// AttachDocument adds a document to the draft with replace semantics: at most
// one document per declared type. Creates the draft when attaching is the
// user's first edit.
func (s *DefaultApplicationService) AttachDocument(ctx context.Context, userID string, doc models.UploadedDocument) (*models.Application, *models.UploadedDocument, error) {
	if !models.ValidDocumentType(doc.Type) {
		return nil, nil, fmt.Errorf("unknown document type %q", doc.Type)
	}

	draft, err := s.Repo.GetDraftByUserID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		draft = &models.Application{
			ID:          uuid.New().String(),
			UserID:      userID,
			CurrentStep: models.StepPersonalInfo,
			Status:      models.StatusDraft,
		}
		s.fillFromProfile(draft, userID)
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Status == "" {
		doc.Status = models.DocStatusUploaded
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}

	var replaced *models.UploadedDocument
	kept := draft.Documents[:0]
	for i := range draft.Documents {
		if draft.Documents[i].Type == doc.Type {
			d := draft.Documents[i]
			replaced = &d
			continue
		}
		kept = append(kept, draft.Documents[i])
	}
	draft.Documents = append(kept, doc)

	saved, err := s.Repo.UpsertDraft(draft, draft.Version)
	if err != nil {
		return nil, nil, err
	}
	return saved, replaced, nil
}

// RemoveDocument detaches a document from the draft by ID and returns it so
// the caller can decide whether the backing blob should be cleaned up.
func (s *DefaultApplicationService) RemoveDocument(ctx context.Context, userID, documentID string) (*models.Application, *models.UploadedDocument, error) {
	draft, err := s.Repo.GetDraftByUserID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		return nil, nil, ErrNoDraft
	}

	var removed *models.UploadedDocument
	kept := draft.Documents[:0]
	for i := range draft.Documents {
		if draft.Documents[i].ID == documentID {
			d := draft.Documents[i]
			removed = &d
			continue
		}
		kept = append(kept, draft.Documents[i])
	}
	if removed == nil {
		return nil, nil, fmt.Errorf("document %s not attached to draft", documentID)
	}
	draft.Documents = kept

	saved, err := s.Repo.UpsertDraft(draft, draft.Version)
	if err != nil {
		return nil, nil, err
	}
	return saved, removed, nil
}

// GetByID returns an application, restricted to its owner.
func (s *DefaultApplicationService) GetByID(ctx context.Context, userID, applicationID string) (*models.Application, error) {
	app, err := s.Repo.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil || app.UserID != userID {
		return nil, fmt.Errorf("application %s not found", applicationID)
	}
	return app, nil
}

// ListForUser returns all of the user's applications, newest first.
func (s *DefaultApplicationService) ListForUser(ctx context.Context, userID string) ([]models.Application, error) {
	return s.Repo.GetByUserID(userID)
}
