package applicationRepo

import (
	"carewell/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ApplicationQuery narrows admin application listings.
type ApplicationQuery struct {
	Status   string
	UserID   string
	Page     int
	PageSize int
}

// ApplicationRepository defines methods for application data access.
type ApplicationRepository interface {
	// GetByID retrieves an application by its unique ID.
	GetByID(id string) (*models.Application, error)
	// GetDraftByUserID retrieves the user's unsubmitted draft, or nil if none.
	GetDraftByUserID(userID string) (*models.Application, error)
	// GetByUserID retrieves all of a user's applications, newest first.
	GetByUserID(userID string) ([]models.Application, error)
	// UpsertDraft inserts or replaces the user's draft keyed by user ID,
	// guarded by the caller-held version. Returns the stored draft.
	UpsertDraft(app *models.Application, expectedVersion int64) (*models.Application, error)
	// UpdateFields applies a partial update to an application by ID.
	UpdateFields(id string, fields bson.M) error
	// List retrieves applications matching the query with the total count.
	List(q ApplicationQuery) ([]models.Application, int64, error)
	// Delete removes an application by ID. Admin-only; users never delete.
	Delete(id string) error
}

// VersionConflictError is returned when an autosave carries a version older
// than the stored draft (e.g. a second browser tab wrote first).
type VersionConflictError struct {
	Stored int64
	Given  int64
}

func (e *VersionConflictError) Error() string {
	return "draft version conflict: stored draft has advanced"
}
