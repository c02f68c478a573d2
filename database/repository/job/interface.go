package jobRepo

import "carewell/models"

// JobRepository defines methods for job listing data access.
type JobRepository interface {
	// GetByID retrieves a job by its unique ID, or nil if not found.
	GetByID(id string) (*models.Job, error)
	// List retrieves jobs matching the filter, newest first.
	List(filter models.JobFilter) ([]models.Job, error)
	// Create inserts a new job listing.
	Create(job *models.Job) error
	// Update replaces an existing job listing.
	Update(job *models.Job) error
	// Delete removes a job listing by its ID.
	Delete(id string) error
}
