package job

import (
	jobRepo "carewell/database/repository/job"
	"carewell/models"
)

// JobView is a listing entry with the human-readable salary range attached.
type JobView struct {
	models.Job
	SalaryRange string `json:"salaryRange"`
}

// JobService serves job placement listings.
type JobService interface {
	// List returns active listings matching the filter, newest first.
	List(filter models.JobFilter) ([]JobView, error)
	// GetByID returns a single listing.
	GetByID(id string) (*JobView, error)

	// Admin management.
	Create(j models.Job) (*models.Job, error)
	Update(j models.Job) (*models.Job, error)
	Delete(id string) error
}

// DefaultJobService is the production implementation.
type DefaultJobService struct {
	Repo jobRepo.JobRepository
}
