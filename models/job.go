package models

import "time"

// Job is a published job placement listing.
type Job struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Category    string    `bson:"category" json:"category"`
	Country     string    `bson:"country" json:"country"`
	Description string    `bson:"description" json:"description"`
	SalaryMin   float64   `bson:"salaryMin" json:"salaryMin"`
	SalaryMax   float64   `bson:"salaryMax" json:"salaryMax"`
	Currency    string    `bson:"currency" json:"currency"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// JobFilter narrows job listing queries.
type JobFilter struct {
	Category string
	Country  string
	// ActiveOnly hides unpublished listings; always true on the public surface.
	ActiveOnly bool
}
