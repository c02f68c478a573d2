package job

import (
	"fmt"
	"strconv"
	"strings"

	"carewell/models"

	"github.com/google/uuid"
)

// List returns listings matching the filter, newest first.
func (s *DefaultJobService) List(filter models.JobFilter) ([]JobView, error) {
	jobs, err := s.Repo.List(filter)
	if err != nil {
		return nil, err
	}
	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, JobView{Job: j, SalaryRange: FormatSalaryRange(j)})
	}
	return views, nil
}

// GetByID returns a single listing.
func (s *DefaultJobService) GetByID(id string) (*JobView, error) {
	j, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, fmt.Errorf("job %s not found", id)
	}
	return &JobView{Job: *j, SalaryRange: FormatSalaryRange(*j)}, nil
}

// Create inserts a new listing.
func (s *DefaultJobService) Create(j models.Job) (*models.Job, error) {
	if j.Title == "" {
		return nil, fmt.Errorf("job title is required")
	}
	j.ID = uuid.New().String()
	if err := s.Repo.Create(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

// Update replaces an existing listing.
func (s *DefaultJobService) Update(j models.Job) (*models.Job, error) {
	if j.ID == "" {
		return nil, fmt.Errorf("job ID is required")
	}
	if err := s.Repo.Update(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

// Delete removes a listing.
func (s *DefaultJobService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// FormatSalaryRange renders a listing's salary as shown on the jobs page.
// Listings with no figures read "Negotiable"; a missing upper bound reads
// "From <min>".
func FormatSalaryRange(j models.Job) string {
	currency := j.Currency
	if currency == "" {
		currency = "USD"
	}
	switch {
	case j.SalaryMin == 0 && j.SalaryMax == 0:
		return "Negotiable"
	case j.SalaryMax == 0:
		return fmt.Sprintf("From %s %s / month", currency, groupThousands(j.SalaryMin))
	case j.SalaryMin == 0:
		return fmt.Sprintf("Up to %s %s / month", currency, groupThousands(j.SalaryMax))
	default:
		return fmt.Sprintf("%s %s - %s / month", currency, groupThousands(j.SalaryMin), groupThousands(j.SalaryMax))
	}
}

// groupThousands renders a whole amount with comma separators.
func groupThousands(v float64) string {
	s := strconv.FormatInt(int64(v), 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
