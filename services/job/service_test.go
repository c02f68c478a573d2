package job

import (
	"testing"

	"carewell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func (f *fakeJobRepo) GetByID(id string) (*models.Job, error) {
	if j, ok := f.jobs[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, nil
}
func (f *fakeJobRepo) List(filter models.JobFilter) ([]models.Job, error) {
	var out []models.Job
	for _, j := range f.jobs {
		if filter.ActiveOnly && !j.Active {
			continue
		}
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.Country != "" && j.Country != filter.Country {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}
func (f *fakeJobRepo) Create(j *models.Job) error {
	copied := *j
	f.jobs[j.ID] = &copied
	return nil
}
func (f *fakeJobRepo) Update(j *models.Job) error {
	copied := *j
	f.jobs[j.ID] = &copied
	return nil
}
func (f *fakeJobRepo) Delete(id string) error {
	delete(f.jobs, id)
	return nil
}

func TestFormatSalaryRange(t *testing.T) {
	tests := []struct {
		name string
		job  models.Job
		want string
	}{
		{
			name: "no figures",
			job:  models.Job{},
			want: "Negotiable",
		},
		{
			name: "lower bound only",
			job:  models.Job{SalaryMin: 2500},
			want: "From USD 2,500 / month",
		},
		{
			name: "upper bound only",
			job:  models.Job{SalaryMax: 3400, Currency: "EUR"},
			want: "Up to EUR 3,400 / month",
		},
		{
			name: "full range",
			job:  models.Job{SalaryMin: 2500, SalaryMax: 3400},
			want: "USD 2,500 - 3,400 / month",
		},
		{
			name: "large figures grouped",
			job:  models.Job{SalaryMin: 1200000, SalaryMax: 1500000, Currency: "KES"},
			want: "KES 1,200,000 - 1,500,000 / month",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatSalaryRange(tc.job))
		})
	}
}

func TestListAttachesSalaryRange(t *testing.T) {
	repo := &fakeJobRepo{jobs: map[string]*models.Job{
		"job-1": {ID: "job-1", Title: "Care Assistant", Country: "UK", SalaryMin: 2500, SalaryMax: 3400, Active: true},
		"job-2": {ID: "job-2", Title: "Archived", Active: false},
	}}
	svc := &DefaultJobService{Repo: repo}

	views, err := svc.List(models.JobFilter{ActiveOnly: true})
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "Care Assistant", views[0].Title)
	assert.Equal(t, "USD 2,500 - 3,400 / month", views[0].SalaryRange)
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := &DefaultJobService{Repo: &fakeJobRepo{jobs: map[string]*models.Job{}}}

	_, err := svc.Create(models.Job{})
	assert.Error(t, err)

	created, err := svc.Create(models.Job{Title: "Care Assistant"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}
