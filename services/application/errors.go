package application

import (
	"errors"
	"fmt"
	"strings"

	"carewell/models"
)

// ErrNoDraft indicates the user has no in-progress draft to operate on.
var ErrNoDraft = errors.New("no application draft found")

// ErrAlreadySubmitted indicates the user's application went through already
// and there is nothing left to submit.
var ErrAlreadySubmitted = errors.New("application has already been submitted")

// ErrNotAtReviewStep indicates submission was attempted before the final step.
var ErrNotAtReviewStep = errors.New("application must be at the review step to submit")

// StepValidationError reports why a step gate failed. It names every missing
// field and document type so the caller can surface them to the user.
type StepValidationError struct {
	Step             int
	MissingFields    []string
	MissingDocuments []models.DocumentType
}

func (e *StepValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.MissingDocuments) > 0 {
		names := make([]string, len(e.MissingDocuments))
		for i, d := range e.MissingDocuments {
			names[i] = string(d)
		}
		parts = append(parts, "missing documents: "+strings.Join(names, ", "))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("step %d validation failed", e.Step)
	}
	return fmt.Sprintf("step %d validation failed: %s", e.Step, strings.Join(parts, "; "))
}
