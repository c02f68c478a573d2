package application

import (
	"context"
	"fmt"
	"time"

	"carewell/models"
	"carewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Submit finalizes the draft from the review step. The steps are: re-check
// the gates of steps 1-3, compute the total fee from the chosen plan, flip
// the draft to submitted with a persisted submission marker, then write the
// user- and admin-facing notifications and clear the marker.
//
// The marker makes a retry after a partial failure safe: if the status write
// landed but a notification insert did not, a second Submit call picks the
// application back up by its pending marker and finishes only the remaining
// side effects.
func (s *DefaultApplicationService) Submit(ctx context.Context, userID string) (*models.Application, error) {
	draft, err := s.Repo.GetDraftByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		// A previous attempt may have flipped the status already; resume the
		// interrupted submission if its marker is still set.
		return s.resumePendingSubmission(ctx, userID)
	}
	if draft.CurrentStep != models.StepReview {
		return nil, ErrNotAtReviewStep
	}

	for step := models.StepPersonalInfo; step <= models.StepPaymentPlan; step++ {
		if err := ValidateStep(draft, step); err != nil {
			return nil, err
		}
	}

	settings, err := s.Settings.GetPaymentSettings()
	if err != nil {
		utils.GetLogger().Warn("using default payment settings", zap.Error(err))
		settings = models.DefaultPaymentSettings()
	}
	totalFee := settings.PlanFee(draft.PaymentPlan)

	now := time.Now()
	fields := bson.M{
		"status":            models.StatusSubmitted,
		"totalFee":          totalFee,
		"submittedAt":       now,
		"submissionPending": true,
	}
	if err := s.Repo.UpdateFields(draft.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}
	draft.Status = models.StatusSubmitted
	draft.TotalFee = totalFee
	draft.SubmittedAt = now

	if err := s.finishSubmission(ctx, draft); err != nil {
		return nil, err
	}
	draft.SubmissionPending = false
	return draft, nil
}

// resumePendingSubmission finds a submitted application whose side effects
// were interrupted and completes them.
func (s *DefaultApplicationService) resumePendingSubmission(ctx context.Context, userID string) (*models.Application, error) {
	apps, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	submitted := false
	for i := range apps {
		if apps[i].SubmissionPending {
			app := apps[i]
			if err := s.finishSubmission(ctx, &app); err != nil {
				return nil, err
			}
			app.SubmissionPending = false
			return &app, nil
		}
		if apps[i].Status != models.StatusDraft {
			submitted = true
		}
	}
	if submitted {
		return nil, ErrAlreadySubmitted
	}
	return nil, ErrNoDraft
}

// finishSubmission writes the submission notifications and clears the
// pending marker. Called both on the happy path and on retry.
func (s *DefaultApplicationService) finishSubmission(ctx context.Context, app *models.Application) error {
	data := map[string]string{
		"applicationId": app.ID,
		"plan":          string(app.PaymentPlan),
	}

	err := s.Notification.NotifyUser(ctx, app.UserID, models.NotifApplicationSubmitted,
		"Application submitted",
		fmt.Sprintf("Your application has been submitted. Total fee: %.0f on the %s plan.", app.TotalFee, app.PaymentPlan),
		data)
	if err != nil {
		return fmt.Errorf("submission saved but user notification failed: %w", err)
	}

	err = s.Notification.NotifyAdmin(ctx, models.NotifApplicationSubmitted,
		"New application submitted",
		fmt.Sprintf("%s submitted an application (%s plan).", app.FullName, app.PaymentPlan),
		data)
	if err != nil {
		return fmt.Errorf("submission saved but admin notification failed: %w", err)
	}

	if err := s.Repo.UpdateFields(app.ID, bson.M{"submissionPending": false}); err != nil {
		return fmt.Errorf("failed to clear submission marker: %w", err)
	}
	return nil
}
