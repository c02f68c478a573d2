package models

import "time"

// PaymentPlan is one of the three fixed payment-plan choices.
type PaymentPlan string

const (
	PlanMilestone   PaymentPlan = "milestone"
	PlanFullUpfront PaymentPlan = "full_upfront"
	PlanDeferred    PaymentPlan = "deferred"
)

// Application status labels.
const (
	StatusDraft           = "draft"
	StatusSubmitted       = "submitted"
	StatusInReview        = "in_review"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
	StatusPartiallyPaid   = "partially_paid"
	StatusPaymentComplete = "payment_complete"
)

// Wizard step numbers. StepReview is the last step; submission happens from it.
const (
	StepPersonalInfo = 1
	StepDocuments    = 2
	StepPaymentPlan  = 3
	StepReview       = 4
)

// Application is a user's immigration application. It starts life as a draft
// authored through the wizard and becomes immutable to the user once submitted.
type Application struct {
	ID          string `bson:"id" json:"id"`
	UserID      string `bson:"userId" json:"userId"`
	CurrentStep int    `bson:"currentStep" json:"currentStep"`

	// Step 1: personal info.
	FullName           string `bson:"fullName" json:"fullName"`
	Email              string `bson:"email" json:"email"`
	Phone              string `bson:"phone" json:"phone"`
	CountryOfOrigin    string `bson:"countryOfOrigin" json:"countryOfOrigin"`
	DestinationCountry string `bson:"destinationCountry" json:"destinationCountry"`
	VisaType           string `bson:"visaType" json:"visaType"`

	// Step 2: attached documents, at most one per declared type.
	Documents []UploadedDocument `bson:"documents" json:"documents"`

	// Step 3: chosen plan. Empty until the user picks one.
	PaymentPlan PaymentPlan `bson:"paymentPlan" json:"paymentPlan"`

	Status     string  `bson:"status" json:"status"`
	TotalFee   float64 `bson:"totalFee" json:"totalFee"`
	PaidAmount float64 `bson:"paidAmount" json:"paidAmount"`

	// SubmissionPending marks an in-flight submission so a retry after a
	// partial failure is safe.
	SubmissionPending bool `bson:"submissionPending" json:"-"`

	// Version is a monotonic counter bumped on every autosave. Writers carry
	// the version they last read so concurrent tabs cannot silently clobber
	// one another.
	Version int64 `bson:"version" json:"version"`

	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
	SubmittedAt time.Time `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}

// BalanceDue returns the outstanding amount for the application.
func (a *Application) BalanceDue() float64 {
	return a.TotalFee - a.PaidAmount
}

// DocumentByType returns the attached document of the given type, if any.
func (a *Application) DocumentByType(docType DocumentType) *UploadedDocument {
	for i := range a.Documents {
		if a.Documents[i].Type == docType {
			return &a.Documents[i]
		}
	}
	return nil
}

// ApplicationDraftUpdate carries the autosaved field values from the client.
// Every field-level edit sends the full current draft.
type ApplicationDraftUpdate struct {
	FullName           string      `json:"fullName"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	CountryOfOrigin    string      `json:"countryOfOrigin"`
	DestinationCountry string      `json:"destinationCountry"`
	VisaType           string      `json:"visaType"`
	PaymentPlan        PaymentPlan `json:"paymentPlan"`
	Version            int64       `json:"version"`
}
