package models

import "time"

// Payment methods.
const (
	MethodCard         = "card"
	MethodPaypal       = "paypal"
	MethodBankTransfer = "bank_transfer"
)

// Payment statuses. Progression past pending is driven by the payment
// processor or an admin, not by this flow.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment records a single payment attempt against an application's balance.
// It is immutable once written.
type Payment struct {
	ID            string  `bson:"id" json:"id"`
	ApplicationID string  `bson:"applicationId" json:"applicationId"`
	UserID        string  `bson:"userId" json:"userId"`
	Amount        float64 `bson:"amount" json:"amount"`
	ProcessingFee float64 `bson:"processingFee" json:"processingFee"`
	TotalCharged  float64 `bson:"totalCharged" json:"totalCharged"`
	Method        string  `bson:"method" json:"method"`
	Installment   int     `bson:"installment" json:"installment"`
	Status        string  `bson:"status" json:"status"`
	// StripePaymentIntentID is set for card payments only.
	StripePaymentIntentID string    `bson:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentOption is one entry of the suggested next-payment menu.
type PaymentOption struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PaymentRequest is the payload for recording a payment attempt.
type PaymentRequest struct {
	ApplicationID string  `json:"applicationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"method" binding:"required"`
	Installment   int     `json:"installment"`
}
