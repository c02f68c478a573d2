package models

import "time"

// PaymentSettings is the admin-managed payment configuration, stored as a
// single document. Zero-valued fields fall back to the defaults below.
type PaymentSettings struct {
	ID string `bson:"id" json:"id"`

	// Total fee per payment plan.
	FullUpfrontFee float64 `bson:"fullUpfrontFee" json:"fullUpfrontFee"`
	MilestoneFee   float64 `bson:"milestoneFee" json:"milestoneFee"`
	DeferredFee    float64 `bson:"deferredFee" json:"deferredFee"`

	// Processing fee percent per payment method.
	CardFeePercent   float64 `bson:"cardFeePercent" json:"cardFeePercent"`
	PaypalFeePercent float64 `bson:"paypalFeePercent" json:"paypalFeePercent"`
	BankFeePercent   float64 `bson:"bankFeePercent" json:"bankFeePercent"`

	// MinimumPayment is the fixed floor offered on the milestone plan.
	MinimumPayment float64 `bson:"minimumPayment" json:"minimumPayment"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultPaymentSettings returns the built-in fee table used until an admin
// edits the stored settings.
func DefaultPaymentSettings() PaymentSettings {
	return PaymentSettings{
		ID:               "payment-settings",
		FullUpfrontFee:   4299,
		MilestoneFee:     4999,
		DeferredFee:      5499,
		CardFeePercent:   2.9,
		PaypalFeePercent: 2.0,
		BankFeePercent:   0,
		MinimumPayment:   100,
	}
}

// PlanFee returns the total fee for the given plan.
func (s PaymentSettings) PlanFee(plan PaymentPlan) float64 {
	switch plan {
	case PlanMilestone:
		return s.MilestoneFee
	case PlanDeferred:
		return s.DeferredFee
	default:
		return s.FullUpfrontFee
	}
}

// MethodFeePercent returns the processing-fee percent for a payment method.
// Unknown methods are charged like bank transfers.
func (s PaymentSettings) MethodFeePercent(method string) float64 {
	switch method {
	case MethodCard:
		return s.CardFeePercent
	case MethodPaypal:
		return s.PaypalFeePercent
	default:
		return s.BankFeePercent
	}
}
