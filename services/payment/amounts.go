package payment

import (
	"math"

	"carewell/models"
)

// Suggested-amount labels shown on the payment dialog.
const (
	LabelFirstInstallment         = "First Installment"
	LabelCompleteFirstInstallment = "Complete First Installment"
	LabelPayRemaining             = "Pay Remaining"
	LabelNextMilestone            = "Next Milestone"
	LabelPayMinimum               = "Pay Minimum"
	LabelFullBalance              = "Full Balance"
	LabelFullPayment              = "Full Payment"
	LabelCustomAmount             = "Custom Amount"
)

// SuggestedAmounts computes the menu of suggested next-payment amounts for a
// plan and balance. Deterministic over {plan, totalFee, paidAmount}; the
// free-form custom option is always appended last with amount 0.
func SuggestedAmounts(plan models.PaymentPlan, totalFee, paidAmount float64, settings models.PaymentSettings) []models.PaymentOption {
	var options []models.PaymentOption

	switch plan {
	case models.PlanDeferred:
		half := math.Ceil(totalFee * 0.5)
		switch {
		case paidAmount == 0:
			options = append(options, models.PaymentOption{Label: LabelFirstInstallment, Amount: half})
		case paidAmount < half:
			options = append(options,
				models.PaymentOption{Label: LabelCompleteFirstInstallment, Amount: half - paidAmount},
				models.PaymentOption{Label: LabelPayRemaining, Amount: totalFee - paidAmount},
			)
		default:
			options = append(options, models.PaymentOption{Label: LabelPayRemaining, Amount: totalFee - paidAmount})
		}

	case models.PlanMilestone:
		options = append(options,
			models.PaymentOption{Label: LabelNextMilestone, Amount: math.Ceil(totalFee / 4)},
			models.PaymentOption{Label: LabelPayMinimum, Amount: settings.MinimumPayment},
			models.PaymentOption{Label: LabelFullBalance, Amount: totalFee - paidAmount},
		)

	default:
		options = append(options, models.PaymentOption{Label: LabelFullPayment, Amount: totalFee - paidAmount})
	}

	return append(options, models.PaymentOption{Label: LabelCustomAmount, Amount: 0})
}

// ProcessingFee computes the method-dependent processing fee for an amount.
func ProcessingFee(amount float64, method string, settings models.PaymentSettings) float64 {
	return amount * settings.MethodFeePercent(method) / 100
}
