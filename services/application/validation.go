package application

import "carewell/models"

// requiredDocumentTypes is the single authoritative set of document types a
// draft must carry before leaving the documents step. The review step and the
// wizard both read it from here.
var requiredDocumentTypes = []models.DocumentType{
	models.DocResume,
	models.DocPhoto,
}

// RequiredDocumentTypes returns the document types every application must
// attach.
func RequiredDocumentTypes() []models.DocumentType {
	out := make([]models.DocumentType, len(requiredDocumentTypes))
	copy(out, requiredDocumentTypes)
	return out
}

// ValidateStep runs the gate for the given step against the draft. A nil
// return means the wizard may advance past the step. The review step has no
// gate of its own; steps 1-3 already guarded everything it shows.
func ValidateStep(app *models.Application, step int) error {
	switch step {
	case models.StepPersonalInfo:
		var missing []string
		if app.FullName == "" {
			missing = append(missing, "fullName")
		}
		if app.Phone == "" {
			missing = append(missing, "phone")
		}
		if app.Email == "" {
			missing = append(missing, "email")
		}
		// Country of origin and destination are soft fields.
		if len(missing) > 0 {
			return &StepValidationError{Step: step, MissingFields: missing}
		}
		return nil

	case models.StepDocuments:
		var missing []models.DocumentType
		for _, required := range requiredDocumentTypes {
			if app.DocumentByType(required) == nil {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			return &StepValidationError{Step: step, MissingDocuments: missing}
		}
		return nil

	case models.StepPaymentPlan:
		if app.PaymentPlan == "" {
			return &StepValidationError{Step: step, MissingFields: []string{"paymentPlan"}}
		}
		return nil

	default:
		return nil
	}
}
