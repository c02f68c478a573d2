package settingsRepo

import "carewell/models"

// SettingsRepository defines access to the admin-managed payment settings.
type SettingsRepository interface {
	// GetPaymentSettings returns the stored settings, falling back to the
	// built-in defaults when none have been saved yet.
	GetPaymentSettings() (models.PaymentSettings, error)
	// SavePaymentSettings upserts the settings document.
	SavePaymentSettings(s models.PaymentSettings) error
}
