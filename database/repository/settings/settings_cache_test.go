package settingsRepo

import (
	"errors"
	"testing"

	"carewell/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSettingsRepo struct {
	settings models.PaymentSettings
	gets     int
	saves    int
	saveErr  error
}

func (r *countingSettingsRepo) GetPaymentSettings() (models.PaymentSettings, error) {
	r.gets++
	return r.settings, nil
}

func (r *countingSettingsRepo) SavePaymentSettings(s models.PaymentSettings) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.settings = s
	return nil
}

func TestCachedSettingsDelegatesWithoutCache(t *testing.T) {
	inner := &countingSettingsRepo{settings: models.DefaultPaymentSettings()}
	repo := NewCachedSettingsRepo(inner, nil)

	s, err := repo.GetPaymentSettings()
	require.NoError(t, err)
	assert.Equal(t, inner.settings, s)

	s.MilestoneFee = 5250
	require.NoError(t, repo.SavePaymentSettings(s))
	assert.Equal(t, 5250.0, inner.settings.MilestoneFee)
	assert.Equal(t, 1, inner.gets)
	assert.Equal(t, 1, inner.saves)
}

func TestCachedSettingsDegradesWhenCacheUnreachable(t *testing.T) {
	inner := &countingSettingsRepo{settings: models.DefaultPaymentSettings()}
	// Nothing listens here; every cache call errors and the inner repo answers.
	unreachable := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	repo := NewCachedSettingsRepo(inner, unreachable)

	s, err := repo.GetPaymentSettings()
	require.NoError(t, err)
	assert.Equal(t, inner.settings, s)
	assert.Equal(t, 1, inner.gets)

	require.NoError(t, repo.SavePaymentSettings(s))
	assert.Equal(t, 1, inner.saves)
}

func TestCachedSettingsSaveErrorPropagates(t *testing.T) {
	inner := &countingSettingsRepo{saveErr: errors.New("write rejected")}
	repo := NewCachedSettingsRepo(inner, nil)

	err := repo.SavePaymentSettings(models.DefaultPaymentSettings())
	assert.Error(t, err)
}
