package settingsRepo

import (
	"encoding/json"
	"time"

	"carewell/models"

	"github.com/go-redis/redis/v8"
)

const (
	settingsCacheKey = "carewell:payment_settings"
	settingsCacheTTL = 10 * time.Minute
)

// CachedSettingsRepo layers a Redis cache over a SettingsRepository. The
// settings document is read on every submission and payment and changes only
// when an admin saves it, so the cache is invalidated on save and otherwise
// served with a short TTL. A nil or unreachable cache degrades to the inner
// repository.
type CachedSettingsRepo struct {
	Inner SettingsRepository
	Cache *redis.Client
}

// NewCachedSettingsRepo wraps inner with the given cache client.
func NewCachedSettingsRepo(inner SettingsRepository, cache *redis.Client) SettingsRepository {
	return &CachedSettingsRepo{Inner: inner, Cache: cache}
}

// GetPaymentSettings returns the cached settings, falling back to the inner
// repository on a miss.
func (r *CachedSettingsRepo) GetPaymentSettings() (models.PaymentSettings, error) {
	if r.Cache != nil {
		ctx, cancel := newContext(2 * time.Second)
		defer cancel()
		if raw, err := r.Cache.Get(ctx, settingsCacheKey).Result(); err == nil {
			var s models.PaymentSettings
			if err := json.Unmarshal([]byte(raw), &s); err == nil {
				return s, nil
			}
		}
	}

	s, err := r.Inner.GetPaymentSettings()
	if err != nil {
		return s, err
	}
	if r.Cache != nil {
		if raw, err := json.Marshal(s); err == nil {
			ctx, cancel := newContext(2 * time.Second)
			defer cancel()
			r.Cache.Set(ctx, settingsCacheKey, raw, settingsCacheTTL)
		}
	}
	return s, nil
}

// SavePaymentSettings writes through the inner repository and drops the
// cached copy so the next read sees the new settings.
func (r *CachedSettingsRepo) SavePaymentSettings(s models.PaymentSettings) error {
	if err := r.Inner.SavePaymentSettings(s); err != nil {
		return err
	}
	if r.Cache != nil {
		ctx, cancel := newContext(2 * time.Second)
		defer cancel()
		r.Cache.Del(ctx, settingsCacheKey)
	}
	return nil
}
