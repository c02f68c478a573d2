package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carewell/database"
	"carewell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.Collection("settings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetPaymentSettings returns the stored settings or the built-in defaults.
func (r *MongoSettingsRepo) GetPaymentSettings() (models.PaymentSettings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	defaults := models.DefaultPaymentSettings()
	var s models.PaymentSettings
	err := r.coll.FindOne(ctx, bson.M{"id": defaults.ID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("failed to fetch payment settings: %w", err)
	}
	return s, nil
}

// SavePaymentSettings upserts the settings document.
func (r *MongoSettingsRepo) SavePaymentSettings(s models.PaymentSettings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.ID = models.DefaultPaymentSettings().ID
	s.UpdatedAt = time.Now()
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": s.ID}, bson.M{"$set": s}, opts); err != nil {
		return fmt.Errorf("failed to save payment settings: %w", err)
	}
	return nil
}
