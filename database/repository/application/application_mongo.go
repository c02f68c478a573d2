package applicationRepo

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

// MongoApplicationRepo implements ApplicationRepository using MongoDB.
type MongoApplicationRepo struct {
	coll *mongo.Collection
}

// NewMongoApplicationRepo creates a new instance of ApplicationRepository using MongoDB.
func NewMongoApplicationRepo() ApplicationRepository {
	coll := database.Collection("applications")
	repo := &MongoApplicationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// partial unique index on userId enforces at most one non-submitted draft per
// user.
func (r *MongoApplicationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.StatusDraft}),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its unique ID.
func (r *MongoApplicationRepo) GetByID(id string) (*models.Application, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.Application
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch application with id %s: %w", id, err)
	}
	return &app, nil
}

// GetDraftByUserID retrieves the user's unsubmitted draft, or nil if none exists.
func (r *MongoApplicationRepo) GetDraftByUserID(userID string) (*models.Application, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "status": models.StatusDraft}
	var app models.Application
	if err := r.coll.FindOne(ctx, filter).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch draft for user %s: %w", userID, err)
	}
	return &app, nil
}

// GetByUserID retrieves all of a user's applications, newest first.
func (r *MongoApplicationRepo) GetByUserID(userID string) ([]models.Application, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve applications for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	for cursor.Next(ctx) {
		var a models.Application
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}

// UpsertDraft inserts or replaces the user's draft keyed by user ID. The
// version guard rejects writes from a reader the stored draft has overtaken.
func (r *MongoApplicationRepo) UpsertDraft(app *models.Application, expectedVersion int64) (*models.Application, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.UpdatedAt = now
	if app.CreatedAt.IsZero() {
		app.CreatedAt = now
	}
	app.Version = expectedVersion + 1

	filter := bson.M{
		"userId":  app.UserID,
		"status":  models.StatusDraft,
		"version": bson.M{"$lte": expectedVersion},
	}
	update := bson.M{"$set": app}
	opts := options.Update().SetUpsert(true)

	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// The upsert raced a newer draft: the partial unique index on
			// userId rejected a second draft document.
			stored, gerr := r.GetDraftByUserID(app.UserID)
			if gerr == nil && stored != nil {
				return nil, &VersionConflictError{Stored: stored.Version, Given: expectedVersion}
			}
		}
		return nil, fmt.Errorf("failed to upsert draft for user %s: %w", app.UserID, err)
	}
	return app, nil
}

// UpdateFields applies a partial update to an application by ID.
func (r *MongoApplicationRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update application with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("application with id %s not found", id)
	}
	return nil
}

// List retrieves applications matching the query along with the total count.
func (r *MongoApplicationRepo) List(q ApplicationQuery) ([]models.Application, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.UserID != "" {
		filter["userId"] = q.UserID
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	for cursor.Next(ctx) {
		var a models.Application
		if err := cursor.Decode(&a); err != nil {
			return nil, 0, fmt.Errorf("failed to decode application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, total, nil
}

// Delete removes an application document by its ID.
func (r *MongoApplicationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete application with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("application with id %s not found", id)
	}
	return nil
}
