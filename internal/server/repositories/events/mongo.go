package events

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = id
	}
	return event, nil
}

// List builds the filter incrementally: each provided field contributes one
// clause, absent fields contribute none. The search term is matched as a
// case-insensitive substring of the title.
func (r *MongoRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	query := bson.M{}
	if filter.SearchTerm != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.SearchTerm), "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	results := []models.Event{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event := &models.Event{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return event, nil
}

func (r *MongoRepository) ListByAuthor(ctx context.Context, email string) ([]models.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	results := []models.Event{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}

func (r *MongoRepository) Recent(ctx context.Context, limit int64) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	results := []models.Event{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}

func (r *MongoRepository) Update(ctx context.Context, id primitive.ObjectID, update models.EventUpdate) error {
	set := bson.M{}
	if update.Title != "" {
		set["title"] = update.Title
	}
	if update.Category != "" {
		set["category"] = update.Category
	}
	if update.Description != "" {
		set["description"] = update.Description
	}
	if update.Date != "" {
		set["date"] = update.Date
	}
	if update.Time != "" {
		set["time"] = update.Time
	}
	if update.Location != "" {
		set["location"] = update.Location
	}
	if update.ImageURL != "" {
		set["imageUrl"] = update.ImageURL
	}
	if len(set) == 0 {
		return fmt.Errorf("%w: no event fields provided", common.ErrorValidation)
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}
