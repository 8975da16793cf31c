package helprequests

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, request *models.HelpRequest) (*models.HelpRequest, error) {
	res, err := r.coll.InsertOne(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		request.ID = id
	}
	return request, nil
}

func (r *MongoRepository) List(ctx context.Context, filter models.HelpRequestFilter) ([]models.HelpRequest, error) {
	query := bson.M{}
	if filter.SearchTerm != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.SearchTerm), "$options": "i"}
	}
	if filter.Urgency != "" {
		query["urgency"] = filter.Urgency
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	results := []models.HelpRequest{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}

func (r *MongoRepository) AddComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}
