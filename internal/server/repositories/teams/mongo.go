package teams

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	res, err := r.coll.InsertOne(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		team.ID = id
	}
	return team, nil
}

func (r *MongoRepository) ListPublic(ctx context.Context) ([]models.Team, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"type": models.TeamPublic})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	results := []models.Team{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}
