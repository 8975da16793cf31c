package participants

import (
	"context"
	"errors"
	"fmt"

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

func (r *MongoRepository) Find(ctx context.Context, email string, eventID primitive.ObjectID) (*models.Participant, error) {
	participant := &models.Participant{}
	err := r.coll.FindOne(ctx, bson.M{"email": email, "eventId": eventID}).Decode(participant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return participant, nil
}

func (r *MongoRepository) Create(ctx context.Context, participant *models.Participant) (*models.Participant, error) {
	res, err := r.coll.InsertOne(ctx, participant)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		participant.ID = id
	}
	return participant, nil
}

func (r *MongoRepository) ListByEmail(ctx context.Context, email string) ([]models.Participant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	results := []models.Participant{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return results, nil
}
