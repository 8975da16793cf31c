package users

import (
	"context"
	"errors"
	"fmt"

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

// EnsureIndexes creates the unique email index the upsert in FindOrCreate
// relies on.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// FindOrCreate uses an upsert with $setOnInsert so that concurrent first
// requests for the same email cannot both insert.
func (r *MongoRepository) FindOrCreate(ctx context.Context, user *models.User) (*models.User, bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": user},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	if res.UpsertedCount == 1 {
		if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
			user.ID = id
		}
		return user, true, nil
	}

	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *MongoRepository) UpdateProfile(ctx context.Context, email string, profile models.UserProfile) error {
	set := bson.M{}
	if profile.Name != "" {
		set["name"] = profile.Name
	}
	if profile.Photo != "" {
		set["photo"] = profile.Photo
	}
	if profile.Bio != "" {
		set["bio"] = profile.Bio
	}
	if profile.Skills != nil {
		set["skills"] = profile.Skills
	}
	if profile.Causes != nil {
		set["causes"] = profile.Causes
	}
	if len(set) == 0 {
		return fmt.Errorf("%w: no profile fields provided", common.ErrorValidation)
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}
