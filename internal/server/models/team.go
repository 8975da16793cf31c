package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team visibility values.
const (
	TeamPublic  = "public"
	TeamPrivate = "private"
)

// Team is a named group of members. The creator is always the first member.
type Team struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Type        string             `bson:"type" json:"type"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	Members     []string           `bson:"members" json:"members"`
	CreatedAt   time.Time          `bson:"timestamp" json:"timestamp"`
}
