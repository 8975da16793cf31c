// Package models defines the documents stored in MongoDB. Field names in
// bson tags match the collections created by earlier deployments, so the
// server can run against existing data.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered platform member. A record is created on first token
// request for an unseen email; users are never deleted.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills    []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Causes    []string           `bson:"causes,omitempty" json:"causes,omitempty"`
	CreatedAt time.Time          `bson:"timestamp" json:"timestamp"`
}

// UserProfile carries the mutable profile fields accepted from clients.
// Email and role are managed by the server and deliberately absent.
type UserProfile struct {
	Name   string   `json:"name"`
	Photo  string   `json:"photo"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
	Causes []string `json:"causes"`
}
