package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HelpRequest is an open call for volunteers, with a flat comment thread
// embedded in the document.
type HelpRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Urgency     string             `bson:"urgency" json:"urgency"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	CreatedAt   time.Time          `bson:"timestamp" json:"timestamp"`
}

// Comment is a single entry in a help request's thread.
type Comment struct {
	Email     string    `bson:"email" json:"email"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"timestamp" json:"timestamp"`
}

// HelpRequestFilter describes the optional conjunctive clauses of a
// help-request listing. Zero-valued fields contribute no clause.
type HelpRequestFilter struct {
	SearchTerm string
	Urgency    string
}
