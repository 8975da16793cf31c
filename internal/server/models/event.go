package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a community event authored by the user identified by Email.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Location    string             `bson:"location" json:"location"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Email       string             `bson:"email" json:"email"`
	CreatedAt   time.Time          `bson:"timestamp" json:"timestamp"`
}

// EventFilter describes the optional conjunctive clauses of an event
// listing. Zero-valued fields contribute no clause.
type EventFilter struct {
	// SearchTerm matches case-insensitively against event titles.
	SearchTerm string
	Category   string
	Location   string
}

// EventUpdate carries the fields of an event update. Empty fields are
// left untouched in the stored document.
type EventUpdate struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
}
