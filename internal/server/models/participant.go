package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant records that a user joined an event. At most one record
// should exist per (email, eventId) pair.
type Participant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	EventID  primitive.ObjectID `bson:"eventId" json:"eventId"`
	JoinedAt time.Time          `bson:"timestamp" json:"timestamp"`
}

// JoinedEvent pairs a membership with the event it references, assembled
// in application code rather than a database-side join.
type JoinedEvent struct {
	Participant Participant `json:"participant"`
	Event       Event       `json:"event"`
}
