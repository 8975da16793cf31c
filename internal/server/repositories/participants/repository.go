// Package participants stores event membership records.
package participants

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// Repository is the persistence contract for membership records.
type Repository interface {
	// Find returns the membership for (email, eventID) or common.ErrorNotFound.
	Find(ctx context.Context, email string, eventID primitive.ObjectID) (*models.Participant, error)

	// Create inserts the membership and fills in its generated ID.
	Create(ctx context.Context, participant *models.Participant) (*models.Participant, error)

	// ListByEmail returns every membership of the given email.
	ListByEmail(ctx context.Context, email string) ([]models.Participant, error)
}
