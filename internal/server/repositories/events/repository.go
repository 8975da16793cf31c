// Package events stores and retrieves event documents.
package events

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// Repository is the persistence contract for event documents.
type Repository interface {
	// Create inserts the event and fills in its generated ID.
	Create(ctx context.Context, event *models.Event) (*models.Event, error)

	// List returns events matching the conjunction of the filter's clauses.
	// An empty filter returns every event.
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)

	// GetByID returns one event or common.ErrorNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)

	// ListByAuthor returns the events created by the given email.
	ListByAuthor(ctx context.Context, email string) ([]models.Event, error)

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int64) ([]models.Event, error)

	// Update sets the non-empty fields of update on the event. Returns
	// common.ErrorNotFound when no record matched.
	Update(ctx context.Context, id primitive.ObjectID, update models.EventUpdate) error

	// Delete removes one event. Returns common.ErrorNotFound when no record
	// was removed.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
