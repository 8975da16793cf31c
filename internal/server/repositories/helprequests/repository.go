// Package helprequests stores help-request documents and their comments.
package helprequests

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// Repository is the persistence contract for help-request documents.
type Repository interface {
	// Create inserts the help request and fills in its generated ID.
	Create(ctx context.Context, request *models.HelpRequest) (*models.HelpRequest, error)

	// List returns help requests matching the conjunction of the filter's
	// clauses. An empty filter returns every request.
	List(ctx context.Context, filter models.HelpRequestFilter) ([]models.HelpRequest, error)

	// AddComment appends the comment to the request's thread. Returns
	// common.ErrorNotFound when no record matched.
	AddComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error
}
