// Package teams stores team documents.
package teams

import (
	"context"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// Repository is the persistence contract for team documents.
type Repository interface {
	// Create inserts the team and fills in its generated ID.
	Create(ctx context.Context, team *models.Team) (*models.Team, error)

	// ListPublic returns every team with public visibility.
	ListPublic(ctx context.Context) ([]models.Team, error)
}
