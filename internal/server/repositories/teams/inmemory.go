package teams

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests.
type InMemoryRepository struct {
	mu    sync.Mutex
	teams map[primitive.ObjectID]*models.Team
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{teams: make(map[primitive.ObjectID]*models.Team)}
}

func (r *InMemoryRepository) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team.ID = primitive.NewObjectID()
	copied := *team
	r.teams[team.ID] = &copied
	return team, nil
}

func (r *InMemoryRepository) ListPublic(ctx context.Context) ([]models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.Team{}
	for _, t := range r.teams {
		if t.Type == models.TeamPublic {
			results = append(results, *t)
		}
	}
	return results, nil
}
