package participants

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests.
type InMemoryRepository struct {
	mu           sync.Mutex
	participants map[primitive.ObjectID]*models.Participant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{participants: make(map[primitive.ObjectID]*models.Participant)}
}

func (r *InMemoryRepository) Find(ctx context.Context, email string, eventID primitive.ObjectID) (*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.participants {
		if p.Email == email && p.EventID == eventID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, participant *models.Participant) (*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	participant.ID = primitive.NewObjectID()
	copied := *participant
	r.participants[participant.ID] = &copied
	return participant, nil
}

func (r *InMemoryRepository) ListByEmail(ctx context.Context, email string) ([]models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.Participant{}
	for _, p := range r.participants {
		if p.Email == email {
			results = append(results, *p)
		}
	}
	return results, nil
}
