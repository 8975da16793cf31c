package helprequests

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests.
type InMemoryRepository struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]*models.HelpRequest
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{requests: make(map[primitive.ObjectID]*models.HelpRequest)}
}

func (r *InMemoryRepository) Create(ctx context.Context, request *models.HelpRequest) (*models.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = primitive.NewObjectID()
	copied := *request
	r.requests[request.ID] = &copied
	return request, nil
}

func (r *InMemoryRepository) List(ctx context.Context, filter models.HelpRequestFilter) ([]models.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.HelpRequest{}
	for _, req := range r.requests {
		if filter.SearchTerm != "" &&
			!strings.Contains(strings.ToLower(req.Title), strings.ToLower(filter.SearchTerm)) {
			continue
		}
		if filter.Urgency != "" && req.Urgency != filter.Urgency {
			continue
		}
		results = append(results, *req)
	}
	return results, nil
}

func (r *InMemoryRepository) AddComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return common.ErrorNotFound
	}
	request.Comments = append(request.Comments, comment)
	return nil
}
