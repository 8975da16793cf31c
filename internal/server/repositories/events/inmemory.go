package events

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests.
type InMemoryRepository struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]*models.Event
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{events: make(map[primitive.ObjectID]*models.Event)}
}

func (r *InMemoryRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = primitive.NewObjectID()
	copied := *event
	r.events[event.ID] = &copied
	return event, nil
}

func (r *InMemoryRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.Event{}
	for _, e := range r.events {
		if filter.SearchTerm != "" &&
			!strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.SearchTerm)) {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Location != "" && e.Location != filter.Location {
			continue
		}
		results = append(results, *e)
	}
	return results, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *InMemoryRepository) ListByAuthor(ctx context.Context, email string) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.Event{}
	for _, e := range r.events {
		if e.Email == email {
			results = append(results, *e)
		}
	}
	return results, nil
}

func (r *InMemoryRepository) Recent(ctx context.Context, limit int64) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.Event{}
	for _, e := range r.events {
		results = append(results, *e)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if int64(len(results)) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id primitive.ObjectID, update models.EventUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return common.ErrorNotFound
	}
	if update.Title != "" {
		event.Title = update.Title
	}
	if update.Category != "" {
		event.Category = update.Category
	}
	if update.Description != "" {
		event.Description = update.Description
	}
	if update.Date != "" {
		event.Date = update.Date
	}
	if update.Time != "" {
		event.Time = update.Time
	}
	if update.Location != "" {
		event.Location = update.Location
	}
	if update.ImageURL != "" {
		event.ImageURL = update.ImageURL
	}
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.events, id)
	return nil
}
