package users

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *InMemoryRepository) FindOrCreate(ctx context.Context, user *models.User) (*models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.users[user.Email]; ok {
		copied := *existing
		return &copied, false, nil
	}

	user.ID = primitive.NewObjectID()
	copied := *user
	r.users[user.Email] = &copied
	return user, true, nil
}

func (r *InMemoryRepository) UpdateProfile(ctx context.Context, email string, profile models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return common.ErrorNotFound
	}
	if profile.Name != "" {
		user.Name = profile.Name
	}
	if profile.Photo != "" {
		user.Photo = profile.Photo
	}
	if profile.Bio != "" {
		user.Bio = profile.Bio
	}
	if profile.Skills != nil {
		user.Skills = profile.Skills
	}
	if profile.Causes != nil {
		user.Causes = profile.Causes
	}
	return nil
}
