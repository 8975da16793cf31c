// Package users stores and retrieves user documents.
package users

import (
	"context"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// Repository is the persistence contract for user documents.
type Repository interface {
	// FindByEmail returns the user with the given email or common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindOrCreate inserts the given user if no record with its email exists,
	// atomically, and returns the stored record. The second return value is
	// true when a new record was inserted.
	FindOrCreate(ctx context.Context, user *models.User) (*models.User, bool, error)

	// UpdateProfile sets the provided profile fields on the user with the
	// given email. Returns common.ErrorNotFound when no record matched.
	UpdateProfile(ctx context.Context, email string, profile models.UserProfile) error
}
