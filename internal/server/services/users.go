// Package services contains server-side business logic. Each operation
// validates its input, performs one logical store operation, and returns
// sentinel errors the REST layer maps to HTTP statuses.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/auth"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/config"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/repomanager"
)

// UserService handles registration, profile access, and credential issuance.
type UserService struct {
	repos                repomanager.RepositoryManager
	jwtSecret            []byte
	loginTokenValidity   time.Duration
	signupTokenValidity  time.Duration
	refreshTokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(repos repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repos:                repos,
		jwtSecret:            []byte(cfg.SecretKey),
		loginTokenValidity:   cfg.LoginTokenValidity,
		signupTokenValidity:  cfg.SignupTokenValidity,
		refreshTokenValidity: cfg.RefreshTokenValidity,
	}
}

// RegisterOrLogin looks up or atomically creates the user for email and
// returns the stored record plus a signed credential. First contact creates
// a viewer and issues the longer signup-lifetime token; a returning user
// gets a login-lifetime token embedding the stored email and role. The
// embedded role may go stale relative to the stored role; there is no
// revocation.
func (s *UserService) RegisterOrLogin(ctx context.Context, email string, profile models.UserProfile) (*models.User, string, error) {
	if email == "" {
		return nil, "", fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	candidate := &models.User{
		Email:     email,
		Role:      auth.RoleViewer,
		Name:      profile.Name,
		Photo:     profile.Photo,
		Bio:       profile.Bio,
		Skills:    profile.Skills,
		Causes:    profile.Causes,
		CreatedAt: time.Now(),
	}

	user, created, err := s.repos.Users().FindOrCreate(ctx, candidate)
	if err != nil {
		return nil, "", err
	}

	validity := s.loginTokenValidity
	if created {
		validity = s.signupTokenValidity
	}

	token, err := auth.GenerateToken(auth.Identity{Email: user.Email, Role: user.Role}, s.jwtSecret, validity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// RefreshToken issues a refresh-lifetime credential for an already-known
// email. Unknown emails yield common.ErrorNotFound.
func (s *UserService) RefreshToken(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	user, err := s.repos.Users().FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(auth.Identity{Email: user.Email, Role: user.Role}, s.jwtSecret, s.refreshTokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Get returns the user profile for email.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	return s.repos.Users().FindByEmail(ctx, email)
}

// UpdateProfile sets the provided profile fields on the user.
func (s *UserService) UpdateProfile(ctx context.Context, email string, profile models.UserProfile) error {
	if profile.Name == "" && profile.Photo == "" && profile.Bio == "" &&
		profile.Skills == nil && profile.Causes == nil {
		return fmt.Errorf("%w: no profile fields provided", common.ErrorValidation)
	}
	return s.repos.Users().UpdateProfile(ctx, email, profile)
}
