package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/repomanager"
)

// TeamService handles team creation and listing.
type TeamService struct {
	repos repomanager.RepositoryManager
}

func NewTeamService(repos repomanager.RepositoryManager) *TeamService {
	return &TeamService{repos: repos}
}

// Create validates and inserts a team created by email. The creator is
// always the first member.
func (s *TeamService) Create(ctx context.Context, team *models.Team, createdBy string) (*models.Team, error) {
	if team.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if team.Description == "" {
		return nil, fmt.Errorf("%w: description is required", common.ErrorValidation)
	}
	if team.Type != models.TeamPublic && team.Type != models.TeamPrivate {
		return nil, fmt.Errorf("%w: type must be public or private", common.ErrorValidation)
	}

	team.CreatedBy = createdBy
	team.Members = []string{createdBy}
	team.CreatedAt = time.Now()
	return s.repos.Teams().Create(ctx, team)
}

// ListPublic returns every public team.
func (s *TeamService) ListPublic(ctx context.Context) ([]models.Team, error) {
	return s.repos.Teams().ListPublic(ctx)
}
