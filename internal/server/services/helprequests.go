package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/repomanager"
)

// Urgency levels accepted on help requests.
var urgencyLevels = map[string]bool{
	"low":    true,
	"medium": true,
	"urgent": true,
}

// HelpRequestService handles help requests and their comment threads.
type HelpRequestService struct {
	repos repomanager.RepositoryManager
}

func NewHelpRequestService(repos repomanager.RepositoryManager) *HelpRequestService {
	return &HelpRequestService{repos: repos}
}

// Create validates and inserts a help request authored by email.
func (s *HelpRequestService) Create(ctx context.Context, request *models.HelpRequest) (*models.HelpRequest, error) {
	if request.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if request.Description == "" {
		return nil, fmt.Errorf("%w: description is required", common.ErrorValidation)
	}
	if request.Urgency == "" {
		return nil, fmt.Errorf("%w: urgency is required", common.ErrorValidation)
	}
	if !urgencyLevels[request.Urgency] {
		return nil, fmt.Errorf("%w: urgency must be low, medium or urgent", common.ErrorValidation)
	}

	if request.Comments == nil {
		request.Comments = []models.Comment{}
	}
	request.CreatedAt = time.Now()
	return s.repos.HelpRequests().Create(ctx, request)
}

// List returns help requests matching the conjunction of the filter's clauses.
func (s *HelpRequestService) List(ctx context.Context, filter models.HelpRequestFilter) ([]models.HelpRequest, error) {
	return s.repos.HelpRequests().List(ctx, filter)
}

// AddComment appends a comment by email to the request's thread.
func (s *HelpRequestService) AddComment(ctx context.Context, id string, email string, text string) error {
	if text == "" {
		return fmt.Errorf("%w: text is required", common.ErrorValidation)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrorNotFound
	}

	comment := models.Comment{
		Email:     email,
		Text:      text,
		CreatedAt: time.Now(),
	}
	return s.repos.HelpRequests().AddComment(ctx, oid, comment)
}
