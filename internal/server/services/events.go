package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/repomanager"
)

// RecentEventsLimit caps the recent-events listing.
const RecentEventsLimit = 5

// EventService handles events and event memberships.
type EventService struct {
	repos repomanager.RepositoryManager
}

func NewEventService(repos repomanager.RepositoryManager) *EventService {
	return &EventService{repos: repos}
}

// Create validates that every event field is present and inserts the event.
func (s *EventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	required := []struct {
		name  string
		value string
	}{
		{"title", event.Title},
		{"category", event.Category},
		{"description", event.Description},
		{"date", event.Date},
		{"time", event.Time},
		{"location", event.Location},
		{"imageUrl", event.ImageURL},
		{"email", event.Email},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, fmt.Errorf("%w: %s is required", common.ErrorValidation, f.name)
		}
	}

	event.CreatedAt = time.Now()
	return s.repos.Events().Create(ctx, event)
}

// List returns events matching the conjunction of the filter's clauses.
func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return s.repos.Events().List(ctx, filter)
}

// Get returns one event by its hex id. A malformed id is reported the same
// way as a missing record.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	return s.repos.Events().GetByID(ctx, oid)
}

// ListByAuthor returns the events created by email.
func (s *EventService) ListByAuthor(ctx context.Context, email string) ([]models.Event, error) {
	return s.repos.Events().ListByAuthor(ctx, email)
}

// Recent returns the most recently created events, newest first.
func (s *EventService) Recent(ctx context.Context) ([]models.Event, error) {
	return s.repos.Events().Recent(ctx, RecentEventsLimit)
}

// Update sets the non-empty fields of update on the event.
func (s *EventService) Update(ctx context.Context, id string, update models.EventUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrorNotFound
	}
	return s.repos.Events().Update(ctx, oid, update)
}

// Delete removes one event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrorNotFound
	}
	return s.repos.Events().Delete(ctx, oid)
}

// Join records that email participates in the event. A second join of the
// same event yields common.ErrAlreadyJoined. The membership check and the
// insert are two store calls; the memberships collection carries no unique
// index, so concurrent identical joins can race.
func (s *EventService) Join(ctx context.Context, email string, eventID string) (*models.Participant, error) {
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	if _, err := s.repos.Events().GetByID(ctx, oid); err != nil {
		return nil, err
	}

	_, err = s.repos.Participants().Find(ctx, email, oid)
	if err == nil {
		return nil, common.ErrAlreadyJoined
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	participant := &models.Participant{
		Email:    email,
		EventID:  oid,
		JoinedAt: time.Now(),
	}
	return s.repos.Participants().Create(ctx, participant)
}

// JoinedEvents lists email's memberships together with the events they
// reference, joined in application code. Memberships whose event has since
// been deleted are skipped. An empty result is returned as an empty list,
// not an error.
func (s *EventService) JoinedEvents(ctx context.Context, email string) ([]models.JoinedEvent, error) {
	memberships, err := s.repos.Participants().ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	joined := []models.JoinedEvent{}
	for _, m := range memberships {
		event, err := s.repos.Events().GetByID(ctx, m.EventID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				continue
			}
			return nil, err
		}
		joined = append(joined, models.JoinedEvent{Participant: m, Event: *event})
	}
	return joined, nil
}
